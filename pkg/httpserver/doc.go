// Package httpserver runs an http.Server with sane defaults, functional
// options, and context-driven graceful shutdown.
//
// The zero-configuration path is a single call:
//
//	err := httpserver.Run(ctx, handler)
//
// Timeouts, the listen address, lifecycle hooks, and the logger are all
// adjustable through Option values or an environment-loaded Config:
//
//	err := httpserver.Run(ctx, handler,
//		httpserver.WithConfig(cfg),
//		httpserver.WithLogger(log),
//	)
//
// Run blocks until the context is canceled, then shuts the server down
// within the configured shutdown timeout.
package httpserver
