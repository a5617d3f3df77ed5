// Package logger builds configured log/slog loggers and provides attribute
// helpers that keep log keys consistent across the codebase.
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, "linkvault"))
//	log.Error("mail dispatch failed",
//		logger.Component("mail"),
//		logger.Email(msg.To),
//		logger.Error(err),
//	)
package logger
