// Package core holds the application error taxonomy and the uniform JSON
// response envelope shared by all HTTP modules.
//
// Services return *core.Error values; handlers pass them to RespondError,
// which is the single place errors are translated into status codes and
// client-visible messages.
package core
