package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/linkvaulthq/linkvault/pkg/logger"
)

// HealthCheckHandler returns an HTTP handler usable for both liveness and
// readiness probes.
//
//   - Liveness: when no dependency functions are supplied the handler simply
//     returns 200 OK with body "ALIVE".
//   - Readiness: when one or more dependency functions are supplied each
//     function is executed; if they all succeed the handler returns 200 OK
//     with body "READY". If any of them return an error the handler returns
//     500 Internal Server Error with body "NOT_READY".
func HealthCheckHandler(log *slog.Logger, funcs ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if len(funcs) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}
		for _, fn := range funcs {
			if err := fn(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "healthcheck dependency failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
