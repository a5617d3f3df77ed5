package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkvaulthq/linkvault/core"
	"github.com/linkvaulthq/linkvault/pkg/cookie"
	"github.com/linkvaulthq/linkvault/pkg/logger"
	authsvc "github.com/linkvaulthq/linkvault/svc/auth"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// Module exposes the auth service over HTTP: JSON endpoints for the local
// flows, browser redirects for Google federation, and the session middleware.
type Module struct {
	svc     *authsvc.Service
	cookies *cookie.Manager
	log     *slog.Logger

	secureCookie bool
}

// Option configures the module.
type Option func(*Module)

// WithLogger supplies a logger; a noop logger is used otherwise.
func WithLogger(log *slog.Logger) Option {
	return func(m *Module) { m.log = log }
}

// WithSecureCookie marks the session cookie Secure. Enable outside
// development so the cookie only travels over TLS.
func WithSecureCookie(secure bool) Option {
	return func(m *Module) { m.secureCookie = secure }
}

// NewModule creates the HTTP module around the auth service.
func NewModule(svc *authsvc.Service, opts ...Option) *Module {
	m := &Module{
		svc:     svc,
		cookies: cookie.New(cookie.WithSameSite(http.SameSiteStrictMode)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}
	m.log = m.log.With(logger.Component("auth_http"))
	return m
}

// Router returns the route table, meant to be mounted at /api/auth.
func (m *Module) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", m.handleSignUp)
	r.Get("/verify-email/{token}", m.handleVerifyEmail)
	r.Post("/verify-email/{token}", m.handleResendVerification)
	r.Post("/login", m.handleLogin)
	r.Post("/forgot-password", m.handleForgotPassword)
	r.Get("/reset-password/{token}", m.handleValidateResetToken)
	r.Post("/reset/{token}", m.handleResetPassword)

	if m.svc.GoogleEnabled() {
		r.Get("/google", m.handleGoogleRedirect)
		r.Get("/google/callback", m.handleGoogleCallback)
	}

	r.Group(func(protected chi.Router) {
		protected.Use(m.SessionMiddleware)
		protected.Post("/logout", m.handleLogout)
		protected.Get("/me", m.handleMe)
	})

	return r
}

func (m *Module) setSessionCookie(w http.ResponseWriter, token string) {
	m.cookies.Set(w, SessionCookieName, token,
		cookie.WithMaxAge(int(m.svc.Sessions().TTL().Seconds())),
		cookie.WithSameSite(http.SameSiteStrictMode),
		cookie.WithSecure(m.secureCookie),
	)
}

func (m *Module) clearSessionCookie(w http.ResponseWriter) {
	m.cookies.Delete(w, SessionCookieName)
}

func (m *Module) respondError(r *http.Request, w http.ResponseWriter, err error) {
	if core.HTTPStatus(err) == http.StatusInternalServerError {
		m.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), logger.Error(err))
	}
	core.RespondError(w, err)
}
