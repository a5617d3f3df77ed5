package auth

import (
	"net/http"

	"github.com/linkvaulthq/linkvault/core"
	"github.com/linkvaulthq/linkvault/pkg/jwt"
	authsvc "github.com/linkvaulthq/linkvault/svc/auth"
)

// SessionMiddleware authenticates requests from the session cookie, falling
// back to the Authorization header. It verifies signature and expiry only
// and never touches storage; the reason for a rejection is not revealed to
// the caller.
func (m *Module) SessionMiddleware(next http.Handler) http.Handler {
	extract := jwt.ChainExtractors(
		jwt.CookieTokenExtractor(SessionCookieName),
		jwt.BearerTokenExtractor,
	)
	unauthorized := core.NewError(core.KindUnauthorized, "Unauthorized")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extract(r)
		if err != nil {
			core.RespondError(w, unauthorized)
			return
		}
		userID, err := m.svc.Sessions().Verify(token)
		if err != nil {
			core.RespondError(w, unauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(authsvc.SetUserIDToContext(r.Context(), userID)))
	})
}
