package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads cookies with a consistent set of security
// defaults. Values that need integrity protection (session tokens) are
// already signed before they reach the cookie layer.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults are httpOnly, path "/", SameSite=Lax;
// callers override per cookie with options.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Set writes a cookie using the manager defaults merged with opts.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Get returns the named cookie's value, or ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete expires the named cookie immediately. Attributes must match the
// ones used on Set or browsers keep the original cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}
