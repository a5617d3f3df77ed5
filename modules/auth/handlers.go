package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/linkvaulthq/linkvault/core"
	"github.com/linkvaulthq/linkvault/pkg/logger"
	authsvc "github.com/linkvaulthq/linkvault/svc/auth"
)

func (m *Module) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var params authsvc.SignUpParams
	if err := core.DecodeJSON(r, &params); err != nil {
		m.respondError(r, w, err)
		return
	}

	userID, err := m.svc.SignUp(r.Context(), params)
	if err != nil {
		m.respondError(r, w, err)
		return
	}

	core.RespondJSON(w, http.StatusCreated,
		"User created successfully. Please check your email to verify your account.",
		map[string]uuid.UUID{"userId": userID})
}

func (m *Module) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := m.svc.VerifyEmail(r.Context(), chi.URLParam(r, "token")); err != nil {
		m.respondError(r, w, err)
		return
	}
	core.RespondJSON(w, http.StatusOK, "Email verified successfully, you can now login", nil)
}

func (m *Module) handleResendVerification(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := core.DecodeJSON(r, &body); err != nil {
		m.respondError(r, w, err)
		return
	}

	if err := m.svc.ResendVerification(r.Context(), body.Email); err != nil {
		m.respondError(r, w, err)
		return
	}
	core.RespondJSON(w, http.StatusOK, "Verification email sent", nil)
}

func (m *Module) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := core.DecodeJSON(r, &body); err != nil {
		m.respondError(r, w, err)
		return
	}

	profile, token, err := m.svc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		m.respondError(r, w, err)
		return
	}

	m.setSessionCookie(w, token)
	core.RespondJSON(w, http.StatusOK, "Login successful", profile)
}

func (m *Module) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Sessions are stateless, so logout is cookie clearing only.
	m.clearSessionCookie(w)
	core.RespondJSON(w, http.StatusOK, "Logged out successfully", nil)
}

func (m *Module) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := authsvc.GetUserIDFromContext(r.Context())
	if !ok {
		m.respondError(r, w, core.NewError(core.KindUnauthorized, "Unauthorized"))
		return
	}

	profile, err := m.svc.GetProfile(r.Context(), userID)
	if err != nil {
		m.respondError(r, w, err)
		return
	}
	core.RespondJSON(w, http.StatusOK, "", profile)
}

func (m *Module) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := core.DecodeJSON(r, &body); err != nil {
		m.respondError(r, w, err)
		return
	}

	if err := m.svc.ForgotPassword(r.Context(), body.Email); err != nil {
		m.respondError(r, w, err)
		return
	}
	core.RespondJSON(w, http.StatusOK,
		"If that email address is in our system, we have sent a password reset link", nil)
}

func (m *Module) handleValidateResetToken(w http.ResponseWriter, r *http.Request) {
	if err := m.svc.ValidateResetToken(r.Context(), chi.URLParam(r, "token")); err != nil {
		m.respondError(r, w, err)
		return
	}
	core.RespondJSON(w, http.StatusOK, "Reset token is valid", nil)
}

func (m *Module) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		NewPassword string `json:"newPassword"`
	}
	if err := core.DecodeJSON(r, &body); err != nil {
		m.respondError(r, w, err)
		return
	}

	if err := m.svc.ResetPassword(r.Context(), chi.URLParam(r, "token"), body.NewPassword); err != nil {
		m.respondError(r, w, err)
		return
	}
	core.RespondJSON(w, http.StatusOK, "Password has been reset successfully", nil)
}

func (m *Module) handleGoogleRedirect(w http.ResponseWriter, r *http.Request) {
	url, err := m.svc.BeginGoogleLogin(r.Context())
	if err != nil {
		m.respondError(r, w, err)
		return
	}
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (m *Module) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")

	_, token, err := m.svc.CompleteGoogleLogin(r.Context(), state, code)
	if err != nil {
		m.log.WarnContext(r.Context(), "google callback failed", logger.Error(err))
		http.Redirect(w, r, m.svc.FailureRedirectURL(), http.StatusTemporaryRedirect)
		return
	}

	m.setSessionCookie(w, token)
	http.Redirect(w, r, m.svc.SuccessRedirectURL(), http.StatusTemporaryRedirect)
}
