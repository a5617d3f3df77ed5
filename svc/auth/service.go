package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/linkvaulthq/linkvault/core"
	"github.com/linkvaulthq/linkvault/pkg/logger"
	"github.com/linkvaulthq/linkvault/pkg/sanitizer"
	"github.com/linkvaulthq/linkvault/pkg/validator"
)

// Mailer is the outbound-mail collaborator. Implementations must only
// enqueue: dispatch happens off the request path and failures are logged,
// never surfaced to the caller.
type Mailer interface {
	SendVerificationEmail(email, name, token string)
	SendWelcomeEmail(email, name string)
	SendPasswordResetEmail(email, name, token string)
}

// Service orchestrates signup, login, email verification, password reset and
// Google federation against the credential store.
type Service struct {
	cfg      Config
	storage  Storage
	sessions *SessionManager
	mailer   Mailer
	log      *slog.Logger

	cache    ProfileCache
	states   StateStore
	provider ProviderAdapter
	oauthCfg GoogleOAuthConfig
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithLogger supplies a logger; a noop logger is used otherwise.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithProfileCache enables the cached profile read path.
func WithProfileCache(cache ProfileCache) Option {
	return func(s *Service) { s.cache = cache }
}

// WithGoogleFederation enables the Google OAuth flow.
func WithGoogleFederation(adapter ProviderAdapter, cfg GoogleOAuthConfig, states StateStore) Option {
	return func(s *Service) {
		s.provider = adapter
		s.oauthCfg = cfg
		s.states = states
	}
}

// NewService creates the auth service.
func NewService(cfg Config, storage Storage, sessions *SessionManager, mailer Mailer, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		storage:  storage,
		sessions: sessions,
		mailer:   mailer,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	s.log = s.log.With(logger.Component("auth"))
	return s
}

// Sessions exposes the session manager for the HTTP middleware.
func (s *Service) Sessions() *SessionManager { return s.sessions }

// SignUpParams carries the local signup input.
type SignUpParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignUp creates an unverified user, stores a verification challenge and
// enqueues the verification email. No session is issued.
func (s *Service) SignUp(ctx context.Context, params SignUpParams) (uuid.UUID, error) {
	email := sanitizer.NormalizeEmail(params.Email)
	name := sanitizer.TrimName(params.Name)

	if err := validator.Apply(
		validator.Required("email", email),
		validator.Required("password", params.Password),
		validator.Required("name", name),
	); err != nil {
		return uuid.Nil, core.NewError(core.KindInvalidInput, "All fields are required")
	}
	if err := validator.Apply(
		validator.ValidEmail("email", email),
		validator.StrongPassword("password", params.Password, validator.DefaultPasswordStrength()),
		validator.NotCommonPassword("password", params.Password),
	); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return uuid.Nil, core.NewError(core.KindInvalidInput, ve[0].Message)
		}
		return uuid.Nil, core.NewError(core.KindInvalidInput, "Invalid input")
	}

	hash, err := hashPassword(params.Password, s.cfg.BcryptCost)
	if err != nil {
		return uuid.Nil, core.WrapError(core.KindInternal, "Internal server error", err)
	}
	token, err := newVerificationToken()
	if err != nil {
		return uuid.Nil, core.WrapError(core.KindInternal, "Internal server error", err)
	}
	expiresAt := time.Now().Add(s.cfg.VerificationTTL)

	user := &User{
		ID:                    uuid.New(),
		Email:                 email,
		Name:                  name,
		PasswordHash:          hash,
		VerificationToken:     &token,
		VerificationExpiresAt: &expiresAt,
	}
	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return uuid.Nil, core.NewError(core.KindConflict, "User already exists")
		}
		return uuid.Nil, core.WrapError(core.KindInternal, "Internal server error", err)
	}

	s.mailer.SendVerificationEmail(user.Email, user.Name, token)
	s.log.InfoContext(ctx, "user signed up",
		logger.UserID(user.ID), logger.Event("signup"))
	return user.ID, nil
}

// VerifyEmail consumes the verification challenge, marks the user verified
// and enqueues the welcome email. The user must still log in afterwards.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return core.NewError(core.KindInvalidOrExpired, "Invalid or expired verification token")
	}
	user, err := s.storage.ConsumeVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return core.NewError(core.KindInvalidOrExpired, "Invalid or expired verification token")
		}
		return core.WrapError(core.KindInternal, "Internal server error", err)
	}

	s.invalidateProfile(ctx, user.ID)
	s.mailer.SendWelcomeEmail(user.Email, user.Name)
	s.log.InfoContext(ctx, "email verified",
		logger.UserID(user.ID), logger.Event("verify_email"))
	return nil
}

// ResendVerification replaces any outstanding verification challenge with a
// fresh one and resends the email.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	email = sanitizer.NormalizeEmail(email)
	if err := validator.Apply(validator.Required("email", email)); err != nil {
		return core.NewError(core.KindInvalidInput, "Email is required")
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return core.NewError(core.KindNotFound, "User not found")
		}
		return core.WrapError(core.KindInternal, "Internal server error", err)
	}
	if user.IsVerified {
		return core.NewError(core.KindInvalidInput, "Email is already verified")
	}

	token, err := newVerificationToken()
	if err != nil {
		return core.WrapError(core.KindInternal, "Internal server error", err)
	}
	if err := s.storage.SetVerificationToken(ctx, user.ID, token, time.Now().Add(s.cfg.VerificationTTL)); err != nil {
		return core.WrapError(core.KindInternal, "Internal server error", err)
	}

	s.mailer.SendVerificationEmail(user.Email, user.Name, token)
	return nil
}

// Login verifies local credentials and issues a session token. Unknown
// email, wrong password and an unverified account without a linked Google
// identity all fail with the same error.
func (s *Service) Login(ctx context.Context, email, password string) (Profile, string, error) {
	email = sanitizer.NormalizeEmail(email)
	if email == "" || password == "" {
		return Profile{}, "", core.NewError(core.KindInvalidInput, "Email and password are required")
	}

	invalid := core.NewError(core.KindInvalidCredentials, "Invalid email or password")

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return Profile{}, "", invalid
		}
		return Profile{}, "", core.WrapError(core.KindInternal, "Internal server error", err)
	}
	if !verifyPassword(user.PasswordHash, password) {
		return Profile{}, "", invalid
	}
	if !user.IsVerified && user.GoogleID == nil {
		return Profile{}, "", invalid
	}

	token, err := s.finishLogin(ctx, user)
	if err != nil {
		return Profile{}, "", err
	}
	s.log.InfoContext(ctx, "user logged in",
		logger.UserID(user.ID), logger.Event("login"))
	return user.Profile(), token, nil
}

// finishLogin is the shared session-issuance step for local and federated
// logins: update LastLoginAt, drop the cached profile, mint the token.
func (s *Service) finishLogin(ctx context.Context, user *User) (string, error) {
	now := time.Now()
	if err := s.storage.UpdateLastLoginAt(ctx, user.ID, now); err != nil {
		return "", core.WrapError(core.KindInternal, "Internal server error", err)
	}
	user.LastLoginAt = &now
	s.invalidateProfile(ctx, user.ID)

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return "", core.WrapError(core.KindInternal, "Internal server error", err)
	}
	return token, nil
}

// ForgotPassword mints a reset challenge and emails the reset link. The
// response is identical whether or not the account exists, so the endpoint
// cannot be used to enumerate registered emails.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = sanitizer.NormalizeEmail(email)
	if err := validator.Apply(validator.Required("email", email)); err != nil {
		return core.NewError(core.KindInvalidInput, "Email is required")
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.log.InfoContext(ctx, "password reset requested for unknown email",
				logger.Email(email), logger.Event("forgot_password"))
			return nil
		}
		return core.WrapError(core.KindInternal, "Internal server error", err)
	}

	token, err := newResetToken()
	if err != nil {
		return core.WrapError(core.KindInternal, "Internal server error", err)
	}
	if err := s.storage.SetResetToken(ctx, user.ID, token, time.Now().Add(s.cfg.ResetTTL)); err != nil {
		return core.WrapError(core.KindInternal, "Internal server error", err)
	}

	s.mailer.SendPasswordResetEmail(user.Email, user.Name, token)
	return nil
}

// ValidateResetToken is the read-only probe the client calls before
// rendering the reset form.
func (s *Service) ValidateResetToken(ctx context.Context, token string) error {
	if token == "" {
		return core.NewError(core.KindInvalidOrExpired, "Invalid or expired reset token")
	}
	if _, err := s.storage.GetUserByResetToken(ctx, token); err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return core.NewError(core.KindInvalidOrExpired, "Invalid or expired reset token")
		}
		return core.WrapError(core.KindInternal, "Internal server error", err)
	}
	return nil
}

// ResetPassword consumes the reset challenge and replaces the password hash
// in the same storage operation. Token possession is the proof of identity,
// the old password is not required.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return core.NewError(core.KindInvalidOrExpired, "Invalid or expired reset token")
	}
	if newPassword == "" {
		return core.NewError(core.KindInvalidInput, "Password is required")
	}

	hash, err := hashPassword(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return core.WrapError(core.KindInternal, "Internal server error", err)
	}
	user, err := s.storage.ConsumeResetToken(ctx, token, hash)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return core.NewError(core.KindInvalidOrExpired, "Invalid or expired reset token")
		}
		return core.WrapError(core.KindInternal, "Internal server error", err)
	}

	s.invalidateProfile(ctx, user.ID)
	s.log.InfoContext(ctx, "password reset",
		logger.UserID(user.ID), logger.Event("reset_password"))
	return nil
}

// GetProfile returns the public profile for the authenticated user, served
// from the cache when possible. Cache failures degrade to direct reads.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	if s.cache != nil {
		cached, err := s.cache.GetProfile(ctx, userID)
		if err != nil {
			s.log.WarnContext(ctx, "profile cache read failed", logger.Error(err))
		} else if cached != nil {
			return *cached, nil
		}
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return Profile{}, core.NewError(core.KindUnauthorized, "Unauthorized")
		}
		return Profile{}, core.WrapError(core.KindInternal, "Internal server error", err)
	}

	profile := user.Profile()
	if s.cache != nil {
		if err := s.cache.SetProfile(ctx, profile); err != nil {
			s.log.WarnContext(ctx, "profile cache write failed", logger.Error(err))
		}
	}
	return profile, nil
}

func (s *Service) invalidateProfile(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProfile(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "profile cache invalidation failed",
			logger.UserID(userID), logger.Error(err))
	}
}
