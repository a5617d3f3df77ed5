package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/linkvaulthq/linkvault/core"
	"github.com/linkvaulthq/linkvault/pkg/logger"
	"github.com/linkvaulthq/linkvault/pkg/sanitizer"
)

// GoogleEnabled reports whether the Google federation flow is wired up.
func (s *Service) GoogleEnabled() bool {
	return s.provider != nil && s.states != nil
}

// BeginGoogleLogin mints a single-use state token and returns the provider
// authorization URL to redirect the browser to.
func (s *Service) BeginGoogleLogin(ctx context.Context) (string, error) {
	if !s.GoogleEnabled() {
		return "", core.NewError(core.KindNotFound, "Google login is not available")
	}
	state, err := newStateToken()
	if err != nil {
		return "", core.WrapError(core.KindInternal, "Internal server error", err)
	}
	if err := s.states.SaveState(ctx, state, s.oauthCfg.StateTTL); err != nil {
		return "", core.WrapError(core.KindInternal, "Internal server error", err)
	}
	return s.provider.AuthURL(state), nil
}

// CompleteGoogleLogin validates the callback, resolves the provider profile
// to a local user and issues a session. Resolution order, first match wins:
//
//  1. a user already carries this provider subject;
//  2. a user exists with the same email, so the subject is linked onto it
//     and the account is forced verified;
//  3. a new user is created with a placeholder password.
func (s *Service) CompleteGoogleLogin(ctx context.Context, state, code string) (Profile, string, error) {
	if !s.GoogleEnabled() {
		return Profile{}, "", core.NewError(core.KindNotFound, "Google login is not available")
	}

	ok, err := s.states.ConsumeState(ctx, state)
	if err != nil {
		return Profile{}, "", core.WrapError(core.KindInternal, "Internal server error", err)
	}
	if !ok {
		return Profile{}, "", core.WrapError(core.KindUnauthorized, "Authentication failed", ErrInvalidOAuthState)
	}

	profile, err := s.provider.ResolveProfile(ctx, code)
	if err != nil {
		return Profile{}, "", core.WrapError(core.KindUnauthorized, "Authentication failed", err)
	}
	profile.Email = sanitizer.NormalizeEmail(profile.Email)

	user, err := s.resolveFederatedUser(ctx, profile)
	if err != nil {
		return Profile{}, "", err
	}

	token, err := s.finishLogin(ctx, user)
	if err != nil {
		return Profile{}, "", err
	}
	s.log.InfoContext(ctx, "federated login",
		logger.UserID(user.ID), logger.Event("oauth_login"),
		logger.Component(s.provider.ProviderID()))
	return user.Profile(), token, nil
}

func (s *Service) resolveFederatedUser(ctx context.Context, profile ProviderProfile) (*User, error) {
	user, err := s.storage.GetUserByGoogleID(ctx, profile.ProviderUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, core.WrapError(core.KindInternal, "Internal server error", err)
	}

	user, err = s.storage.GetUserByEmail(ctx, profile.Email)
	if err == nil {
		if err := s.storage.LinkGoogleID(ctx, user.ID, profile.ProviderUserID); err != nil {
			return nil, core.WrapError(core.KindInternal, "Internal server error", err)
		}
		user.GoogleID = &profile.ProviderUserID
		user.IsVerified = true
		s.invalidateProfile(ctx, user.ID)
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, core.WrapError(core.KindInternal, "Internal server error", err)
	}

	return s.createFederatedUser(ctx, profile)
}

func (s *Service) createFederatedUser(ctx context.Context, profile ProviderProfile) (*User, error) {
	placeholder, err := placeholderPassword()
	if err != nil {
		return nil, core.WrapError(core.KindInternal, "Internal server error", err)
	}
	hash, err := hashPassword(placeholder, s.cfg.BcryptCost)
	if err != nil {
		return nil, core.WrapError(core.KindInternal, "Internal server error", err)
	}

	name := sanitizer.TrimName(profile.Name)
	if name == "" {
		name = profile.Email
	}
	user := &User{
		ID:           uuid.New(),
		Email:        profile.Email,
		Name:         name,
		PasswordHash: hash,
		GoogleID:     &profile.ProviderUserID,
		IsVerified:   true,
	}
	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, core.WrapError(core.KindInternal, "Internal server error", err)
	}
	s.log.InfoContext(ctx, "federated user created",
		logger.UserID(user.ID), logger.Event("oauth_signup"))
	return user, nil
}

// SuccessRedirectURL is the post-login browser destination.
func (s *Service) SuccessRedirectURL() string { return s.oauthCfg.SuccessRedirectURL }

// FailureRedirectURL is where failed callbacks send the browser.
func (s *Service) FailureRedirectURL() string { return s.oauthCfg.FailureRedirectURL }
