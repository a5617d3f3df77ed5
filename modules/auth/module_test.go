package auth_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/linkvaulthq/linkvault/svc/auth"
)

// memStorage is an in-memory Storage with the same consumption semantics as
// the Postgres implementation: challenge tokens match only while unexpired
// and are cleared atomically with the state change they authorize.
type memStorage struct {
	mu    sync.Mutex
	users map[uuid.UUID]*authsvc.User
}

func newMemStorage() *memStorage {
	return &memStorage{users: make(map[uuid.UUID]*authsvc.User)}
}

func (s *memStorage) clone(u *authsvc.User) *authsvc.User {
	cp := *u
	return &cp
}

func (s *memStorage) CreateUser(_ context.Context, user *authsvc.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return authsvc.ErrEmailTaken
		}
		if user.GoogleID != nil && u.GoogleID != nil && *u.GoogleID == *user.GoogleID {
			return authsvc.ErrEmailTaken
		}
	}
	now := time.Now()
	cp := *user
	cp.CreatedAt = now
	cp.UpdatedAt = now
	s.users[user.ID] = &cp
	return nil
}

func (s *memStorage) GetUserByID(_ context.Context, id uuid.UUID) (*authsvc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return s.clone(u), nil
	}
	return nil, authsvc.ErrUserNotFound
}

func (s *memStorage) GetUserByEmail(_ context.Context, email string) (*authsvc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return s.clone(u), nil
		}
	}
	return nil, authsvc.ErrUserNotFound
}

func (s *memStorage) GetUserByGoogleID(_ context.Context, googleID string) (*authsvc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return s.clone(u), nil
		}
	}
	return nil, authsvc.ErrUserNotFound
}

func (s *memStorage) GetUserByResetToken(_ context.Context, token string) (*authsvc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ResetToken != nil && *u.ResetToken == token &&
			u.ResetExpiresAt != nil && u.ResetExpiresAt.After(time.Now()) {
			return s.clone(u), nil
		}
	}
	return nil, authsvc.ErrTokenNotFound
}

func (s *memStorage) SetVerificationToken(_ context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return authsvc.ErrUserNotFound
	}
	u.VerificationToken = &token
	u.VerificationExpiresAt = &expiresAt
	return nil
}

func (s *memStorage) ConsumeVerificationToken(_ context.Context, token string) (*authsvc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.VerificationToken != nil && *u.VerificationToken == token &&
			u.VerificationExpiresAt != nil && u.VerificationExpiresAt.After(time.Now()) {
			u.IsVerified = true
			u.VerificationToken = nil
			u.VerificationExpiresAt = nil
			return s.clone(u), nil
		}
	}
	return nil, authsvc.ErrTokenNotFound
}

func (s *memStorage) SetResetToken(_ context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return authsvc.ErrUserNotFound
	}
	u.ResetToken = &token
	u.ResetExpiresAt = &expiresAt
	return nil
}

func (s *memStorage) ConsumeResetToken(_ context.Context, token string, newPasswordHash string) (*authsvc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ResetToken != nil && *u.ResetToken == token &&
			u.ResetExpiresAt != nil && u.ResetExpiresAt.After(time.Now()) {
			u.PasswordHash = newPasswordHash
			u.ResetToken = nil
			u.ResetExpiresAt = nil
			return s.clone(u), nil
		}
	}
	return nil, authsvc.ErrTokenNotFound
}

func (s *memStorage) LinkGoogleID(_ context.Context, userID uuid.UUID, googleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return authsvc.ErrUserNotFound
	}
	u.GoogleID = &googleID
	u.IsVerified = true
	return nil
}

func (s *memStorage) UpdateLastLoginAt(_ context.Context, userID uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return authsvc.ErrUserNotFound
	}
	u.LastLoginAt = &at
	return nil
}

// expireTokens force-expires any outstanding challenges, for expiry tests.
func (s *memStorage) expireTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	past := time.Now().Add(-time.Minute)
	for _, u := range s.users {
		if u.VerificationExpiresAt != nil {
			u.VerificationExpiresAt = &past
		}
		if u.ResetExpiresAt != nil {
			u.ResetExpiresAt = &past
		}
	}
}

// recordingMailer captures the tokens that would have been emailed.
type recordingMailer struct {
	mu                 sync.Mutex
	verificationTokens map[string]string
	resetTokens        map[string]string
	welcomed           []string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{
		verificationTokens: make(map[string]string),
		resetTokens:        make(map[string]string),
	}
}

func (m *recordingMailer) SendVerificationEmail(email, _, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verificationTokens[email] = token
}

func (m *recordingMailer) SendWelcomeEmail(email, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.welcomed = append(m.welcomed, email)
}

func (m *recordingMailer) SendPasswordResetEmail(email, _, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetTokens[email] = token
}

func (m *recordingMailer) verificationToken(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verificationTokens[email]
}

func (m *recordingMailer) resetToken(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resetTokens[email]
}
