package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateUser(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStorage) GetUserByGoogleID(ctx context.Context, googleID string) (*User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStorage) GetUserByResetToken(ctx context.Context, token string) (*User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStorage) SetVerificationToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, token, expiresAt)
	return args.Error(0)
}

func (m *MockStorage) ConsumeVerificationToken(ctx context.Context, token string) (*User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStorage) SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, token, expiresAt)
	return args.Error(0)
}

func (m *MockStorage) ConsumeResetToken(ctx context.Context, token string, newPasswordHash string) (*User, error) {
	args := m.Called(ctx, token, newPasswordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStorage) LinkGoogleID(ctx context.Context, userID uuid.UUID, googleID string) error {
	args := m.Called(ctx, userID, googleID)
	return args.Error(0)
}

func (m *MockStorage) UpdateLastLoginAt(ctx context.Context, userID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

// MockMailer is a mock implementation of Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationEmail(email, name, token string) {
	m.Called(email, name, token)
}

func (m *MockMailer) SendWelcomeEmail(email, name string) {
	m.Called(email, name)
}

func (m *MockMailer) SendPasswordResetEmail(email, name, token string) {
	m.Called(email, name, token)
}

// MockProfileCache is a mock implementation of ProfileCache.
type MockProfileCache struct {
	mock.Mock
}

func (m *MockProfileCache) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func (m *MockProfileCache) SetProfile(ctx context.Context, profile Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileCache) InvalidateProfile(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockStateStore is a mock implementation of StateStore.
type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) SaveState(ctx context.Context, state string, ttl time.Duration) error {
	args := m.Called(ctx, state, ttl)
	return args.Error(0)
}

func (m *MockStateStore) ConsumeState(ctx context.Context, state string) (bool, error) {
	args := m.Called(ctx, state)
	return args.Bool(0), args.Error(1)
}

// MockProviderAdapter is a mock implementation of ProviderAdapter.
type MockProviderAdapter struct {
	mock.Mock
}

func (m *MockProviderAdapter) ProviderID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProviderAdapter) AuthURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockProviderAdapter) ResolveProfile(ctx context.Context, code string) (ProviderProfile, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(ProviderProfile), args.Error(1)
}
