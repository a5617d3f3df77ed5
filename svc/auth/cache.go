package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const profileCacheTTL = 15 * time.Minute

// StateStore holds single-use OAuth state tokens between the redirect to the
// provider and the callback.
type StateStore interface {
	SaveState(ctx context.Context, state string, ttl time.Duration) error
	// ConsumeState deletes the state and reports whether it existed, so a
	// state token cannot be replayed.
	ConsumeState(ctx context.Context, state string) (bool, error)
}

// ProfileCache caches public profiles for the authenticated read path.
// A miss is not an error; a backend failure is, so callers can degrade to a
// direct read.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	SetProfile(ctx context.Context, profile Profile) error
	InvalidateProfile(ctx context.Context, userID uuid.UUID) error
}

// RedisStore implements StateStore and ProfileCache on a shared Redis client.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates the Redis-backed state store and profile cache.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func stateKey(state string) string   { return "auth:oauth:state:" + state }
func profileKey(id uuid.UUID) string { return "auth:profile:" + id.String() }

func (s *RedisStore) SaveState(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, stateKey(state), "1", ttl).Err(); err != nil {
		return fmt.Errorf("save oauth state: %w", err)
	}
	return nil
}

func (s *RedisStore) ConsumeState(ctx context.Context, state string) (bool, error) {
	n, err := s.client.Del(ctx, stateKey(state)).Result()
	if err != nil {
		return false, fmt.Errorf("consume oauth state: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	raw, err := s.client.Get(ctx, profileKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode cached profile: %w", err)
	}
	return &p, nil
}

func (s *RedisStore) SetProfile(ctx context.Context, profile Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.client.Set(ctx, profileKey(profile.ID), raw, profileCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache profile: %w", err)
	}
	return nil
}

func (s *RedisStore) InvalidateProfile(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, profileKey(userID)).Err(); err != nil {
		return fmt.Errorf("invalidate cached profile: %w", err)
	}
	return nil
}
