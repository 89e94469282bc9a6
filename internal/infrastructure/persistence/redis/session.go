package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// SessionStore keeps login sessions and the access-token blacklist in Redis.
// Keys: session:{user_id} (hash), blacklist:{token} (string with TTL).
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates the session store.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SaveSession records the user's login; TTL matches the refresh token.
func (s *SessionStore) SaveSession(ctx context.Context, userID uint, data map[string]interface{}, ttl time.Duration) error {
	key := fmt.Sprintf("session:%d", userID)
	if err := s.client.HSet(ctx, key, data).Err(); err != nil {
		return apperrors.Wrap(err, "failed to save session")
	}
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to set session expiry")
	}
	return nil
}

// DeleteSession removes the user's session on logout.
func (s *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	key := fmt.Sprintf("session:%d", userID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete session")
	}
	return nil
}

// BlacklistToken invalidates an access token until it would have expired.
func (s *SessionStore) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to block
	}
	key := "blacklist:" + token
	if err := s.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to blacklist token")
	}
	return nil
}

// IsBlacklisted reports whether the token was invalidated by a logout.
func (s *SessionStore) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check token blacklist")
	}
	return n > 0, nil
}
