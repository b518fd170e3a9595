package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore keeps per-account credential revocation watermarks in Redis.
// Key format: revoked:<user_id> → unix seconds of the watermark.
//
// The key expires after the token TTL: every token issued before the
// watermark has also expired by then, so the entry no longer gates anything.
type RevocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
// ttl should match the bearer token TTL.
func NewRevocationStore(client *redis.Client, ttl time.Duration) *RevocationStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RevocationStore{client: client, ttl: ttl}
}

// Revoke moves the account's watermark to the given instant.
func (s *RevocationStore) Revoke(ctx context.Context, userID string, at time.Time) error {
	if err := s.client.Set(ctx, s.key(userID), at.Unix(), s.ttl).Err(); err != nil {
		return fmt.Errorf("revocation set: %w", err)
	}
	return nil
}

// RevokedAt returns the account's watermark, or the zero time when no
// revocation is recorded.
func (s *RevocationStore) RevokedAt(ctx context.Context, userID string) (time.Time, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("revocation get: %w", err)
	}

	ts, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("revocation parse: %w", err)
	}
	return time.Unix(ts, 0).UTC(), nil
}

func (s *RevocationStore) key(userID string) string {
	return "revoked:" + userID
}
