package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps submission idempotency keys to the complaint number
// created on first use, so double-taps on the QR form replay instead of
// filing twice. Key format: idem:submit:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the complaint number recorded for key, if any.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	number, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return number, true, nil
}

// Remember records the complaint number for key (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key, complaintNumber string) error {
	return s.client.Set(ctx, s.key(key), complaintNumber, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:submit:" + key
}
