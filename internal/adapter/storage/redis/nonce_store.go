package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ticket-wallet-service/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore implements ports.NonceStore on Redis. Records live under the
// nonce value itself in a namespaced key so they cannot collide with
// unrelated limiters sharing the same store instance.
type NonceStore struct {
	client *goredis.Client
	prefix string
}

// NewNonceStore creates a new Redis-backed nonce store.
func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{
		client: client,
		prefix: "wallet:nonce:",
	}
}

// Save stores the record as JSON with the store's native expiry set to ttl.
func (s *NonceStore) Save(ctx context.Context, rec *domain.NonceRecord, ttl time.Duration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal nonce record: %w", err)
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	if err := s.client.Set(ctx, s.prefix+rec.Nonce, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis nonce save: %w", err)
	}
	return nil
}

// Consume fetches and deletes the record with GETDEL in a single atomic round
// trip, so two concurrent consumers of the same nonce see at most one record.
// Returns nil, nil when the nonce is absent (consumed or expired).
func (s *NonceStore) Consume(ctx context.Context, nonce string) (*domain.NonceRecord, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	val, err := s.client.GetDel(ctx, s.prefix+nonce).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis nonce consume: %w", err)
	}

	rec := &domain.NonceRecord{}
	if err := json.Unmarshal(val, rec); err != nil {
		return nil, fmt.Errorf("unmarshal nonce record: %w", err)
	}
	return rec, nil
}
