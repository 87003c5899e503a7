package domain

import (
	"time"

	"github.com/google/uuid"
)

// NonceRecord is the ephemeral challenge state stored in Redis under the nonce
// itself. It is never persisted durably: it is created on request, consumed
// exactly once on a matching verify call, or evicted untouched by the TTL.
type NonceRecord struct {
	UserID    uuid.UUID `json:"user_id"`
	Nonce     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the record's own expiry has passed. The store's
// TTL eviction can lag this instant, so consumers re-check it.
func (n *NonceRecord) Expired(now time.Time) bool {
	return now.After(n.ExpiresAt)
}
