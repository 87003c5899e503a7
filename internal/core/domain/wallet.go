package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlockchainType discriminates the cryptographic curve/network family of an address.
type BlockchainType string

const (
	// BlockchainTypeSolana is the only network family currently supported:
	// base58-encoded 32-byte ed25519 public keys.
	BlockchainTypeSolana BlockchainType = "solana"
)

// WalletAddress is one (user, address) pair over all time. Rows are never
// hard-deleted by this subsystem; disconnecting sets the soft-delete markers.
type WalletAddress struct {
	ID                  uuid.UUID      `json:"id"`
	UserID              uuid.UUID      `json:"user_id"`
	Address             string         `json:"address"`
	BlockchainType      BlockchainType `json:"blockchain_type"`
	IsPrimary           bool           `json:"is_primary"`
	VerifiedAt          *time.Time     `json:"verified_at,omitempty"`
	LastUsedAt          *time.Time     `json:"last_used_at,omitempty"`
	DeletedAt           *time.Time     `json:"deleted_at,omitempty"`
	DeletedBy           *string        `json:"-"`
	DisconnectionReason *string        `json:"disconnection_reason,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// IsActive returns true if the wallet has not been soft-deleted.
func (w *WalletAddress) IsActive() bool {
	return w.DeletedAt == nil
}

// TruncateAddress returns a short address prefix safe for logging.
func TruncateAddress(address string) string {
	if len(address) <= 8 {
		return address
	}
	return address[:8] + "..."
}
