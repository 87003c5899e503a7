package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionType labels a wallet lifecycle transition in the audit trail.
type ConnectionType string

const (
	ConnectionTypeConnect    ConnectionType = "CONNECT"
	ConnectionTypeReconnect  ConnectionType = "RECONNECT"
	ConnectionTypeDisconnect ConnectionType = "DISCONNECT"
)

// WalletConnectionAudit is one immutable record per lifecycle transition.
// Rows are append-only: never updated, never deleted.
type WalletConnectionAudit struct {
	ID                  uuid.UUID      `json:"id"`
	UserID              uuid.UUID      `json:"user_id"`
	Address             string         `json:"address"`
	SignatureProof      string         `json:"-"` // opaque signature bytes, kept for non-repudiation
	ConnectionType      ConnectionType `json:"connection_type"`
	IsPrimary           bool           `json:"is_primary"` // snapshot at time of event
	ConnectionIP        string         `json:"connection_ip,omitempty"`
	DisconnectionReason *string        `json:"disconnection_reason,omitempty"`
	ConnectedAt         time.Time      `json:"connected_at"`
}
