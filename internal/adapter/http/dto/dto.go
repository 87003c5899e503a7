package dto

import (
	"time"

	"ticket-wallet-service/internal/core/domain"
)

// NonceResponse is the response body for nonce issuance. Message is the
// exact string the wallet must sign.
type NonceResponse struct {
	Nonce     string `json:"nonce"`
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// ConnectWalletRequest is the request body for wallet connection.
type ConnectWalletRequest struct {
	Address   string `json:"address" binding:"required,wallet_addr"`
	Signature string `json:"signature" binding:"required,max=128"`
	Nonce     string `json:"nonce" binding:"required,max=128,safe_id"`
}

// ConnectWalletResponse is the response body for successful connection.
type ConnectWalletResponse struct {
	Wallet WalletResponse `json:"wallet"`
	Status string         `json:"status"` // connected | reconnected | restored
}

// DisconnectWalletRequest is the request body for wallet disconnection.
type DisconnectWalletRequest struct {
	Address string `json:"address" binding:"required,wallet_addr"`
	Reason  string `json:"reason,omitempty" binding:"max=255"`
}

// DisconnectWalletResponse reports whether an active wallet was removed.
type DisconnectWalletResponse struct {
	Disconnected bool `json:"disconnected"`
}

// RestoreWalletRequest is the request body for restoring a soft-deleted wallet.
type RestoreWalletRequest struct {
	Address string `json:"address" binding:"required,wallet_addr"`
}

// RestoreWalletResponse is the response body for a restore attempt.
type RestoreWalletResponse struct {
	Restored bool            `json:"restored"`
	Wallet   *WalletResponse `json:"wallet,omitempty"`
}

// VerifyOwnershipRequest is the request body for an ownership check.
type VerifyOwnershipRequest struct {
	Address string `json:"address" binding:"required,max=64"`
}

// VerifyOwnershipResponse is the response body for an ownership check.
type VerifyOwnershipResponse struct {
	Owned bool `json:"owned"`
}

// WalletResponse is the client-facing view of a wallet address row.
type WalletResponse struct {
	ID                  string  `json:"id"`
	Address             string  `json:"address"`
	BlockchainType      string  `json:"blockchain_type"`
	IsPrimary           bool    `json:"is_primary"`
	VerifiedAt          *string `json:"verified_at,omitempty"`
	LastUsedAt          *string `json:"last_used_at,omitempty"`
	DeletedAt           *string `json:"deleted_at,omitempty"`
	DisconnectionReason *string `json:"disconnection_reason,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

// AuditResponse is the client-facing view of one audit trail record.
type AuditResponse struct {
	ID                  string  `json:"id"`
	Address             string  `json:"address"`
	ConnectionType      string  `json:"connection_type"`
	IsPrimary           bool    `json:"is_primary"`
	ConnectionIP        string  `json:"connection_ip,omitempty"`
	DisconnectionReason *string `json:"disconnection_reason,omitempty"`
	ConnectedAt         string  `json:"connected_at"`
}

// ToWalletResponse maps a domain wallet to its client-facing view.
func ToWalletResponse(w *domain.WalletAddress) WalletResponse {
	return WalletResponse{
		ID:                  w.ID.String(),
		Address:             w.Address,
		BlockchainType:      string(w.BlockchainType),
		IsPrimary:           w.IsPrimary,
		VerifiedAt:          formatTimePtr(w.VerifiedAt),
		LastUsedAt:          formatTimePtr(w.LastUsedAt),
		DeletedAt:           formatTimePtr(w.DeletedAt),
		DisconnectionReason: w.DisconnectionReason,
		CreatedAt:           w.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToAuditResponse maps a domain audit record to its client-facing view. The
// signature proof is intentionally absent.
func ToAuditResponse(a *domain.WalletConnectionAudit) AuditResponse {
	return AuditResponse{
		ID:                  a.ID.String(),
		Address:             a.Address,
		ConnectionType:      string(a.ConnectionType),
		IsPrimary:           a.IsPrimary,
		ConnectionIP:        a.ConnectionIP,
		DisconnectionReason: a.DisconnectionReason,
		ConnectedAt:         a.ConnectedAt.UTC().Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
