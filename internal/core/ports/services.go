package ports

import (
	"context"
	"time"

	"ticket-wallet-service/internal/core/domain"

	"github.com/google/uuid"
)

// --- Ephemeral store ports ---

// NonceStore stores and atomically consumes single-use challenge nonces.
type NonceStore interface {
	// Save stores the record under its nonce with the store's native expiry.
	Save(ctx context.Context, rec *domain.NonceRecord, ttl time.Duration) error
	// Consume fetches and deletes the record in a single atomic operation.
	// Returns nil, nil when the nonce is absent (already consumed or
	// expired). At most one of two concurrent consumers observes the record.
	Consume(ctx context.Context, nonce string) (*domain.NonceRecord, error)
}

// RateLimitStore is a windowed counter backed by the shared ephemeral store.
type RateLimitStore interface {
	// Incr increments the counter for the current window of the given key
	// and returns the post-increment count plus the key's remaining TTL.
	// A non-positive TTL means the store could not report one.
	Incr(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}

// --- Service ports ---

// NonceChallenge is the issuance result the caller signs off-system.
type NonceChallenge struct {
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NonceService issues and consumes single-use challenge nonces.
type NonceService interface {
	Issue(ctx context.Context, userID uuid.UUID) (*NonceChallenge, error)
	// Consume atomically consumes the nonce and returns the stored record so
	// the exact original challenge message can be reconstructed. Fails with a
	// classified error when the nonce is absent, expired, or belongs to
	// another user.
	Consume(ctx context.Context, nonce string, expectedUserID uuid.UUID) (*domain.NonceRecord, error)
}

// SignatureVerifier verifies a detached ed25519 signature over the exact
// message string. Any decoding or curve failure is "not verified".
type SignatureVerifier interface {
	Verify(publicKey string, message string, signature string) bool
}

// RateLimitDecision is the outcome of a connection rate check.
type RateLimitDecision struct {
	Allowed    bool
	RetryAfter time.Duration // set when not allowed
}

// ConnectionRateLimiter gates wallet connection attempts per user and per
// network origin. It fails open when the ephemeral store is unreachable.
type ConnectionRateLimiter interface {
	Allow(ctx context.Context, userID uuid.UUID, clientIP string) *RateLimitDecision
}

// TokenService validates the bearer tokens that carry the caller's identity.
type TokenService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (uuid.UUID, error)
}

// --- Lifecycle manager port ---

// ConnectStatus is the human-readable outcome of a successful connect.
type ConnectStatus string

const (
	ConnectStatusConnected   ConnectStatus = "connected"
	ConnectStatusReconnected ConnectStatus = "reconnected"
	ConnectStatusRestored    ConnectStatus = "restored"
)

// ConnectRequest holds validated input for a wallet connection attempt.
type ConnectRequest struct {
	UserID    uuid.UUID
	Address   string
	Signature string // standard base64
	Nonce     string
	ClientIP  string // optional; enables the origin-scoped rate check
	TenantID  string // optional; recorded in logs only
}

// ConnectResult is the outcome of a successful connect.
type ConnectResult struct {
	Wallet *domain.WalletAddress
	Status ConnectStatus
}

// DisconnectRequest holds input for a wallet disconnection.
type DisconnectRequest struct {
	UserID    uuid.UUID
	Address   string
	Reason    string // optional
	DeletedBy string // optional; defaults to the user themselves
}

// WalletService orchestrates the wallet connection lifecycle.
type WalletService interface {
	IssueNonce(ctx context.Context, userID uuid.UUID) (*NonceChallenge, error)
	Connect(ctx context.Context, req ConnectRequest) (*ConnectResult, error)
	// Disconnect returns found=false (and no error) when no active row matches.
	Disconnect(ctx context.Context, req DisconnectRequest) (bool, error)
	// Restore returns found=false when the row is absent or not soft-deleted.
	Restore(ctx context.Context, userID uuid.UUID, address string, tenantID string) (*domain.WalletAddress, bool, error)
	GetUserWallets(ctx context.Context, userID uuid.UUID) ([]domain.WalletAddress, error)
	// GetUserWalletsIncludingDeleted is the administrative listing, deleted
	// rows included, last modified first.
	GetUserWalletsIncludingDeleted(ctx context.Context, userID uuid.UUID) ([]domain.WalletAddress, error)
	GetPrimaryWallet(ctx context.Context, userID uuid.UUID) (*domain.WalletAddress, error)
	VerifyOwnership(ctx context.Context, userID uuid.UUID, address string) (bool, error)
	GetWalletHistory(ctx context.Context, userID uuid.UUID, address *string) ([]domain.WalletConnectionAudit, error)
}
