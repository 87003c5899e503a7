package ports

import (
	"context"

	"ticket-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for wallet address rows.
// Methods accepting pgx.Tx run inside transaction blocks; the lifecycle
// manager locks a user's rows before mutating the primary flag, so no two
// concurrent connects can both believe they are the one becoming primary.
type WalletRepository interface {
	// GetByUserAndAddress fetches the (user, address) row including
	// soft-deleted ones. Returns nil, nil when no row exists.
	GetByUserAndAddress(ctx context.Context, userID uuid.UUID, address string) (*domain.WalletAddress, error)
	// GetByUserAndAddressForUpdate is the locking variant, including
	// soft-deleted rows. Must be called within a transaction.
	GetByUserAndAddressForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID, address string) (*domain.WalletAddress, error)
	// ListActiveForUpdate locks and returns all of the user's active rows,
	// ordered by created_at ascending. Must be called within a transaction.
	ListActiveForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]domain.WalletAddress, error)
	Insert(ctx context.Context, tx pgx.Tx, w *domain.WalletAddress) error
	Update(ctx context.Context, tx pgx.Tx, w *domain.WalletAddress) error
	// ClearPrimary unsets is_primary on all of the user's active rows except
	// the given one. Pass uuid.Nil to clear every active row.
	ClearPrimary(ctx context.Context, tx pgx.Tx, userID uuid.UUID, exceptID uuid.UUID) error
	// ListActiveByUser returns active rows ordered by created_at ascending.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.WalletAddress, error)
	// ListAllByUser returns every row including soft-deleted ones, last
	// modified first, for administrative audit review.
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.WalletAddress, error)
	// GetPrimary returns the user's primary active wallet, or nil, nil.
	GetPrimary(ctx context.Context, userID uuid.UUID) (*domain.WalletAddress, error)
	// TouchLastUsed refreshes last_used_at on an active row for downstream
	// consumers. No-op (nil) when the row does not exist.
	TouchLastUsed(ctx context.Context, userID uuid.UUID, address string) error
}

// AuditRepository appends and reads the immutable wallet connection trail.
type AuditRepository interface {
	Create(ctx context.Context, tx pgx.Tx, rec *domain.WalletConnectionAudit) error
	// ListByUser returns audit records newest first, optionally filtered by
	// address.
	ListByUser(ctx context.Context, userID uuid.UUID, address *string) ([]domain.WalletConnectionAudit, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
