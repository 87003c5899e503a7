package postgres

import (
	"context"
	"errors"
	"fmt"

	"ticket-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, user_id, address, blockchain_type, is_primary, verified_at, last_used_at,
	deleted_at, deleted_by, disconnection_reason, created_at, updated_at`

// WalletRepo implements ports.WalletRepository. Rows are soft-deleted only;
// nothing here ever issues a DELETE.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

func scanWallet(row pgx.Row) (*domain.WalletAddress, error) {
	w := &domain.WalletAddress{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.Address, &w.BlockchainType, &w.IsPrimary,
		&w.VerifiedAt, &w.LastUsedAt, &w.DeletedAt, &w.DeletedBy,
		&w.DisconnectionReason, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func scanWallets(rows pgx.Rows) ([]domain.WalletAddress, error) {
	defer rows.Close()

	var wallets []domain.WalletAddress
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wallet row: %w", err)
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet rows: %w", err)
	}
	return wallets, nil
}

// GetByUserAndAddress fetches the (user, address) row including soft-deleted
// ones. Returns nil, nil when no row exists.
func (r *WalletRepo) GetByUserAndAddress(ctx context.Context, userID uuid.UUID, address string) (*domain.WalletAddress, error) {
	query := `SELECT ` + walletColumns + ` FROM wallet_addresses WHERE user_id = $1 AND address = $2`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, userID, address))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by user and address: %w", err)
	}
	return w, nil
}

// GetByUserAndAddressForUpdate is the locking variant, including soft-deleted
// rows. This MUST be called within a transaction.
func (r *WalletRepo) GetByUserAndAddressForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID, address string) (*domain.WalletAddress, error) {
	query := `SELECT ` + walletColumns + ` FROM wallet_addresses WHERE user_id = $1 AND address = $2 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, userID, address))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// ListActiveForUpdate locks and returns the user's active rows ordered by
// created_at ascending. The row locks serialize concurrent primary-flag
// reassignment for the same user. This MUST be called within a transaction.
func (r *WalletRepo) ListActiveForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]domain.WalletAddress, error) {
	query := `SELECT ` + walletColumns + ` FROM wallet_addresses
		WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at ASC FOR UPDATE`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list active wallets for update: %w", err)
	}
	return scanWallets(rows)
}

// Insert creates a new wallet row within a transaction.
func (r *WalletRepo) Insert(ctx context.Context, tx pgx.Tx, w *domain.WalletAddress) error {
	query := `INSERT INTO wallet_addresses (id, user_id, address, blockchain_type, is_primary,
		verified_at, last_used_at, deleted_at, deleted_by, disconnection_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.UserID, w.Address, w.BlockchainType, w.IsPrimary,
		w.VerifiedAt, w.LastUsedAt, w.DeletedAt, w.DeletedBy,
		w.DisconnectionReason, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// Update writes the mutable columns of a wallet row within a transaction.
func (r *WalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.WalletAddress) error {
	query := `UPDATE wallet_addresses SET is_primary = $1, verified_at = $2, last_used_at = $3,
		deleted_at = $4, deleted_by = $5, disconnection_reason = $6, updated_at = NOW()
		WHERE id = $7`

	tag, err := tx.Exec(ctx, query,
		w.IsPrimary, w.VerifiedAt, w.LastUsedAt,
		w.DeletedAt, w.DeletedBy, w.DisconnectionReason, w.ID,
	)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	return nil
}

// ClearPrimary unsets is_primary on all of the user's active rows except the
// given one. Pass uuid.Nil to clear every active row.
func (r *WalletRepo) ClearPrimary(ctx context.Context, tx pgx.Tx, userID uuid.UUID, exceptID uuid.UUID) error {
	query := `UPDATE wallet_addresses SET is_primary = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND deleted_at IS NULL AND is_primary = TRUE AND id <> $2`

	_, err := tx.Exec(ctx, query, userID, exceptID)
	if err != nil {
		return fmt.Errorf("clear primary flags: %w", err)
	}
	return nil
}

// ListActiveByUser returns active rows ordered by created_at ascending.
func (r *WalletRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.WalletAddress, error) {
	query := `SELECT ` + walletColumns + ` FROM wallet_addresses
		WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list active wallets: %w", err)
	}
	return scanWallets(rows)
}

// ListAllByUser returns every row including soft-deleted ones, last modified
// first, for administrative audit review.
func (r *WalletRepo) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.WalletAddress, error) {
	query := `SELECT ` + walletColumns + ` FROM wallet_addresses
		WHERE user_id = $1 ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list all wallets: %w", err)
	}
	return scanWallets(rows)
}

// GetPrimary returns the user's primary active wallet, or nil, nil.
func (r *WalletRepo) GetPrimary(ctx context.Context, userID uuid.UUID) (*domain.WalletAddress, error) {
	query := `SELECT ` + walletColumns + ` FROM wallet_addresses
		WHERE user_id = $1 AND deleted_at IS NULL AND is_primary = TRUE`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get primary wallet: %w", err)
	}
	return w, nil
}

// TouchLastUsed refreshes last_used_at on an active row. Missing rows are not
// an error; downstream consumers call this opportunistically.
func (r *WalletRepo) TouchLastUsed(ctx context.Context, userID uuid.UUID, address string) error {
	query := `UPDATE wallet_addresses SET last_used_at = NOW(), updated_at = NOW()
		WHERE user_id = $1 AND address = $2 AND deleted_at IS NULL`

	_, err := r.pool.Exec(ctx, query, userID, address)
	if err != nil {
		return fmt.Errorf("touch last used: %w", err)
	}
	return nil
}
