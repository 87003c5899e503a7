package postgres

import (
	"context"
	"fmt"

	"ticket-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AuditRepo implements ports.AuditRepository. The table is append-only: this
// repo exposes no update or delete.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create appends one connection audit record within the lifecycle transaction,
// so the audit trail commits or rolls back with the wallet mutation itself.
func (r *AuditRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.WalletConnectionAudit) error {
	query := `INSERT INTO wallet_connection_audits
		(id, user_id, address, signature_proof, connection_type, is_primary, connection_ip, disconnection_reason, connected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		rec.ID, rec.UserID, rec.Address, rec.SignatureProof,
		rec.ConnectionType, rec.IsPrimary, rec.ConnectionIP,
		rec.DisconnectionReason, rec.ConnectedAt,
	)
	if err != nil {
		return fmt.Errorf("insert connection audit: %w", err)
	}
	return nil
}

// ListByUser returns audit records newest first, optionally filtered by address.
func (r *AuditRepo) ListByUser(ctx context.Context, userID uuid.UUID, address *string) ([]domain.WalletConnectionAudit, error) {
	query := `SELECT id, user_id, address, signature_proof, connection_type, is_primary,
		connection_ip, disconnection_reason, connected_at
		FROM wallet_connection_audits WHERE user_id = $1`
	args := []any{userID}

	if address != nil {
		query += ` AND address = $2`
		args = append(args, *address)
	}
	query += ` ORDER BY connected_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list connection audits: %w", err)
	}
	defer rows.Close()

	var records []domain.WalletConnectionAudit
	for rows.Next() {
		var rec domain.WalletConnectionAudit
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Address, &rec.SignatureProof,
			&rec.ConnectionType, &rec.IsPrimary, &rec.ConnectionIP,
			&rec.DisconnectionReason, &rec.ConnectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit rows: %w", err)
	}
	return records, nil
}
