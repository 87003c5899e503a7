package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"ticket-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.WalletAddress
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.WalletAddress)}
}

func (r *inMemoryWalletRepo) GetByUserAndAddress(ctx context.Context, userID uuid.UUID, address string) (*domain.WalletAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.Address == address {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByUserAndAddressForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID, address string) (*domain.WalletAddress, error) {
	return r.GetByUserAndAddress(ctx, userID, address)
}

func (r *inMemoryWalletRepo) ListActiveForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]domain.WalletAddress, error) {
	return r.ListActiveByUser(ctx, userID)
}

func (r *inMemoryWalletRepo) Insert(ctx context.Context, tx pgx.Tx, w *domain.WalletAddress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.wallets {
		if existing.UserID == w.UserID && existing.Address == w.Address {
			return fmt.Errorf("duplicate (user, address) pair")
		}
	}
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.WalletAddress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.ID]; !ok {
		return fmt.Errorf("wallet not found")
	}
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) ClearPrimary(ctx context.Context, tx pgx.Tx, userID uuid.UUID, exceptID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.DeletedAt == nil && w.ID != exceptID {
			w.IsPrimary = false
		}
	}
	return nil
}

func (r *inMemoryWalletRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.WalletAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WalletAddress
	for _, w := range r.wallets {
		if w.UserID == userID && w.DeletedAt == nil {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryWalletRepo) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.WalletAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WalletAddress
	for _, w := range r.wallets {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *inMemoryWalletRepo) GetPrimary(ctx context.Context, userID uuid.UUID) (*domain.WalletAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.DeletedAt == nil && w.IsPrimary {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) TouchLastUsed(ctx context.Context, userID uuid.UUID, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.Address == address && w.DeletedAt == nil {
			now := time.Now().UTC()
			w.LastUsedAt = &now
		}
	}
	return nil
}

// countPrimary reports how many active wallets of the user carry the primary
// flag. Test assertion helper.
func (r *inMemoryWalletRepo) countPrimary(userID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, w := range r.wallets {
		if w.UserID == userID && w.DeletedAt == nil && w.IsPrimary {
			n++
		}
	}
	return n
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.RWMutex
	records []domain.WalletConnectionAudit
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.WalletConnectionAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

func (r *inMemoryAuditRepo) ListByUser(ctx context.Context, userID uuid.UUID, address *string) ([]domain.WalletConnectionAudit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WalletConnectionAudit
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if rec.UserID != userID {
			continue
		}
		if address != nil && rec.Address != *address {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transactions with a single mutex, standing in
// for the row locks the real repos take.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockTx{mu: &t.mu}, nil
}

// lockTx holds the transactor mutex until Commit or Rollback, whichever
// comes first.
type lockTx struct {
	noopTx
	mu   *sync.Mutex
	once sync.Once
}

func (t *lockTx) Commit(ctx context.Context) error {
	t.once.Do(t.mu.Unlock)
	return nil
}

func (t *lockTx) Rollback(ctx context.Context) error {
	t.once.Do(t.mu.Unlock)
	return nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
