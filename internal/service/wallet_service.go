package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticket-wallet-service/internal/core/domain"
	"ticket-wallet-service/internal/core/ports"
	"ticket-wallet-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService: the connect / reconnect /
// restore / disconnect state machine over (user, address) pairs.
//
// Invariant: among a user's active rows, at most one has is_primary = true,
// and exactly one if any exist. Every mutating path locks the user's active
// rows before touching the flag, so two concurrent connects cannot both
// become primary.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	auditRepo  ports.AuditRepository
	nonceSvc   ports.NonceService
	verifier   ports.SignatureVerifier
	limiter    ports.ConnectionRateLimiter
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	auditRepo ports.AuditRepository,
	nonceSvc ports.NonceService,
	verifier ports.SignatureVerifier,
	limiter ports.ConnectionRateLimiter,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		auditRepo:  auditRepo,
		nonceSvc:   nonceSvc,
		verifier:   verifier,
		limiter:    limiter,
		transactor: transactor,
		log:        log,
	}
}

// IssueNonce issues a fresh single-use challenge for the user to sign.
func (s *WalletServiceImpl) IssueNonce(ctx context.Context, userID uuid.UUID) (*ports.NonceChallenge, error) {
	return s.nonceSvc.Issue(ctx, userID)
}

// Connect binds the wallet address to the user after verifying the signed
// challenge. Idempotent under fresh nonces: repeated connects converge to the
// same state (active row, primary).
func (s *WalletServiceImpl) Connect(ctx context.Context, req ports.ConnectRequest) (*ports.ConnectResult, error) {
	// 1. Rate gate, only when a network origin is known.
	if req.ClientIP != "" {
		if d := s.limiter.Allow(ctx, req.UserID, req.ClientIP); !d.Allowed {
			return nil, apperror.ErrRateLimited(d.RetryAfter)
		}
	}

	// 2. Address shape, before anything stateful.
	if !IsValidWalletAddress(req.Address) {
		return nil, apperror.ErrValidation("invalid wallet address format")
	}

	// 3. Consume the nonce. It stays consumed even if verification fails
	// below; a replay of the same request must fail here.
	rec, err := s.nonceSvc.Consume(ctx, req.Nonce, req.UserID)
	if err != nil {
		return nil, err
	}

	// 4. Verify the signature over the exact message that was issued,
	// rebuilt from the consumed record. No row has been touched yet.
	message := ChallengeMessage(rec.UserID, rec.Nonce, rec.ExpiresAt)
	if !s.verifier.Verify(req.Address, message, req.Signature) {
		s.log.Warn().
			Str("user_id", req.UserID.String()).
			Str("address", domain.TruncateAddress(req.Address)).
			Msg("wallet signature verification failed")
		return nil, apperror.ErrSignatureInvalid()
	}

	// 5. Mutate wallet state in one transaction.
	result, err := s.connectTx(ctx, req)
	if err != nil {
		return nil, s.asConnectFailure(req.UserID, req.Address, err)
	}

	s.log.Info().
		Str("user_id", req.UserID.String()).
		Str("address", domain.TruncateAddress(req.Address)).
		Str("status", string(result.Status)).
		Bool("is_primary", result.Wallet.IsPrimary).
		Msg("wallet connected")

	return result, nil
}

func (s *WalletServiceImpl) connectTx(ctx context.Context, req ports.ConnectRequest) (*ports.ConnectResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock the user's active rows first: this serializes concurrent
	// primary-flag reassignment for the same user.
	active, err := s.walletRepo.ListActiveForUpdate(ctx, dbTx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("lock active wallets: %w", err)
	}

	existing, err := s.walletRepo.GetByUserAndAddressForUpdate(ctx, dbTx, req.UserID, req.Address)
	if err != nil {
		return nil, fmt.Errorf("lock target wallet: %w", err)
	}

	now := time.Now().UTC()
	var (
		wallet   *domain.WalletAddress
		status   ports.ConnectStatus
		connType domain.ConnectionType
	)

	switch {
	case existing == nil:
		// NONE -> ACTIVE. The new wallet becomes primary; demote the rest.
		if err := s.walletRepo.ClearPrimary(ctx, dbTx, req.UserID, uuid.Nil); err != nil {
			return nil, fmt.Errorf("clear primary flags: %w", err)
		}
		wallet = &domain.WalletAddress{
			ID:             uuid.New(),
			UserID:         req.UserID,
			Address:        req.Address,
			BlockchainType: domain.BlockchainTypeSolana,
			IsPrimary:      true,
			VerifiedAt:     &now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.walletRepo.Insert(ctx, dbTx, wallet); err != nil {
			return nil, fmt.Errorf("insert wallet: %w", err)
		}
		status = ports.ConnectStatusConnected
		connType = domain.ConnectionTypeConnect

	case !existing.IsActive():
		// SOFT-DELETED -> ACTIVE. Primary only if the user has no other
		// active wallet.
		existing.DeletedAt = nil
		existing.DeletedBy = nil
		existing.DisconnectionReason = nil
		existing.VerifiedAt = &now
		existing.IsPrimary = len(active) == 0
		existing.UpdatedAt = now
		if err := s.walletRepo.Update(ctx, dbTx, existing); err != nil {
			return nil, fmt.Errorf("restore wallet: %w", err)
		}
		wallet = existing
		status = ports.ConnectStatusRestored
		connType = domain.ConnectionTypeConnect

	default:
		// ACTIVE -> ACTIVE. Reconnecting promotes to primary.
		existing.VerifiedAt = &now
		existing.LastUsedAt = &now
		existing.IsPrimary = true
		existing.UpdatedAt = now
		if err := s.walletRepo.Update(ctx, dbTx, existing); err != nil {
			return nil, fmt.Errorf("refresh wallet: %w", err)
		}
		if err := s.walletRepo.ClearPrimary(ctx, dbTx, req.UserID, existing.ID); err != nil {
			return nil, fmt.Errorf("clear primary flags: %w", err)
		}
		wallet = existing
		status = ports.ConnectStatusReconnected
		connType = domain.ConnectionTypeReconnect
	}

	audit := &domain.WalletConnectionAudit{
		ID:             uuid.New(),
		UserID:         req.UserID,
		Address:        req.Address,
		SignatureProof: req.Signature,
		ConnectionType: connType,
		IsPrimary:      wallet.IsPrimary,
		ConnectionIP:   req.ClientIP,
		ConnectedAt:    now,
	}
	if err := s.auditRepo.Create(ctx, dbTx, audit); err != nil {
		return nil, fmt.Errorf("append connect audit: %w", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &ports.ConnectResult{Wallet: wallet, Status: status}, nil
}

// asConnectFailure propagates already-classified errors unchanged and
// converts anything unexpected into the generic connection failure, logged
// with the user and a short address prefix only.
func (s *WalletServiceImpl) asConnectFailure(userID uuid.UUID, address string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	s.log.Error().Err(err).
		Str("user_id", userID.String()).
		Str("address", domain.TruncateAddress(address)).
		Msg("wallet connect failed unexpectedly")
	return apperror.ErrConnectionFailed()
}

// Disconnect soft-deletes the wallet. When the target was primary, the
// oldest remaining active wallet inherits the flag. Returns found=false when
// no active row matches.
func (s *WalletServiceImpl) Disconnect(ctx context.Context, req ports.DisconnectRequest) (bool, error) {
	if !IsValidWalletAddress(req.Address) {
		return false, apperror.ErrValidation("invalid wallet address format")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	active, err := s.walletRepo.ListActiveForUpdate(ctx, dbTx, req.UserID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("lock active wallets: %w", err))
	}

	var target *domain.WalletAddress
	remaining := make([]domain.WalletAddress, 0, len(active))
	for i := range active {
		if active[i].Address == req.Address {
			target = &active[i]
			continue
		}
		remaining = append(remaining, active[i])
	}
	if target == nil {
		return false, nil
	}

	now := time.Now().UTC()
	deletedBy := req.DeletedBy
	if deletedBy == "" {
		deletedBy = req.UserID.String()
	}
	var reason *string
	if req.Reason != "" {
		reason = &req.Reason
	}

	wasPrimary := target.IsPrimary
	target.DeletedAt = &now
	target.DeletedBy = &deletedBy
	target.DisconnectionReason = reason
	target.IsPrimary = false
	target.UpdatedAt = now
	if err := s.walletRepo.Update(ctx, dbTx, target); err != nil {
		return false, apperror.InternalError(fmt.Errorf("soft delete wallet: %w", err))
	}

	// Primary handoff: oldest remaining active wallet by created_at.
	// ListActiveForUpdate already orders ascending.
	if wasPrimary && len(remaining) > 0 {
		successor := remaining[0]
		successor.IsPrimary = true
		successor.UpdatedAt = now
		if err := s.walletRepo.Update(ctx, dbTx, &successor); err != nil {
			return false, apperror.InternalError(fmt.Errorf("promote successor wallet: %w", err))
		}
	}

	audit := &domain.WalletConnectionAudit{
		ID:                  uuid.New(),
		UserID:              req.UserID,
		Address:             req.Address,
		ConnectionType:      domain.ConnectionTypeDisconnect,
		IsPrimary:           wasPrimary,
		DisconnectionReason: reason,
		ConnectedAt:         now,
	}
	if err := s.auditRepo.Create(ctx, dbTx, audit); err != nil {
		return false, apperror.InternalError(fmt.Errorf("append disconnect audit: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("user_id", req.UserID.String()).
		Str("address", domain.TruncateAddress(req.Address)).
		Bool("was_primary", wasPrimary).
		Msg("wallet disconnected")

	return true, nil
}

// Restore clears the soft-delete markers. Only valid from SOFT-DELETED;
// returns found=false when the row is absent or currently active.
func (s *WalletServiceImpl) Restore(ctx context.Context, userID uuid.UUID, address string, tenantID string) (*domain.WalletAddress, bool, error) {
	if !IsValidWalletAddress(address) {
		return nil, false, apperror.ErrValidation("invalid wallet address format")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	active, err := s.walletRepo.ListActiveForUpdate(ctx, dbTx, userID)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("lock active wallets: %w", err))
	}

	target, err := s.walletRepo.GetByUserAndAddressForUpdate(ctx, dbTx, userID, address)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("lock target wallet: %w", err))
	}
	if target == nil || target.IsActive() {
		return nil, false, nil
	}

	now := time.Now().UTC()
	target.DeletedAt = nil
	target.DeletedBy = nil
	target.DisconnectionReason = nil
	target.VerifiedAt = &now
	target.IsPrimary = len(active) == 0
	target.UpdatedAt = now
	if err := s.walletRepo.Update(ctx, dbTx, target); err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("restore wallet: %w", err))
	}

	audit := &domain.WalletConnectionAudit{
		ID:             uuid.New(),
		UserID:         userID,
		Address:        address,
		ConnectionType: domain.ConnectionTypeConnect,
		IsPrimary:      target.IsPrimary,
		ConnectedAt:    now,
	}
	if err := s.auditRepo.Create(ctx, dbTx, audit); err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("append restore audit: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("address", domain.TruncateAddress(address)).
		Str("tenant_id", tenantID).
		Msg("wallet restored")

	return target, true, nil
}

// GetUserWallets returns the user's active wallets, oldest first.
func (s *WalletServiceImpl) GetUserWallets(ctx context.Context, userID uuid.UUID) ([]domain.WalletAddress, error) {
	wallets, err := s.walletRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}
	return wallets, nil
}

// GetUserWalletsIncludingDeleted is the administrative listing for audit
// review: every row, last modified first.
func (s *WalletServiceImpl) GetUserWalletsIncludingDeleted(ctx context.Context, userID uuid.UUID) ([]domain.WalletAddress, error) {
	wallets, err := s.walletRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list all wallets: %w", err))
	}
	return wallets, nil
}

// GetPrimaryWallet returns the user's primary active wallet, or nil.
func (s *WalletServiceImpl) GetPrimaryWallet(ctx context.Context, userID uuid.UUID) (*domain.WalletAddress, error) {
	wallet, err := s.walletRepo.GetPrimary(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get primary wallet: %w", err))
	}
	return wallet, nil
}

// VerifyOwnership reports whether the address is an active wallet of the
// user, refreshing last_used_at as a side effect for downstream consumers.
func (s *WalletServiceImpl) VerifyOwnership(ctx context.Context, userID uuid.UUID, address string) (bool, error) {
	if !IsValidWalletAddress(address) {
		return false, nil
	}
	wallet, err := s.walletRepo.GetByUserAndAddress(ctx, userID, address)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("lookup wallet: %w", err))
	}
	if wallet == nil || !wallet.IsActive() {
		return false, nil
	}
	if err := s.walletRepo.TouchLastUsed(ctx, userID, address); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to touch last_used_at")
	}
	return true, nil
}

// GetWalletHistory returns the append-only connection audit trail, newest
// first, optionally filtered by address.
func (s *WalletServiceImpl) GetWalletHistory(ctx context.Context, userID uuid.UUID, address *string) ([]domain.WalletConnectionAudit, error) {
	records, err := s.auditRepo.ListByUser(ctx, userID, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallet history: %w", err))
	}
	return records, nil
}
