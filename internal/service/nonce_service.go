package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"ticket-wallet-service/internal/core/domain"
	"ticket-wallet-service/internal/core/ports"
	"ticket-wallet-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// nonceByteLength is the entropy of the challenge, hex-encoded on the wire.
	nonceByteLength = 32

	defaultNonceTTL = 5 * time.Minute
)

// ChallengeMessage builds the canonical challenge message the wallet signs.
// Deterministic and reproducible from {userId, nonce, expiresAt} alone: the
// lifecycle manager reconstructs it at verification time from the consumed
// record instead of storing the message.
func ChallengeMessage(userID uuid.UUID, nonce string, expiresAt time.Time) string {
	return fmt.Sprintf(
		"Ticket Platform Wallet Verification\nUser: %s\nNonce: %s\nExpires: %s",
		userID, nonce, expiresAt.UTC().Format(time.RFC3339),
	)
}

// NonceServiceImpl implements ports.NonceService on the shared ephemeral
// store. Store failures here are surfaced as SERVICE_UNAVAILABLE: nonce
// handling is the core security control and never fails open.
type NonceServiceImpl struct {
	store ports.NonceStore
	ttl   time.Duration
	log   zerolog.Logger
}

// NewNonceService creates a new NonceServiceImpl.
func NewNonceService(store ports.NonceStore, ttl time.Duration, log zerolog.Logger) *NonceServiceImpl {
	if ttl <= 0 {
		ttl = defaultNonceTTL
	}
	return &NonceServiceImpl{store: store, ttl: ttl, log: log}
}

// Issue generates a fresh single-use challenge for the user.
func (s *NonceServiceImpl) Issue(ctx context.Context, userID uuid.UUID) (*ports.NonceChallenge, error) {
	buf := make([]byte, nonceByteLength)
	if _, err := rand.Read(buf); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate nonce: %w", err))
	}
	nonce := hex.EncodeToString(buf)

	now := time.Now().UTC().Truncate(time.Second)
	expiresAt := now.Add(s.ttl)

	rec := &domain.NonceRecord{
		UserID:    userID,
		Nonce:     nonce,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := s.store.Save(ctx, rec, s.ttl); err != nil {
		s.log.Error().Err(err).Str("user_id", userID.String()).Msg("nonce store unreachable on issue")
		return nil, apperror.ErrNonceUnavailable(err)
	}

	return &ports.NonceChallenge{
		Nonce:     nonce,
		Message:   ChallengeMessage(userID, nonce, expiresAt),
		ExpiresAt: expiresAt,
	}, nil
}

// Consume atomically consumes the nonce and returns the stored record. A
// nonce consumed here stays consumed even if the caller's signature later
// fails: replays must start over with a fresh nonce.
func (s *NonceServiceImpl) Consume(ctx context.Context, nonce string, expectedUserID uuid.UUID) (*domain.NonceRecord, error) {
	rec, err := s.store.Consume(ctx, nonce)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", expectedUserID.String()).Msg("nonce store unreachable on consume")
		return nil, apperror.ErrNonceUnavailable(err)
	}
	if rec == nil {
		s.log.Info().Str("user_id", expectedUserID.String()).Msg("nonce absent: already consumed or expired")
		return nil, apperror.ErrConnectionFailed()
	}
	if rec.UserID != expectedUserID {
		s.log.Warn().Str("user_id", expectedUserID.String()).Msg("nonce user mismatch")
		return nil, apperror.ErrConnectionFailed()
	}
	// The store's TTL eviction can lag the record's own expiry.
	if rec.Expired(time.Now().UTC()) {
		s.log.Info().Str("user_id", expectedUserID.String()).Msg("nonce past its own expiry")
		return nil, apperror.ErrConnectionFailed()
	}
	return rec, nil
}
