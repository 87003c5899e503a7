package service

import (
	"context"
	"time"

	"ticket-wallet-service/config"
	"ticket-wallet-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ConnectionRateLimiterImpl implements ports.ConnectionRateLimiter with two
// windowed counters: per user identity, then per network origin. The user
// scope short-circuits; a rejection there is returned without evaluating the
// origin scope. An unreachable store fails open; availability of wallet
// connection outweighs strict limiting.
type ConnectionRateLimiterImpl struct {
	store ports.RateLimitStore
	cfg   config.RateLimitConfig
	log   zerolog.Logger
}

// NewConnectionRateLimiter creates a new ConnectionRateLimiterImpl.
func NewConnectionRateLimiter(store ports.RateLimitStore, cfg config.RateLimitConfig, log zerolog.Logger) *ConnectionRateLimiterImpl {
	return &ConnectionRateLimiterImpl{store: store, cfg: cfg, log: log}
}

// Allow gates one connection attempt.
func (l *ConnectionRateLimiterImpl) Allow(ctx context.Context, userID uuid.UUID, clientIP string) *ports.RateLimitDecision {
	if d := l.check(ctx, "user:"+userID.String(), l.cfg.UserLimit, l.cfg.UserWindow); !d.Allowed {
		return d
	}
	if clientIP != "" {
		if d := l.check(ctx, "ip:"+clientIP, l.cfg.IPLimit, l.cfg.IPWindow); !d.Allowed {
			return d
		}
	}
	return &ports.RateLimitDecision{Allowed: true}
}

func (l *ConnectionRateLimiterImpl) check(ctx context.Context, key string, limit int64, window time.Duration) *ports.RateLimitDecision {
	count, ttl, err := l.store.Incr(ctx, key, window)
	if err != nil {
		l.log.Warn().Err(err).Str("scope", key).Msg("rate limit store unreachable, failing open")
		return &ports.RateLimitDecision{Allowed: true}
	}

	if count > limit {
		retryAfter := ttl
		if retryAfter <= 0 {
			retryAfter = window
		}
		return &ports.RateLimitDecision{Allowed: false, RetryAfter: retryAfter}
	}
	return &ports.RateLimitDecision{Allowed: true}
}
