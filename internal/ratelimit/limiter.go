package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultIPLimit requests per DefaultIPWindow
	DefaultIPLimit      = 10
	DefaultIPWindow     = 15 * time.Minute
	DefaultIPPurposeMax = 20
	// DefaultEmailCooldown is the minimum gap between two e-mails to the same address
	DefaultEmailCooldown = 2 * time.Minute
)

// store is the subset of the Redis client used by the limiter
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Limiter counts requests per IP in fixed windows and keeps per-address
// e-mail cooldowns in Redis
type Limiter struct {
	client        store
	ipLimit       int64
	purposeLimit  int64
	ipWindow      time.Duration
	emailCooldown time.Duration
}

type Option func(*Limiter)

// WithIPLimit overrides the request count allowed per window
func WithIPLimit(limit int, window time.Duration) Option {
	return func(l *Limiter) {
		l.ipLimit = int64(limit)
		l.ipWindow = window
	}
}

// WithPurposeLimit overrides the per-purpose request count
func WithPurposeLimit(limit int) Option {
	return func(l *Limiter) { l.purposeLimit = int64(limit) }
}

func WithEmailCooldown(d time.Duration) Option {
	return func(l *Limiter) { l.emailCooldown = d }
}

// NewLimiter creates a new Redis backed rate limiter
func NewLimiter(client redis.Cmdable, opts ...Option) *Limiter {
	return newLimiter(client, opts...)
}

func newLimiter(client store, opts ...Option) *Limiter {
	l := &Limiter{
		client:        client,
		ipLimit:       DefaultIPLimit,
		purposeLimit:  DefaultIPPurposeMax,
		ipWindow:      DefaultIPWindow,
		emailCooldown: DefaultEmailCooldown,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func getIPKey(ip string) string {
	return fmt.Sprintf("ratelimit:ip:%s", ip)
}

func getIPPurposeKey(ip, purpose string) string {
	return fmt.Sprintf("ratelimit:ip:%s:%s", purpose, ip)
}

func getEmailCooldownKey(email string) string {
	return fmt.Sprintf("ratelimit:email:%s", strings.ToLower(strings.TrimSpace(email)))
}

// CheckIPRateLimit reports whether ip already used up its window
func (l *Limiter) CheckIPRateLimit(ctx context.Context, ip string) (bool, error) {
	return l.exceeded(ctx, getIPKey(ip), l.ipLimit)
}

// RecordIPRequest counts one request from ip
func (l *Limiter) RecordIPRequest(ctx context.Context, ip string) error {
	return l.record(ctx, getIPKey(ip))
}

// CheckIPRateLimitWithPurpose is CheckIPRateLimit with a separate counter per endpoint
func (l *Limiter) CheckIPRateLimitWithPurpose(ctx context.Context, ip, purpose string) (bool, error) {
	return l.exceeded(ctx, getIPPurposeKey(ip, purpose), l.purposeLimit)
}

func (l *Limiter) RecordIPRequestWithPurpose(ctx context.Context, ip, purpose string) error {
	return l.record(ctx, getIPPurposeKey(ip, purpose))
}

// CheckEmailCooldown reports whether an e-mail was sent to the address recently
func (l *Limiter) CheckEmailCooldown(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Exists(ctx, getEmailCooldownKey(email)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check email cooldown: %w", err)
	}
	return n > 0, nil
}

func (l *Limiter) SetEmailCooldown(ctx context.Context, email string) error {
	if err := l.client.Set(ctx, getEmailCooldownKey(email), "1", l.emailCooldown).Err(); err != nil {
		return fmt.Errorf("failed to set email cooldown: %w", err)
	}
	return nil
}

func (l *Limiter) exceeded(ctx context.Context, key string, limit int64) (bool, error) {
	value, err := l.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get request count: %w", err)
	}

	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false, fmt.Errorf("invalid request count %q: %w", value, err)
	}
	return count >= limit, nil
}

func (l *Limiter) record(ctx context.Context, key string) error {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to record request: %w", err)
	}

	// The window starts with the first request
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.ipWindow).Err(); err != nil {
			return fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}
	return nil
}
