package apiauth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisNonceGuard remembers nonces in Redis until they can no longer pass
// the date check
type RedisNonceGuard struct {
	client redis.Cmdable
}

// NewRedisNonceGuard creates a nonce guard backed by Redis
func NewRedisNonceGuard(client redis.Cmdable) *RedisNonceGuard {
	return &RedisNonceGuard{client: client}
}

func getNonceKey(clientID int64, nonce string) string {
	return fmt.Sprintf("request_nonce:%d:%s", clientID, nonce)
}

// Claim sets the nonce key only if absent
func (g *RedisNonceGuard) Claim(ctx context.Context, clientID int64, nonce string, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, getNonceKey(clientID, nonce), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to store nonce: %w", err)
	}
	return ok, nil
}
