package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const passwordResetTokenTTL = 1 * time.Hour

// PasswordResetRepository remembers which reset tokens were already used
type PasswordResetRepository struct {
	client redis.Cmdable
}

// NewPasswordResetRepository creates a new password reset repository instance
func NewPasswordResetRepository(client redis.Cmdable) *PasswordResetRepository {
	return &PasswordResetRepository{
		client: client,
	}
}

// Consume marks a reset token id as used for ttl. It reports false when the
// token was used before.
func (r *PasswordResetRepository) Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Minute
	}

	fresh, err := r.client.SetNX(ctx, passwordResetKey(tokenID), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark password reset token as used: %w", err)
	}

	return fresh, nil
}

// passwordResetKey generates a Redis key for used password reset tokens
func passwordResetKey(tokenID string) string {
	return fmt.Sprintf("password_reset:used:%s", hashToken(tokenID))
}
