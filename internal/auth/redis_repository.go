package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

const refreshTokenIDKey = "refresh_token:next_id"

// RedisRepository stores refresh token records in Redis. A record lives as a
// hash under its numeric id and is indexed in a per-user set.
type RedisRepository struct {
	client redis.Cmdable
}

func NewRedisRepository(client redis.Cmdable) *RedisRepository {
	return &RedisRepository{client: client}
}

// getTokenKey generates the Redis key for a refresh token record
func getTokenKey(id int64) string {
	return fmt.Sprintf("refresh_token:%d", id)
}

// getUserTokensKey generates the Redis key for user's token set
func getUserTokensKey(userID int64) string {
	return fmt.Sprintf("user_tokens:%d", userID)
}

// hashToken returns the hex SHA-256 of a secret so it is never stored in clear
func hashToken(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// NextID allocates a refresh token id
func (r *RedisRepository) NextID(ctx context.Context) (int64, error) {
	id, err := r.client.Incr(ctx, refreshTokenIDKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate refresh token id: %w", err)
	}
	return id, nil
}

// Store saves a record until its expiration
func (r *RedisRepository) Store(ctx context.Context, rec *RefreshRecord) error {
	ttl := time.Until(rec.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("token expiration time is in the past")
	}

	tokenKey := getTokenKey(rec.ID)
	userTokensKey := getUserTokensKey(rec.UserID)

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, tokenKey, map[string]any{
		"user_id":     rec.UserID,
		"client_id":   rec.ClientID,
		"verify_hash": rec.VerifyHash,
		"scopes":      strings.Join(rec.Scopes, ","),
		"expires_at":  rec.ExpiresAt.Unix(),
		"created_at":  rec.CreatedAt.Unix(),
	})
	pipe.Expire(ctx, tokenKey, ttl)

	// The set lives as long as the newest token of the user
	pipe.SAdd(ctx, userTokensKey, rec.ID)
	pipe.Expire(ctx, userTokensKey, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// Get loads a live record
func (r *RedisRepository) Get(ctx context.Context, id int64) (*RefreshRecord, error) {
	data, err := r.client.HGetAll(ctx, getTokenKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if len(data) == 0 {
		return nil, ErrRefreshTokenNotFound
	}

	return parseRefreshRecord(id, data)
}

func parseRefreshRecord(id int64, data map[string]string) (*RefreshRecord, error) {
	rec := &RefreshRecord{ID: id, VerifyHash: data["verify_hash"]}

	ints := map[string]*int64{"user_id": &rec.UserID, "client_id": &rec.ClientID}
	for field, dst := range ints {
		v, err := strconv.ParseInt(data[field], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt refresh token %d: %s: %w", id, field, err)
		}
		*dst = v
	}

	var expiresAtUnix, createdAtUnix int64
	fmt.Sscanf(data["expires_at"], "%d", &expiresAtUnix)
	fmt.Sscanf(data["created_at"], "%d", &createdAtUnix)
	rec.ExpiresAt = time.Unix(expiresAtUnix, 0)
	rec.CreatedAt = time.Unix(createdAtUnix, 0)

	if scopes := data["scopes"]; scopes != "" {
		rec.Scopes = strings.Split(scopes, ",")
	}

	return rec, nil
}

// Revoke deletes a record. Only one caller can revoke a given record; the
// others get ErrRefreshTokenNotFound.
func (r *RedisRepository) Revoke(ctx context.Context, rec *RefreshRecord) error {
	deleted, err := r.client.Del(ctx, getTokenKey(rec.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if deleted == 0 {
		return ErrRefreshTokenNotFound
	}

	if err := r.client.SRem(ctx, getUserTokensKey(rec.UserID), rec.ID).Err(); err != nil {
		return fmt.Errorf("failed to unindex refresh token: %w", err)
	}

	return nil
}

// RevokeAllUserTokens revokes all refresh tokens for a user
func (r *RedisRepository) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	userTokensKey := getUserTokensKey(userID)

	ids, err := r.client.SMembers(ctx, userTokensKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get user tokens: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids)+1)
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		keys = append(keys, getTokenKey(id))
	}
	keys = append(keys, userTokensKey)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to revoke all user tokens: %w", err)
	}

	return nil
}
