package follow

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/database"
)

// Follow is a directed edge from a follower to the followed user
type Follow struct {
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Repository handles follow persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// Insert adds the edge and reports whether it was new
func (r *Repository) Insert(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	result, err := database.Conn(ctx, r.db).NewInsert().
		Model(&database.Follow{FromUserID: fromUserID, ToUserID: toUserID}).
		On("CONFLICT (from_user_id, to_user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert follow: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

// Delete removes the edge and reports whether it existed
func (r *Repository) Delete(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	result, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Follow)(nil)).
		Where("from_user_id = ?", fromUserID).
		Where("to_user_id = ?", toUserID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

// FollowerIDs returns the ids of everyone following userID
func (r *Repository) FollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.Follow)(nil)).
		Column("from_user_id").
		Where("to_user_id = ?", userID).
		OrderExpr("from_user_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list follower ids: %w", err)
	}
	return ids, nil
}

// Followers returns the newest followers of userID first
func (r *Repository) Followers(ctx context.Context, userID int64, limit int) ([]Follow, error) {
	var rows []database.Follow
	err := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		Where("to_user_id = ?", userID).
		OrderExpr("created_at DESC, from_user_id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	out := make([]Follow, len(rows))
	for i, row := range rows {
		out[i] = Follow{FromUserID: row.FromUserID, ToUserID: row.ToUserID, CreatedAt: row.CreatedAt}
	}
	return out, nil
}
