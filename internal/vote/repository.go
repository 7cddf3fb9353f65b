package vote

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

var ErrAlreadyVoted = fmt.Errorf("vote %w", apperr.ErrAlreadyExists)

// Repository handles photo votes and per-user received vote counters
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, photoID, userID int64) error {
	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(&database.PhotoVote{PhotoID: photoID, UserID: userID}).
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadyVoted
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// Delete removes a vote and reports whether one existed
func (r *Repository) Delete(ctx context.Context, photoID, userID int64) (bool, error) {
	result, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.PhotoVote)(nil)).
		Where("photo_id = ?", photoID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete vote: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) Exists(ctx context.Context, photoID, userID int64) (bool, error) {
	exists, err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.PhotoVote)(nil)).
		Where("photo_id = ?", photoID).
		Where("user_id = ?", userID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check vote: %w", err)
	}
	return exists, nil
}

func (r *Repository) Count(ctx context.Context, photoID int64) (int, error) {
	count, err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.PhotoVote)(nil)).
		Where("photo_id = ?", photoID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

// AdjustReceived adds delta to the number of votes userID's photos have
// received. The counter never drops below zero.
func (r *Repository) AdjustReceived(ctx context.Context, userID, delta int64) error {
	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(&database.UserReceivedVotes{UserID: userID, Count: max(delta, 0)}).
		On("CONFLICT (user_id) DO UPDATE").
		Set("count = GREATEST(urv.count + ?, 0)", delta).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to adjust received votes: %w", err)
	}
	return nil
}
