package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

var ErrNotFound = apperr.NotFound("post")

// Repository handles post persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *Post) error {
	row := &database.Post{
		UserID:   p.UserID,
		ToUserID: p.ToUserID,
		Message:  p.Message,
	}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	p.ID = row.ID
	p.CreatedAt = row.CreatedAt
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Post, error) {
	row := new(database.Post)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &Post{
		ID:        row.ID,
		UserID:    row.UserID,
		ToUserID:  row.ToUserID,
		Message:   row.Message,
		CreatedAt: row.CreatedAt,
	}, nil
}

// OwnerID returns the author of a post
func (r *Repository) OwnerID(ctx context.Context, id int64) (int64, error) {
	var userID int64
	err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.Post)(nil)).
		Column("user_id").
		Where("id = ?", id).
		Scan(ctx, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get post owner: %w", err)
	}
	return userID, nil
}

func (r *Repository) UpdateMessage(ctx context.Context, id int64, message string) error {
	result, err := database.Conn(ctx, r.db).NewUpdate().
		Model((*database.Post)(nil)).
		Set("message = ?", message).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Post)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
