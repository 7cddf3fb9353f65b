package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

var ErrNotFound = apperr.NotFound("comment")

// Repository handles comment persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, c *Comment) error {
	row := &database.Comment{
		UserID:  c.UserID,
		PhotoID: c.PhotoID,
		PostID:  c.PostID,
		EventID: c.EventID,
		Message: c.Message,
	}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	c.ID = row.ID
	c.CreatedAt = row.CreatedAt
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Comment, error) {
	row := new(database.Comment)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	c := mapDBComment(row)
	return &c, nil
}

// List returns the comments on a target, oldest first. A non-zero after
// restricts the page to higher ids.
func (r *Repository) List(ctx context.Context, target Target, targetID, after int64, limit int) ([]Comment, error) {
	var rows []database.Comment
	q := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		Where("? = ?", bun.Ident(string(target)), targetID).
		OrderExpr("id ASC").
		Limit(limit)
	if after > 0 {
		q = q.Where("id > ?", after)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	out := make([]Comment, len(rows))
	for i := range rows {
		out[i] = mapDBComment(&rows[i])
	}
	return out, nil
}

func (r *Repository) UpdateMessage(ctx context.Context, id int64, message string) error {
	_, err := database.Conn(ctx, r.db).NewUpdate().
		Model((*database.Comment)(nil)).
		Set("message = ?", message).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Comment)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// DeleteByTarget removes every comment on the entity
func (r *Repository) DeleteByTarget(ctx context.Context, target Target, targetID int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Comment)(nil)).
		Where("? = ?", bun.Ident(string(target)), targetID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete comments by %s: %w", target, err)
	}
	return nil
}

func mapDBComment(c *database.Comment) Comment {
	return Comment{
		ID:        c.ID,
		UserID:    c.UserID,
		PhotoID:   c.PhotoID,
		PostID:    c.PostID,
		EventID:   c.EventID,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
