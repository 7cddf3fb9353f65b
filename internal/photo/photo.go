// Package photo keeps photo metadata. Image bytes live outside the API.
package photo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

var ErrNotFound = apperr.NotFound("photo")

type Photo struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	AlbumID     *int64    `json:"album_id,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository handles photo persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *Photo) error {
	row := &database.Photo{UserID: p.UserID, AlbumID: p.AlbumID, Description: p.Description}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}

	p.ID = row.ID
	p.CreatedAt = row.CreatedAt
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Photo, error) {
	row := new(database.Photo)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return &Photo{
		ID:          row.ID,
		UserID:      row.UserID,
		AlbumID:     row.AlbumID,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}, nil
}

// OwnerID returns the user who uploaded a photo
func (r *Repository) OwnerID(ctx context.Context, id int64) (int64, error) {
	var userID int64
	err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.Photo)(nil)).
		Column("user_id").
		Where("id = ?", id).
		Scan(ctx, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get photo owner: %w", err)
	}
	return userID, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Photo)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}
