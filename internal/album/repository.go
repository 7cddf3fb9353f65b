package album

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

var ErrNotFound = apperr.NotFound("album")

// Repository handles album persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, a *Album) error {
	row := &database.Album{UserID: a.UserID, Name: a.Name}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create album: %w", err)
	}

	a.ID = row.ID
	a.CreatedAt = row.CreatedAt
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Album, error) {
	row := new(database.Album)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get album: %w", err)
	}
	return fromDBAlbum(row), nil
}

// OwnerID returns the user who created an album
func (r *Repository) OwnerID(ctx context.Context, id int64) (int64, error) {
	var userID int64
	err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.Album)(nil)).
		Column("user_id").
		Where("id = ?", id).
		Scan(ctx, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get album owner: %w", err)
	}
	return userID, nil
}

func (r *Repository) Rename(ctx context.Context, id int64, name string) error {
	_, err := database.Conn(ctx, r.db).NewUpdate().
		Model((*database.Album)(nil)).
		Set("name = ?", name).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to rename album: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Album)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}
	return nil
}

// PhotoIDs returns the photos of an album in upload order
func (r *Repository) PhotoIDs(ctx context.Context, albumID int64) ([]int64, error) {
	var ids []int64
	err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.Photo)(nil)).
		Column("id").
		Where("album_id = ?", albumID).
		OrderExpr("id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list album photos: %w", err)
	}
	return ids, nil
}

// ListByUser returns a user's albums oldest first. A non-zero lastID
// restricts the page to higher ids.
func (r *Repository) ListByUser(ctx context.Context, userID, lastID int64, limit int) ([]Album, error) {
	var rows []database.Album
	q := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		OrderExpr("id ASC").
		Limit(limit)
	if lastID > 0 {
		q = q.Where("id > ?", lastID)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}

	out := make([]Album, len(rows))
	for i := range rows {
		out[i] = *fromDBAlbum(&rows[i])
	}
	return out, nil
}

func fromDBAlbum(row *database.Album) *Album {
	return &Album{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
