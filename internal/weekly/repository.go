package weekly

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

var ErrNotFound = apperr.NotFound("weekly")

// Repository handles weekly persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, w *Weekly) error {
	row := toDBWeekly(w)

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create weekly: %w", err)
	}

	w.ID = row.ID
	w.CreatedAt = row.CreatedAt
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Weekly, error) {
	row := new(database.Weekly)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get weekly: %w", err)
	}
	return fromDBWeekly(row), nil
}

func (r *Repository) Update(ctx context.Context, w *Weekly) error {
	row := toDBWeekly(w)

	_, err := database.Conn(ctx, r.db).NewUpdate().
		Model(row).
		Column("name", "description", "day_of_week", "photo_id").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update weekly: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Weekly)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete weekly: %w", err)
	}
	return nil
}

// CountByUser counts a club's weeklies. Inside a transaction the club's
// user row is locked first, so concurrent creates for one club run one at
// a time.
func (r *Repository) CountByUser(ctx context.Context, userID int64) (int, error) {
	conn := database.Conn(ctx, r.db)
	if _, ok := database.TxFromContext(ctx); ok {
		_, err := conn.NewSelect().
			Model((*database.User)(nil)).
			Column("id").
			Where("id = ?", userID).
			For("UPDATE").
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to lock club: %w", err)
		}
	}

	count, err := conn.NewSelect().
		Model((*database.Weekly)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count weeklies: %w", err)
	}
	return count, nil
}

// ListByUser returns a club's weeklies ordered by weekday
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Weekly, error) {
	var rows []database.Weekly
	err := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		OrderExpr("day_of_week ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeklies: %w", err)
	}

	out := make([]Weekly, len(rows))
	for i := range rows {
		out[i] = *fromDBWeekly(&rows[i])
	}
	return out, nil
}

func toDBWeekly(w *Weekly) *database.Weekly {
	return &database.Weekly{
		ID:          w.ID,
		UserID:      w.UserID,
		Name:        w.Name,
		Description: w.Description,
		DayOfWeek:   int16(w.DayOfWeek),
		PhotoID:     w.PhotoID,
	}
}

func fromDBWeekly(row *database.Weekly) *Weekly {
	return &Weekly{
		ID:     row.ID,
		UserID: row.UserID,
		Details: Details{
			Name:        row.Name,
			Description: row.Description,
			DayOfWeek:   time.Weekday(row.DayOfWeek),
			PhotoID:     row.PhotoID,
		},
		CreatedAt: row.CreatedAt,
	}
}
