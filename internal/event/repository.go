package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

var ErrNotFound = apperr.NotFound("event")

// Repository handles event persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, e *Event) error {
	row := toDBEvent(e)

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	e.ID = row.ID
	e.CreatedAt = row.CreatedAt
	return nil
}

// GetByID loads an event with its tags
func (r *Repository) GetByID(ctx context.Context, id int64) (*Event, error) {
	row := new(database.Event)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	e := fromDBEvent(row)
	if e.Tags, err = r.tagsOf(ctx, id); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repository) OwnerID(ctx context.Context, id int64) (int64, error) {
	var userID int64
	err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.Event)(nil)).
		Column("user_id").
		Where("id = ?", id).
		Scan(ctx, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get event owner: %w", err)
	}
	return userID, nil
}

// Update overwrites the editable fields of an event
func (r *Repository) Update(ctx context.Context, e *Event) error {
	_, err := database.Conn(ctx, r.db).NewUpdate().
		Model(toDBEvent(e)).
		Column("name", "description", "location", "street", "city",
			"latitude", "longitude", "price", "photo_id", "is_date_only", "starts_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Event)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// SetTags replaces the tags attached to an event
func (r *Repository) SetTags(ctx context.Context, eventID int64, tagIDs []int64) error {
	db := database.Conn(ctx, r.db)

	_, err := db.NewDelete().
		Model((*database.EventTag)(nil)).
		Where("event_id = ?", eventID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear event tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]database.EventTag, len(tagIDs))
	for i, tagID := range tagIDs {
		rows[i] = database.EventTag{EventID: eventID, TagID: tagID}
	}
	if _, err := db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to attach event tags: %w", err)
	}
	return nil
}

// ListByUser returns a user's events newest first. A non-zero lastID
// restricts the page to lower ids.
func (r *Repository) ListByUser(ctx context.Context, userID, lastID int64, limit int) ([]Event, error) {
	var rows []database.Event
	q := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		OrderExpr("id DESC").
		Limit(limit)
	if lastID > 0 {
		q = q.Where("id < ?", lastID)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	out := make([]Event, len(rows))
	for i := range rows {
		out[i] = *fromDBEvent(&rows[i])
	}
	return out, nil
}

func (r *Repository) tagsOf(ctx context.Context, eventID int64) ([]Tag, error) {
	var rows []database.Tag
	err := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		Join("JOIN event_tags AS et ON et.tag_id = t.id").
		Where("et.event_id = ?", eventID).
		OrderExpr("t.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load event tags: %w", err)
	}

	tags := make([]Tag, len(rows))
	for i, row := range rows {
		tags[i] = Tag{ID: row.ID, Name: row.Name}
	}
	return tags, nil
}

// TagRepository looks up the fixed tag vocabulary
type TagRepository struct {
	db bun.IDB
}

func NewTagRepository(db bun.IDB) *TagRepository {
	return &TagRepository{db: db}
}

// FindByNames returns the known tags matching names, ignoring case
func (r *TagRepository) FindByNames(ctx context.Context, names []string) ([]Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}

	var rows []database.Tag
	err := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		Where("LOWER(name) IN (?)", bun.In(lowered)).
		OrderExpr("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}

	tags := make([]Tag, len(rows))
	for i, row := range rows {
		tags[i] = Tag{ID: row.ID, Name: row.Name}
	}
	return tags, nil
}

func toDBEvent(e *Event) *database.Event {
	return &database.Event{
		ID:          e.ID,
		UserID:      e.UserID,
		Name:        e.Name,
		Description: e.Description,
		Location:    e.Location,
		Street:      e.Street,
		City:        e.City,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		Price:       e.Price,
		PhotoID:     e.PhotoID,
		IsDateOnly:  e.IsDateOnly,
		StartsAt:    e.StartsAt,
	}
}

func fromDBEvent(row *database.Event) *Event {
	return &Event{
		ID:     row.ID,
		UserID: row.UserID,
		Details: Details{
			Name:        row.Name,
			Description: row.Description,
			Location:    row.Location,
			Street:      row.Street,
			City:        row.City,
			Latitude:    row.Latitude,
			Longitude:   row.Longitude,
			Price:       row.Price,
			PhotoID:     row.PhotoID,
			IsDateOnly:  row.IsDateOnly,
			StartsAt:    row.StartsAt,
		},
		Tags:      []Tag{},
		CreatedAt: row.CreatedAt,
	}
}
