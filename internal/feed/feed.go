// Package feed records activity entries for posts, events and photos and
// serves a user's home feed.
package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/database"
)

type Type string

const (
	TypePost  Type = "post"
	TypeEvent Type = "event"
	TypePhoto Type = "photo"
)

type Entry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      Type      `json:"type"`
	PostID    *int64    `json:"post_id,omitempty"`
	EventID   *int64    `json:"event_id,omitempty"`
	PhotoID   *int64    `json:"photo_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ForPost builds the entry announcing a new post
func ForPost(userID, postID int64, at time.Time) *Entry {
	return &Entry{UserID: userID, Type: TypePost, PostID: &postID, CreatedAt: at}
}

// ForEvent builds the entry announcing a new event
func ForEvent(userID, eventID int64, at time.Time) *Entry {
	return &Entry{UserID: userID, Type: TypeEvent, EventID: &eventID, CreatedAt: at}
}

// ForPhoto builds the entry announcing a new photo
func ForPhoto(userID, photoID int64, at time.Time) *Entry {
	return &Entry{UserID: userID, Type: TypePhoto, PhotoID: &photoID, CreatedAt: at}
}

// Repository handles feed persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, e *Entry) error {
	row := &database.Feed{
		UserID:    e.UserID,
		FeedType:  string(e.Type),
		PostID:    e.PostID,
		EventID:   e.EventID,
		PhotoID:   e.PhotoID,
		CreatedAt: e.CreatedAt,
	}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create feed entry: %w", err)
	}

	e.ID = row.ID
	return nil
}

func (r *Repository) RemoveByPost(ctx context.Context, postID int64) error {
	return r.removeWhere(ctx, "post_id", postID)
}

func (r *Repository) RemoveByEvent(ctx context.Context, eventID int64) error {
	return r.removeWhere(ctx, "event_id", eventID)
}

func (r *Repository) RemoveByPhoto(ctx context.Context, photoID int64) error {
	return r.removeWhere(ctx, "photo_id", photoID)
}

func (r *Repository) removeWhere(ctx context.Context, column string, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Feed)(nil)).
		Where("? = ?", bun.Ident(column), id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove feed entries by %s: %w", column, err)
	}
	return nil
}

// ForUser returns entries by the user and everyone they follow, newest
// first. A non-zero before restricts the page to lower ids.
func (r *Repository) ForUser(ctx context.Context, userID, before int64, limit int) ([]Entry, error) {
	followed := database.Conn(ctx, r.db).NewSelect().
		Model((*database.Follow)(nil)).
		Column("to_user_id").
		Where("from_user_id = ?", userID)

	var rows []database.Feed
	q := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("user_id = ?", userID).WhereOr("user_id IN (?)", followed)
		}).
		OrderExpr("id DESC").
		Limit(database.PageSize(limit))
	if before > 0 {
		q = q.Where("id < ?", before)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	out := make([]Entry, len(rows))
	for i, row := range rows {
		out[i] = Entry{
			ID:        row.ID,
			UserID:    row.UserID,
			Type:      Type(row.FeedType),
			PostID:    row.PostID,
			EventID:   row.EventID,
			PhotoID:   row.PhotoID,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}
