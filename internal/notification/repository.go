package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

var ErrNotFound = apperr.NotFound("notification")

// Repository handles notification persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// Insert stores the notifications in a single statement
func (r *Repository) Insert(ctx context.Context, notifications []*Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	rows := make([]*database.Notification, len(notifications))
	for i, n := range notifications {
		rows[i] = &database.Notification{
			UserID:     n.UserID,
			FromUserID: n.FromUserID,
			Type:       string(n.Type),
			PhotoID:    n.PhotoID,
			PostID:     n.PostID,
			EventID:    n.EventID,
			CommentID:  n.CommentID,
		}
	}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(&rows).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert notifications: %w", err)
	}

	for i, row := range rows {
		notifications[i].ID = row.ID
		notifications[i].CreatedAt = row.CreatedAt
	}
	return nil
}

// List returns a user's notifications newest first. A non-zero before
// restricts the page to ids lower than it.
func (r *Repository) List(ctx context.Context, userID, before int64, limit int) ([]Notification, error) {
	var rows []database.Notification
	q := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		OrderExpr("id DESC").
		Limit(limit)
	if before > 0 {
		q = q.Where("id < ?", before)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]Notification, len(rows))
	for i := range rows {
		out[i] = mapDBNotification(&rows[i])
	}
	return out, nil
}

// RecipientID returns the user a notification was sent to
func (r *Repository) RecipientID(ctx context.Context, id int64) (int64, error) {
	var userID int64
	err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.Notification)(nil)).
		Column("user_id").
		Where("id = ?", id).
		Scan(ctx, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get notification: %w", err)
	}
	return userID, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Notification)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

// DeleteByTarget removes every notification pointing at the entity
func (r *Repository) DeleteByTarget(ctx context.Context, target Target, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Notification)(nil)).
		Where("? = ?", bun.Ident(string(target)), id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete %s notifications: %w", target, err)
	}
	return nil
}

// DeleteFollow removes the follow notification fromUserID caused for toUserID
func (r *Repository) DeleteFollow(ctx context.Context, fromUserID, toUserID int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.Notification)(nil)).
		Where("type = ?", string(TypeFollow)).
		Where("from_user_id = ?", fromUserID).
		Where("user_id = ?", toUserID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete follow notification: %w", err)
	}
	return nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := database.Conn(ctx, r.db).NewUpdate().
		Model((*database.Notification)(nil)).
		Set("is_read = ?", true).
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

func (r *Repository) UnreadCount(ctx context.Context, userID int64) (int, error) {
	count, err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.Notification)(nil)).
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func mapDBNotification(n *database.Notification) Notification {
	return Notification{
		ID:         n.ID,
		UserID:     n.UserID,
		FromUserID: n.FromUserID,
		Type:       Type(n.Type),
		PhotoID:    n.PhotoID,
		PostID:     n.PostID,
		EventID:    n.EventID,
		CommentID:  n.CommentID,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}
