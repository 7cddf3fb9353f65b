package notification

import "time"

// Type identifies what a notification is about
type Type string

const (
	TypeFollow       Type = "follow"
	TypeWallPost     Type = "wall_post"
	TypePhotoComment Type = "photo_comment"
	TypePostComment  Type = "post_comment"
	TypeEventComment Type = "event_comment"
	TypeNewEvent     Type = "new_event"
)

type Notification struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	FromUserID int64     `json:"from_user_id"`
	Type       Type      `json:"type"`
	PhotoID    *int64    `json:"photo_id,omitempty"`
	PostID     *int64    `json:"post_id,omitempty"`
	EventID    *int64    `json:"event_id,omitempty"`
	CommentID  *int64    `json:"comment_id,omitempty"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// Target names the entity a group of notifications points at
type Target string

const (
	TargetPost    Target = "post_id"
	TargetEvent   Target = "event_id"
	TargetPhoto   Target = "photo_id"
	TargetComment Target = "comment_id"
)
