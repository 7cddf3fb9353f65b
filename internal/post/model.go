package post

import "time"

type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ToUserID  *int64    `json:"to_user_id,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// IsWallPost reports whether the post was written on another user's wall
func (p *Post) IsWallPost() bool {
	return p.ToUserID != nil && *p.ToUserID != p.UserID
}
