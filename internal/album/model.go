// Package album groups a user's photos.
package album

import "time"

type Album struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	// PhotoIDs is filled when a single album is loaded
	PhotoIDs []int64 `json:"photo_ids,omitempty"`
}
