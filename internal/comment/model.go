package comment

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PhotoID   *int64    `json:"photo_id,omitempty"`
	PostID    *int64    `json:"post_id,omitempty"`
	EventID   *int64    `json:"event_id,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Target is the entity a comment is attached to
type Target string

const (
	TargetPhoto Target = "photo_id"
	TargetPost  Target = "post_id"
	TargetEvent Target = "event_id"
)

// target reports what c is attached to, or false unless exactly one target
// is set
func (c *Comment) target() (Target, int64, bool) {
	var (
		found  Target
		id     int64
		number int
	)
	for _, candidate := range []struct {
		target Target
		id     *int64
	}{
		{TargetPhoto, c.PhotoID},
		{TargetPost, c.PostID},
		{TargetEvent, c.EventID},
	} {
		if candidate.id != nil {
			found, id = candidate.target, *candidate.id
			number++
		}
	}
	return found, id, number == 1 && id > 0
}
