// Package weekly manages the recurring weekly specials a club advertises.
package weekly

import "time"

// MaxPerClub is how many weeklies a club may have at once
const MaxPerClub = 7

// Details are the editable fields of a weekly
type Details struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	DayOfWeek   time.Weekday `json:"day_of_week" swaggertype:"integer" minimum:"0" maximum:"6"`
	PhotoID     *int64       `json:"photo_id,omitempty"`
}

type Weekly struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	Details
	CreatedAt time.Time `json:"created_at"`
}
