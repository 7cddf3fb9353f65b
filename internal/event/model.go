package event

import "time"

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Details are the user-editable fields of an event
type Details struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Street      string    `json:"street"`
	City        string    `json:"city"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	PhotoID     *int64    `json:"photo_id,omitempty"`
	IsDateOnly  bool      `json:"is_date_only"`
	StartsAt    time.Time `json:"starts_at"`
}

type Event struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	Details
	Tags      []Tag     `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}
