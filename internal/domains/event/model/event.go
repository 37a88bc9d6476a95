package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLength     = 10000
	MaxCountryLength  = 100
	MaxCityLength     = 100
	MaxVenueLength    = 255
	DateLayout        = "2006-01-02"
	MaxMonthsInFuture = 12
)

// Event is owned by exactly one artist; the owner id is immutable after
// creation.
type Event struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Country   string    `json:"country" db:"country"`
	City      string    `json:"city" db:"city"`
	VenueName string    `json:"venue_name" db:"venue_name"`
	EventDate time.Time `json:"event_date" db:"event_date"`
	EventTime *string   `json:"event_time" db:"event_time"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OwnerSummary is the denormalized artist subset in event responses.
type OwnerSummary struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}

// EventDetail is the Get(id) shape.
type EventDetail struct {
	Event
	Artist OwnerSummary `json:"artist"`
}

// ListCriteria is the normalized, typed filter set for List. Filters are
// independently optional and ANDed.
type ListCriteria struct {
	UserID       *uuid.UUID
	Country      string
	City         string
	Venue        string
	DateFrom     *time.Time
	DateTo       *time.Time
	UpcomingOnly bool
	Page         int
	Limit        int
}

func (c ListCriteria) Offset() int {
	return (c.Page - 1) * c.Limit
}

// TodayUTC is the calendar date used for every temporal invariant check.
func TodayUTC() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
