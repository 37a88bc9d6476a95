package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 255
	MaxBioLength  = 10000
	MinStyles     = 1
	MaxStyles     = 50
)

// Artist is a DJ profile. The id is the owning principal's id; there is
// at most one profile per principal.
type Artist struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Biography   string    `json:"biography" db:"biography"`
	WebsiteURL  *string   `json:"website_url" db:"website_url"`
	MixcloudURL *string   `json:"mixcloud_url" db:"mixcloud_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// StyleRef is the style subset embedded in artist responses.
type StyleRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ArtistEvent is the event subset embedded in the artist detail; kept
// local to avoid a dependency on the event domain.
type ArtistEvent struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	VenueName string    `json:"venue_name"`
	EventDate time.Time `json:"event_date"`
	EventTime *string   `json:"event_time"`
}

// ArtistDetail is the Get(id) shape: profile, styles, and events split
// into upcoming/past buckets.
type ArtistDetail struct {
	Artist
	Styles         []StyleRef    `json:"music_styles"`
	UpcomingEvents []ArtistEvent `json:"upcoming_events"`
	PastEvents     []ArtistEvent `json:"past_events"`
}

// ArtistListItem is one search result row; the upcoming event count is
// derived at read time, never stored.
type ArtistListItem struct {
	Artist
	Styles              []StyleRef `json:"music_styles"`
	UpcomingEventsCount int        `json:"upcoming_events_count"`
}

// SearchCriteria is the normalized, typed filter set for Search. All
// filters are optional and ANDed together.
type SearchCriteria struct {
	Search        string
	StyleIDs      []uuid.UUID
	Location      string
	AvailableFrom *time.Time
	AvailableTo   *time.Time
	Page          int
	Limit         int
}

func (c SearchCriteria) Offset() int {
	return (c.Page - 1) * c.Limit
}
