package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// CreateArtistRequest is the create-profile command. Normalize must run
// before Validate so length rules apply to the trimmed values that get
// persisted.
type CreateArtistRequest struct {
	DisplayName string   `json:"display_name"`
	Biography   string   `json:"biography"`
	WebsiteURL  *string  `json:"website_url,omitempty"`
	MixcloudURL *string  `json:"mixcloud_url,omitempty"`
	StyleIDs    []string `json:"music_style_ids"`
}

func (r *CreateArtistRequest) Normalize() {
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	r.Biography = strings.TrimSpace(r.Biography)
	r.WebsiteURL = trimPtr(r.WebsiteURL)
	r.MixcloudURL = trimPtr(r.MixcloudURL)
	for i, id := range r.StyleIDs {
		r.StyleIDs[i] = strings.TrimSpace(id)
	}
}

func (r CreateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DisplayName,
			validation.Required.Error("display name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Biography,
			validation.Required.Error("biography is required"),
			validation.Length(1, MaxBioLength),
		),
		validation.Field(&r.WebsiteURL,
			validation.When(r.WebsiteURL != nil && *r.WebsiteURL != "",
				validation.By(urlRule(r.WebsiteURL)),
			),
		),
		validation.Field(&r.MixcloudURL,
			validation.When(r.MixcloudURL != nil && *r.MixcloudURL != "",
				validation.By(urlRule(r.MixcloudURL)),
			),
		),
		validation.Field(&r.StyleIDs,
			validation.Required.Error("at least one music style is required"),
			validation.Length(MinStyles, MaxStyles).Error("music styles must have between 1 and 50 entries"),
			validation.Each(is.UUIDv4.Error("must be a valid music style ID")),
			validation.By(uniqueStrings),
		),
	)
}

// ParsedStyleIDs converts the validated id strings to uuids.
func (r CreateArtistRequest) ParsedStyleIDs() []uuid.UUID {
	return parseUUIDs(r.StyleIDs)
}

// UpdateArtistRequest is the update-profile command. A nil StyleIDs
// leaves the associations untouched; a non-nil set replaces them whole.
type UpdateArtistRequest struct {
	DisplayName string   `json:"display_name"`
	Biography   string   `json:"biography"`
	WebsiteURL  *string  `json:"website_url,omitempty"`
	MixcloudURL *string  `json:"mixcloud_url,omitempty"`
	StyleIDs    []string `json:"music_style_ids,omitempty"`
}

func (r *UpdateArtistRequest) Normalize() {
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	r.Biography = strings.TrimSpace(r.Biography)
	r.WebsiteURL = trimPtr(r.WebsiteURL)
	r.MixcloudURL = trimPtr(r.MixcloudURL)
	for i, id := range r.StyleIDs {
		r.StyleIDs[i] = strings.TrimSpace(id)
	}
}

func (r UpdateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DisplayName,
			validation.Required.Error("display name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Biography,
			validation.Required.Error("biography is required"),
			validation.Length(1, MaxBioLength),
		),
		validation.Field(&r.WebsiteURL,
			validation.When(r.WebsiteURL != nil && *r.WebsiteURL != "",
				validation.By(urlRule(r.WebsiteURL)),
			),
		),
		validation.Field(&r.MixcloudURL,
			validation.When(r.MixcloudURL != nil && *r.MixcloudURL != "",
				validation.By(urlRule(r.MixcloudURL)),
			),
		),
		validation.Field(&r.StyleIDs,
			validation.When(r.StyleIDs != nil,
				validation.Length(MinStyles, MaxStyles).Error("music styles must have between 1 and 50 entries"),
				validation.Each(is.UUIDv4.Error("must be a valid music style ID")),
				validation.By(uniqueStrings),
			),
		),
	)
}

func (r UpdateArtistRequest) ParsedStyleIDs() []uuid.UUID {
	if r.StyleIDs == nil {
		return nil
	}
	return parseUUIDs(r.StyleIDs)
}

// SearchArtistsQuery is the raw list-query shape from the transport.
type SearchArtistsQuery struct {
	Search        string   `form:"search"`
	MusicStyles   []string `form:"-"`
	Location      string   `form:"location"`
	AvailableFrom string   `form:"available_from"`
	AvailableTo   string   `form:"available_to"`
	Page          int      `form:"page"`
	Limit         int      `form:"limit"`
}

func (q *SearchArtistsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Location = strings.TrimSpace(q.Location)
	q.AvailableFrom = strings.TrimSpace(q.AvailableFrom)
	q.AvailableTo = strings.TrimSpace(q.AvailableTo)
	var styles []string
	for _, s := range q.MusicStyles {
		if s = strings.TrimSpace(s); s != "" {
			styles = append(styles, s)
		}
	}
	q.MusicStyles = styles
}

func (q SearchArtistsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.MusicStyles,
			validation.Each(is.UUIDv4.Error("must be a valid music style ID")),
		),
		validation.Field(&q.AvailableFrom,
			validation.Date(DateLayout).Error("must be a valid date in YYYY-MM-DD format"),
		),
		validation.Field(&q.AvailableTo,
			validation.Date(DateLayout).Error("must be a valid date in YYYY-MM-DD format"),
			validation.By(q.checkDateOrder),
		),
	)
}

// checkDateOrder runs after per-field checks pass; it ignores values the
// per-field date rules already rejected.
func (q SearchArtistsQuery) checkDateOrder(interface{}) error {
	if q.AvailableFrom == "" || q.AvailableTo == "" {
		return nil
	}
	from, err1 := time.Parse(DateLayout, q.AvailableFrom)
	to, err2 := time.Parse(DateLayout, q.AvailableTo)
	if err1 != nil || err2 != nil {
		return nil
	}
	if to.Before(from) {
		return errors.New("must not be before available_from")
	}
	return nil
}

// ToCriteria converts the validated query into the typed criteria object.
func (q SearchArtistsQuery) ToCriteria() SearchCriteria {
	c := SearchCriteria{
		Search:   q.Search,
		Location: q.Location,
		StyleIDs: parseUUIDs(q.MusicStyles),
		Page:     q.Page,
		Limit:    q.Limit,
	}
	if q.AvailableFrom != "" {
		if t, err := time.Parse(DateLayout, q.AvailableFrom); err == nil {
			c.AvailableFrom = &t
		}
	}
	if q.AvailableTo != "" {
		if t, err := time.Parse(DateLayout, q.AvailableTo); err == nil {
			c.AvailableTo = &t
		}
	}
	return c
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func parseUUIDs(strs []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(strs))
	for _, s := range strs {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func uniqueStrings(value interface{}) error {
	strs, _ := value.([]string)
	seen := make(map[string]bool, len(strs))
	for _, s := range strs {
		if seen[s] {
			return errors.New("must not contain duplicate entries")
		}
		seen[s] = true
	}
	return nil
}

func urlRule(s *string) validation.RuleFunc {
	return func(interface{}) error {
		return validation.Validate(*s, is.URL.Error("must be a valid URL"))
	}
}
