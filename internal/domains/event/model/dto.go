package model

import (
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// CreateEventRequest is the create-event command. Normalize must run
// before Validate so length rules apply to the persisted values.
type CreateEventRequest struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	VenueName string  `json:"venue_name"`
	EventDate string  `json:"event_date"`
	EventTime *string `json:"event_time,omitempty"`
}

func (r *CreateEventRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Country = strings.TrimSpace(r.Country)
	r.City = strings.TrimSpace(r.City)
	r.VenueName = strings.TrimSpace(r.VenueName)
	r.EventDate = strings.TrimSpace(r.EventDate)
	if r.EventTime != nil {
		trimmed := strings.TrimSpace(*r.EventTime)
		if trimmed == "" {
			r.EventTime = nil
		} else {
			r.EventTime = &trimmed
		}
	}
}

func (r CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("event name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Country,
			validation.Required.Error("country is required"),
			validation.Length(1, MaxCountryLength),
		),
		validation.Field(&r.City,
			validation.Required.Error("city is required"),
			validation.Length(1, MaxCityLength),
		),
		validation.Field(&r.VenueName,
			validation.Required.Error("venue name is required"),
			validation.Length(1, MaxVenueLength),
		),
		validation.Field(&r.EventDate,
			validation.Required.Error("event date is required"),
			validation.Date(DateLayout).Error("must be a valid date in YYYY-MM-DD format"),
		),
		validation.Field(&r.EventTime,
			validation.When(r.EventTime != nil,
				validation.By(timeRule(r.EventTime)),
			),
		),
	)
}

// ParsedDate returns the validated calendar date.
func (r CreateEventRequest) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, r.EventDate)
}

// UpdateEventRequest mirrors the create command; the owner id never
// appears here because ownership is immutable.
type UpdateEventRequest struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	VenueName string  `json:"venue_name"`
	EventDate string  `json:"event_date"`
	EventTime *string `json:"event_time,omitempty"`
}

func (r *UpdateEventRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Country = strings.TrimSpace(r.Country)
	r.City = strings.TrimSpace(r.City)
	r.VenueName = strings.TrimSpace(r.VenueName)
	r.EventDate = strings.TrimSpace(r.EventDate)
	if r.EventTime != nil {
		trimmed := strings.TrimSpace(*r.EventTime)
		if trimmed == "" {
			r.EventTime = nil
		} else {
			r.EventTime = &trimmed
		}
	}
}

func (r UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("event name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Country,
			validation.Required.Error("country is required"),
			validation.Length(1, MaxCountryLength),
		),
		validation.Field(&r.City,
			validation.Required.Error("city is required"),
			validation.Length(1, MaxCityLength),
		),
		validation.Field(&r.VenueName,
			validation.Required.Error("venue name is required"),
			validation.Length(1, MaxVenueLength),
		),
		validation.Field(&r.EventDate,
			validation.Required.Error("event date is required"),
			validation.Date(DateLayout).Error("must be a valid date in YYYY-MM-DD format"),
		),
		validation.Field(&r.EventTime,
			validation.When(r.EventTime != nil,
				validation.By(timeRule(r.EventTime)),
			),
		),
	)
}

func (r UpdateEventRequest) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, r.EventDate)
}

// ListEventsQuery is the raw list-query shape from the transport.
type ListEventsQuery struct {
	UserID       string `form:"user_id"`
	Country      string `form:"country"`
	City         string `form:"city"`
	Venue        string `form:"venue"`
	DateFrom     string `form:"date_from"`
	DateTo       string `form:"date_to"`
	UpcomingOnly bool   `form:"upcoming_only"`
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
}

func (q *ListEventsQuery) Normalize() {
	q.UserID = strings.TrimSpace(q.UserID)
	q.Country = strings.TrimSpace(q.Country)
	q.City = strings.TrimSpace(q.City)
	q.Venue = strings.TrimSpace(q.Venue)
	q.DateFrom = strings.TrimSpace(q.DateFrom)
	q.DateTo = strings.TrimSpace(q.DateTo)
}

func (q ListEventsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.UserID,
			is.UUIDv4.Error("must be a valid user ID"),
		),
		validation.Field(&q.DateFrom,
			validation.Date(DateLayout).Error("must be a valid date in YYYY-MM-DD format"),
		),
		validation.Field(&q.DateTo,
			validation.Date(DateLayout).Error("must be a valid date in YYYY-MM-DD format"),
			validation.By(q.checkDateOrder),
		),
	)
}

func (q ListEventsQuery) checkDateOrder(interface{}) error {
	if q.DateFrom == "" || q.DateTo == "" {
		return nil
	}
	from, err1 := time.Parse(DateLayout, q.DateFrom)
	to, err2 := time.Parse(DateLayout, q.DateTo)
	if err1 != nil || err2 != nil {
		return nil
	}
	if to.Before(from) {
		return errors.New("must not be before date_from")
	}
	return nil
}

// ToCriteria converts the validated query into the typed criteria object.
func (q ListEventsQuery) ToCriteria() ListCriteria {
	c := ListCriteria{
		Country:      q.Country,
		City:         q.City,
		Venue:        q.Venue,
		UpcomingOnly: q.UpcomingOnly,
		Page:         q.Page,
		Limit:        q.Limit,
	}
	if q.UserID != "" {
		if id, err := uuid.Parse(q.UserID); err == nil {
			c.UserID = &id
		}
	}
	if q.DateFrom != "" {
		if t, err := time.Parse(DateLayout, q.DateFrom); err == nil {
			c.DateFrom = &t
		}
	}
	if q.DateTo != "" {
		if t, err := time.Parse(DateLayout, q.DateTo); err == nil {
			c.DateTo = &t
		}
	}
	return c
}

func timeRule(s *string) validation.RuleFunc {
	return func(interface{}) error {
		if !timePattern.MatchString(*s) {
			return errors.New("must be a valid time in HH:MM format")
		}
		return nil
	}
}
