package event

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrInvalidEventID  = errors.New("invalid event ID format")
	ErrEventDateFormat = errors.New("event date must be a valid date in YYYY-MM-DD format")
	ErrEventDateInPast = errors.New("event date must be today or in the future")
	ErrEventDateTooFar = errors.New("event date must be within one year from today")
	ErrNotEventOwner   = errors.New("cannot modify other user's events")
	ErrEventInPast     = errors.New("cannot modify past events")
)
