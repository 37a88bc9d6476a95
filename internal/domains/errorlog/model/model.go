package model

import (
	"time"

	"github.com/google/uuid"
)

// ErrorLog is an append-only failure record; the service layer never
// updates or deletes rows.
type ErrorLog struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Message    string     `json:"message" db:"message"`
	ErrorKind  string     `json:"error_kind" db:"error_kind"`
	RequestURL *string    `json:"request_url" db:"request_url"`
	HTTPMethod *string    `json:"http_method" db:"http_method"`
	UserAgent  *string    `json:"user_agent" db:"user_agent"`
	UserID     *uuid.UUID `json:"user_id" db:"user_id"`
	StackTrace *string    `json:"stack_trace" db:"stack_trace"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}
