package model

import (
	"time"

	"github.com/google/uuid"
)

// MusicStyle is static reference data; the service layer never mutates it.
type MusicStyle struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	UsageCount int       `json:"usage_count" db:"usage_count"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
