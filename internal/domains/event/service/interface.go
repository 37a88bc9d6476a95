package service

import (
	"context"

	"github.com/google/uuid"

	"djbooking-backend/internal/domains/event/model"
)

type ServiceInterface interface {
	// Create registers an event owned by the principal. The event date
	// must be today or later and at most one year ahead.
	Create(ctx context.Context, req *model.CreateEventRequest, principalID uuid.UUID) (*model.Event, error)

	// Update replaces the mutable fields of the principal's own event.
	// Events whose stored date has passed are frozen.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateEventRequest, principalID uuid.UUID) (*model.Event, error)

	// Delete removes the principal's own event; past events are frozen.
	Delete(ctx context.Context, id uuid.UUID, principalID uuid.UUID) error

	// Get returns the event together with its owner summary.
	Get(ctx context.Context, id uuid.UUID) (*model.EventDetail, error)

	// List applies the composable filters with offset pagination.
	List(ctx context.Context, criteria model.ListCriteria) ([]model.Event, int64, error)
}
