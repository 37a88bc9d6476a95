package repository

import (
	"context"

	"github.com/google/uuid"

	"djbooking-backend/internal/domains/event/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	Update(ctx context.Context, e *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)

	// GetWithOwner returns the event plus its owning artist summary.
	GetWithOwner(ctx context.Context, id uuid.UUID) (*model.EventDetail, error)

	List(ctx context.Context, criteria model.ListCriteria) ([]model.Event, int64, error)
}
