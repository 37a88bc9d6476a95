package repository

import (
	"context"

	"github.com/google/uuid"

	"djbooking-backend/internal/domains/style/model"
)

type RepositoryInterface interface {
	// GetAll returns every style with its derived usage count.
	GetAll(ctx context.Context) ([]model.MusicStyle, error)

	// ExistingIDs returns the subset of ids that refer to real styles.
	ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
