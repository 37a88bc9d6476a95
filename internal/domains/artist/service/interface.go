package service

import (
	"context"

	"github.com/google/uuid"

	"djbooking-backend/internal/domains/artist/model"
)

type ServiceInterface interface {
	// Create registers the principal's profile. At most one profile per
	// principal; display names are globally unique.
	Create(ctx context.Context, req *model.CreateArtistRequest, principalID uuid.UUID) (*model.ArtistDetail, error)

	// Update edits the principal's own profile only.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateArtistRequest, principalID uuid.UUID) (*model.ArtistDetail, error)

	// Get returns the full profile with styles and upcoming/past event buckets.
	Get(ctx context.Context, id uuid.UUID) (*model.ArtistDetail, error)

	// Search applies the composable filters with offset pagination.
	Search(ctx context.Context, criteria model.SearchCriteria) ([]model.ArtistListItem, int64, error)
}
