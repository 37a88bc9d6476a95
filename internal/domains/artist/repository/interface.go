package repository

import (
	"context"

	"github.com/google/uuid"

	"djbooking-backend/internal/domains/artist/model"
)

type RepositoryInterface interface {
	// Create persists the profile and its style associations as one
	// transaction; no partially-created profile is ever left behind.
	Create(ctx context.Context, a *model.Artist, styleIDs []uuid.UUID) (*model.Artist, error)

	// Update persists profile changes; a non-nil styleIDs replaces the
	// whole association set in the same transaction.
	Update(ctx context.Context, a *model.Artist, styleIDs []uuid.UUID) (*model.Artist, error)

	GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	GetStyles(ctx context.Context, artistID uuid.UUID) ([]model.StyleRef, error)

	// GetEvents returns all of the artist's events ordered by date descending.
	GetEvents(ctx context.Context, artistID uuid.UUID) ([]model.ArtistEvent, error)

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// DisplayNameTaken reports a case-sensitive exact collision,
	// excluding excludeID when it is non-nil.
	DisplayNameTaken(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	Search(ctx context.Context, criteria model.SearchCriteria) ([]model.ArtistListItem, int64, error)
}
