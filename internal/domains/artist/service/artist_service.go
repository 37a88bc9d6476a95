package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"djbooking-backend/internal/domains/artist"
	"djbooking-backend/internal/domains/artist/model"
	"djbooking-backend/internal/domains/artist/repository"
	styleService "djbooking-backend/internal/domains/style/service"
	"djbooking-backend/internal/shared/apperrors"
	"djbooking-backend/internal/shared/response"
)

type artistService struct {
	repo   repository.RepositoryInterface
	styles styleService.ServiceInterface
}

func NewArtistService(repo repository.RepositoryInterface, styles styleService.ServiceInterface) ServiceInterface {
	return &artistService{
		repo:   repo,
		styles: styles,
	}
}

func (s *artistService) Create(ctx context.Context, req *model.CreateArtistRequest, principalID uuid.UUID) (*model.ArtistDetail, error) {
	exists, err := s.repo.ExistsByID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, artist.ErrProfileExists
	}

	taken, err := s.repo.DisplayNameTaken(ctx, req.DisplayName, principalID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, artist.ErrDisplayNameExists
	}

	styleIDs := req.ParsedStyleIDs()
	if err := s.checkStyleIDs(ctx, styleIDs); err != nil {
		return nil, err
	}

	newArtist := &model.Artist{
		ID:          principalID,
		DisplayName: req.DisplayName,
		Biography:   req.Biography,
		WebsiteURL:  req.WebsiteURL,
		MixcloudURL: req.MixcloudURL,
	}

	created, err := s.repo.Create(ctx, newArtist, styleIDs)
	if err != nil {
		return nil, err
	}

	return s.buildDetail(ctx, created)
}

func (s *artistService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateArtistRequest, principalID uuid.UUID) (*model.ArtistDetail, error) {
	// Ownership before anything else: an artist edits only their own profile.
	if id != principalID {
		return nil, apperrors.NewAuthorization("cannot modify other user's profile")
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, artist.ErrArtistNotFound
	}

	// Uniqueness runs against the database on every update rather than
	// comparing with a possibly cached read of the current name. The
	// check excludes the artist's own row, so re-submitting an
	// unchanged name passes.
	taken, err := s.repo.DisplayNameTaken(ctx, req.DisplayName, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, artist.ErrDisplayNameExists
	}

	styleIDs := req.ParsedStyleIDs()
	if styleIDs != nil {
		if err := s.checkStyleIDs(ctx, styleIDs); err != nil {
			return nil, err
		}
	}

	updatedArtist := &model.Artist{
		ID:          id,
		DisplayName: req.DisplayName,
		Biography:   req.Biography,
		WebsiteURL:  req.WebsiteURL,
		MixcloudURL: req.MixcloudURL,
	}

	updated, err := s.repo.Update(ctx, updatedArtist, styleIDs)
	if err != nil {
		return nil, err
	}

	return s.buildDetail(ctx, updated)
}

func (s *artistService) Get(ctx context.Context, id uuid.UUID) (*model.ArtistDetail, error) {
	if id == uuid.Nil {
		return nil, artist.ErrArtistNotFound
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.buildDetail(ctx, a)
}

func (s *artistService) Search(ctx context.Context, criteria model.SearchCriteria) ([]model.ArtistListItem, int64, error) {
	criteria.Page, criteria.Limit = response.ClampPage(criteria.Page, criteria.Limit)

	items, total, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *artistService) checkStyleIDs(ctx context.Context, styleIDs []uuid.UUID) error {
	missing, err := s.styles.MissingIDs(ctx, styleIDs)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &artist.InvalidStyleIDsError{IDs: missing}
	}
	return nil
}

// buildDetail assembles the detail shape: styles plus events bucketed
// by today's date, both buckets ordered date descending.
func (s *artistService) buildDetail(ctx context.Context, a *model.Artist) (*model.ArtistDetail, error) {
	styles, err := s.repo.GetStyles(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.GetEvents(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	detail := &model.ArtistDetail{
		Artist:         *a,
		Styles:         styles,
		UpcomingEvents: []model.ArtistEvent{},
		PastEvents:     []model.ArtistEvent{},
	}

	today := todayUTC()
	for _, e := range events {
		if !e.EventDate.Before(today) {
			detail.UpcomingEvents = append(detail.UpcomingEvents, e)
		} else {
			detail.PastEvents = append(detail.PastEvents, e)
		}
	}

	return detail, nil
}

func todayUTC() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
