package service

import (
	"context"

	"github.com/google/uuid"

	"djbooking-backend/internal/domains/style/model"
	"djbooking-backend/internal/domains/style/repository"
)

type ServiceInterface interface {
	GetAll(ctx context.Context) ([]model.MusicStyle, error)

	// MissingIDs returns the ids that do not refer to real styles.
	MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type styleService struct {
	repo repository.RepositoryInterface
}

func NewStyleService(repo repository.RepositoryInterface) ServiceInterface {
	return &styleService{repo: repo}
}

func (s *styleService) GetAll(ctx context.Context) ([]model.MusicStyle, error) {
	return s.repo.GetAll(ctx)
}

func (s *styleService) MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := s.repo.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	known := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		known[id] = true
	}

	var missing []uuid.UUID
	for _, id := range ids {
		if !known[id] {
			missing = append(missing, id)
		}
	}

	return missing, nil
}
