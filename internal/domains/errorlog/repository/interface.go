package repository

import (
	"context"

	"djbooking-backend/internal/domains/errorlog/model"
)

type RepositoryInterface interface {
	Insert(ctx context.Context, log *model.ErrorLog) error
}
