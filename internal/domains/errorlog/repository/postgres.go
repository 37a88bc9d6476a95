package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"djbooking-backend/internal/domains/errorlog/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Insert(ctx context.Context, log *model.ErrorLog) error {
	query := `
        INSERT INTO error_logs (message, error_kind, request_url, http_method, user_agent, user_id, stack_trace)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := r.pool.Exec(
		ctx,
		query,
		log.Message,
		log.ErrorKind,
		log.RequestURL,
		log.HTTPMethod,
		log.UserAgent,
		log.UserID,
		log.StackTrace,
	)
	if err != nil {
		return fmt.Errorf("failed to insert error log: %w", err)
	}

	return nil
}
