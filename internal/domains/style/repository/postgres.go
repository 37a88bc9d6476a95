package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"djbooking-backend/internal/domains/style/model"
	"djbooking-backend/pkg/cache"
)

const (
	stylesListCacheKey = "styles:all"
	cacheTTL           = 15 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// GetAll retrieves all styles with usage counts, cached because the
// reference set changes only via migrations.
func (r *postgresRepository) GetAll(ctx context.Context) ([]model.MusicStyle, error) {
	var styles []model.MusicStyle
	cached, err := r.cache.Get(ctx, stylesListCacheKey, &styles)
	if err == nil && cached {
		return styles, nil
	}

	query := `
        SELECT s.id, s.name, COUNT(ast.artist_id) AS usage_count, s.created_at
        FROM music_styles s
        LEFT JOIN artist_styles ast ON ast.style_id = s.id
        GROUP BY s.id, s.name, s.created_at
        ORDER BY s.name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query music styles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s model.MusicStyle
		if err := rows.Scan(&s.ID, &s.Name, &s.UsageCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan music style: %w", err)
		}
		styles = append(styles, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating music styles: %w", err)
	}

	if data, err := json.Marshal(styles); err == nil {
		r.cache.Set(ctx, stylesListCacheKey, string(data), cacheTTL)
	}

	return styles, nil
}

// ExistingIDs returns which of the given ids exist, so the caller can
// report the offending ones.
func (r *postgresRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	query := `SELECT id FROM music_styles WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, pq.Array(idStrs))
	if err != nil {
		return nil, fmt.Errorf("failed to check music style IDs: %w", err)
	}
	defer rows.Close()

	var found []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan music style id: %w", err)
		}
		found = append(found, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating music style ids: %w", err)
	}

	return found, nil
}
