package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"djbooking-backend/internal/domains/artist"
	"djbooking-backend/internal/domains/artist/model"
	"djbooking-backend/internal/shared/utils"
	"djbooking-backend/pkg/cache"
	pkgdb "djbooking-backend/pkg/database"
)

const (
	artistCacheKeyPrefix = "artist:"
	stylesListCacheKey   = "styles:all"
	cacheTTL             = 15 * time.Minute
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

// Create inserts the profile row and its style associations inside one
// transaction, so a failed association insert rolls the profile back.
func (r *postgresRepository) Create(ctx context.Context, a *model.Artist, styleIDs []uuid.UUID) (*model.Artist, error) {
	created, err := pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Artist, error) {
		query := `
            INSERT INTO artists (id, display_name, biography, website_url, mixcloud_url)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id, display_name, biography, website_url, mixcloud_url, created_at, updated_at
        `

		var created model.Artist
		err := tx.QueryRow(
			ctx,
			query,
			a.ID,
			a.DisplayName,
			a.Biography,
			a.WebsiteURL,
			a.MixcloudURL,
		).Scan(
			&created.ID,
			&created.DisplayName,
			&created.Biography,
			&created.WebsiteURL,
			&created.MixcloudURL,
			&created.CreatedAt,
			&created.UpdatedAt,
		)
		if err != nil {
			return nil, mapArtistPgError(err)
		}

		if err := insertStyles(ctx, tx, created.ID, styleIDs); err != nil {
			return nil, err
		}

		return &created, nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidateListCache(ctx)
	return created, nil
}

// Update persists profile changes; a non-nil styleIDs replaces the whole
// association set (delete-all-then-insert, never merged) in the same
// transaction.
func (r *postgresRepository) Update(ctx context.Context, a *model.Artist, styleIDs []uuid.UUID) (*model.Artist, error) {
	updated, err := pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Artist, error) {
		query := `
            UPDATE artists
            SET display_name = $1,
                biography = $2,
                website_url = $3,
                mixcloud_url = $4,
                updated_at = NOW()
            WHERE id = $5
            RETURNING id, display_name, biography, website_url, mixcloud_url, created_at, updated_at
        `

		var updated model.Artist
		err := tx.QueryRow(
			ctx,
			query,
			a.DisplayName,
			a.Biography,
			a.WebsiteURL,
			a.MixcloudURL,
			a.ID,
		).Scan(
			&updated.ID,
			&updated.DisplayName,
			&updated.Biography,
			&updated.WebsiteURL,
			&updated.MixcloudURL,
			&updated.CreatedAt,
			&updated.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, artist.ErrArtistNotFound
			}
			return nil, mapArtistPgError(err)
		}

		if styleIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM artist_styles WHERE artist_id = $1`, a.ID); err != nil {
				return nil, fmt.Errorf("failed to clear style associations: %w", err)
			}
			if err := insertStyles(ctx, tx, a.ID, styleIDs); err != nil {
				return nil, err
			}
		}

		return &updated, nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidateArtistCache(ctx, a.ID)
	r.invalidateListCache(ctx)
	return updated, nil
}

func insertStyles(ctx context.Context, tx pgx.Tx, artistID uuid.UUID, styleIDs []uuid.UUID) error {
	if len(styleIDs) == 0 {
		return nil
	}

	idStrs := make([]string, len(styleIDs))
	for i, id := range styleIDs {
		idStrs[i] = id.String()
	}

	query := `
        INSERT INTO artist_styles (artist_id, style_id)
        SELECT $1, unnest($2::uuid[])
    `
	if _, err := tx.Exec(ctx, query, artistID, pq.Array(idStrs)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return &artist.InvalidStyleIDsError{IDs: styleIDs}
		}
		return fmt.Errorf("failed to insert style associations: %w", err)
	}

	return nil
}

func mapArtistPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		if strings.Contains(pgErr.ConstraintName, "display_name") {
			return artist.ErrDisplayNameExists
		}
		if strings.Contains(pgErr.ConstraintName, "pkey") {
			return artist.ErrProfileExists
		}
	}
	return fmt.Errorf("failed to persist artist: %w", err)
}

// GetByID retrieves a profile with caching.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	cacheKey := artistCacheKeyPrefix + id.String()

	var a model.Artist
	cached, err := r.cache.Get(ctx, cacheKey, &a)
	if err == nil && cached {
		return &a, nil
	}

	query := `
        SELECT id, display_name, biography, website_url, mixcloud_url, created_at, updated_at
        FROM artists
        WHERE id = $1
    `

	err = r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.DisplayName,
		&a.Biography,
		&a.WebsiteURL,
		&a.MixcloudURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, artist.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist by id: %w", err)
	}

	if data, err := json.Marshal(a); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), cacheTTL)
	}

	return &a, nil
}

func (r *postgresRepository) GetStyles(ctx context.Context, artistID uuid.UUID) ([]model.StyleRef, error) {
	query := `
        SELECT s.id, s.name
        FROM music_styles s
        JOIN artist_styles ast ON ast.style_id = s.id
        WHERE ast.artist_id = $1
        ORDER BY s.name ASC
    `

	rows, err := r.pool.Query(ctx, query, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query artist styles: %w", err)
	}
	defer rows.Close()

	var styles []model.StyleRef
	for rows.Next() {
		var s model.StyleRef
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan artist style: %w", err)
		}
		styles = append(styles, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artist styles: %w", err)
	}

	return styles, nil
}

func (r *postgresRepository) GetEvents(ctx context.Context, artistID uuid.UUID) ([]model.ArtistEvent, error) {
	query := `
        SELECT id, name, country, city, venue_name, event_date, event_time
        FROM events
        WHERE user_id = $1
        ORDER BY event_date DESC, created_at DESC
    `

	rows, err := r.pool.Query(ctx, query, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query artist events: %w", err)
	}
	defer rows.Close()

	var events []model.ArtistEvent
	for rows.Next() {
		var e model.ArtistEvent
		if err := rows.Scan(&e.ID, &e.Name, &e.Country, &e.City, &e.VenueName, &e.EventDate, &e.EventTime); err != nil {
			return nil, fmt.Errorf("failed to scan artist event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artist events: %w", err)
	}

	return events, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM artists WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check artist existence: %w", err)
	}

	return exists, nil
}

// DisplayNameTaken is the case-sensitive exact collision check. This is
// the friendly fast path; the unique constraint is the real guarantee.
func (r *postgresRepository) DisplayNameTaken(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM artists WHERE display_name = $1 AND id <> $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check display name: %w", err)
	}

	return exists, nil
}

// buildSearchWhere composes the AND-joined filter clauses with their
// positional args. The availability filter is a NOT EXISTS over the
// window (open-ended sides allowed), so artists with zero events always
// qualify.
func buildSearchWhere(criteria model.SearchCriteria) (string, []interface{}) {
	clauses := []string{"1=1"}
	args := []interface{}{}

	if criteria.Search != "" {
		pattern := "%" + utils.EscapeLike(criteria.Search) + "%"
		clauses = append(clauses, fmt.Sprintf(
			"(a.display_name ILIKE $%d OR a.biography ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, pattern)
	}

	if len(criteria.StyleIDs) > 0 {
		idStrs := make([]string, len(criteria.StyleIDs))
		for i, id := range criteria.StyleIDs {
			idStrs[i] = id.String()
		}
		clauses = append(clauses, fmt.Sprintf(
			"a.id IN (SELECT artist_id FROM artist_styles WHERE style_id = ANY($%d::uuid[]))", len(args)+1))
		args = append(args, pq.Array(idStrs))
	}

	if criteria.Location != "" {
		pattern := "%" + utils.EscapeLike(criteria.Location) + "%"
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM events e WHERE e.user_id = a.id AND (e.country ILIKE $%d OR e.city ILIKE $%d OR e.venue_name ILIKE $%d))",
			len(args)+1, len(args)+1, len(args)+1))
		args = append(args, pattern)
	}

	if criteria.AvailableFrom != nil || criteria.AvailableTo != nil {
		sub := []string{"e.user_id = a.id"}
		if criteria.AvailableFrom != nil {
			sub = append(sub, fmt.Sprintf("e.event_date >= $%d", len(args)+1))
			args = append(args, *criteria.AvailableFrom)
		}
		if criteria.AvailableTo != nil {
			sub = append(sub, fmt.Sprintf("e.event_date <= $%d", len(args)+1))
			args = append(args, *criteria.AvailableTo)
		}
		clauses = append(clauses, fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM events e WHERE %s)", utils.JoinWithAnd(sub)))
	}

	return utils.JoinWithAnd(clauses), args
}

// Search runs the dynamic filtered query; all filters are ANDed.
func (r *postgresRepository) Search(ctx context.Context, criteria model.SearchCriteria) ([]model.ArtistListItem, int64, error) {
	where, args := buildSearchWhere(criteria)
	argPos := len(args) + 1

	query := fmt.Sprintf(`
        SELECT a.id, a.display_name, a.biography, a.website_url, a.mixcloud_url, a.created_at, a.updated_at,
               (SELECT COUNT(*) FROM events e WHERE e.user_id = a.id AND e.event_date >= CURRENT_DATE) AS upcoming_events_count
        FROM artists a
        WHERE %s
        ORDER BY a.created_at DESC
        LIMIT $%d OFFSET $%d
    `, where, argPos, argPos+1)

	queryArgs := append(append([]interface{}{}, args...), criteria.Limit, criteria.Offset())

	rows, err := r.pool.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search artists: %w", err)
	}
	defer rows.Close()

	var items []model.ArtistListItem
	for rows.Next() {
		var item model.ArtistListItem
		if err := rows.Scan(
			&item.ID,
			&item.DisplayName,
			&item.Biography,
			&item.WebsiteURL,
			&item.MixcloudURL,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.UpcomingEventsCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan artist row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating artists: %w", err)
	}

	if err := r.attachStyles(ctx, items); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM artists a WHERE %s`, where)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}

	return items, total, nil
}

// attachStyles loads the style sets for a page of results in one query.
func (r *postgresRepository) attachStyles(ctx context.Context, items []model.ArtistListItem) error {
	if len(items) == 0 {
		return nil
	}

	idStrs := make([]string, len(items))
	index := make(map[uuid.UUID]int, len(items))
	for i := range items {
		idStrs[i] = items[i].ID.String()
		index[items[i].ID] = i
	}

	query := `
        SELECT ast.artist_id, s.id, s.name
        FROM artist_styles ast
        JOIN music_styles s ON s.id = ast.style_id
        WHERE ast.artist_id = ANY($1::uuid[])
        ORDER BY s.name ASC
    `

	rows, err := r.pool.Query(ctx, query, pq.Array(idStrs))
	if err != nil {
		return fmt.Errorf("failed to query result styles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var artistID uuid.UUID
		var ref model.StyleRef
		if err := rows.Scan(&artistID, &ref.ID, &ref.Name); err != nil {
			return fmt.Errorf("failed to scan result style: %w", err)
		}
		if i, ok := index[artistID]; ok {
			items[i].Styles = append(items[i].Styles, ref)
		}
	}

	return rows.Err()
}

func (r *postgresRepository) invalidateArtistCache(ctx context.Context, id uuid.UUID) {
	r.cache.Delete(ctx, artistCacheKeyPrefix+id.String())
}

// Style associations feed the cached usage counts, so mutations drop
// that cache too.
func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	r.cache.Delete(ctx, stylesListCacheKey)
}
