package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"djbooking-backend/internal/domains/event"
	"djbooking-backend/internal/domains/event/model"
	"djbooking-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	query := `
        INSERT INTO events (user_id, name, country, city, venue_name, event_date, event_time)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, user_id, name, country, city, venue_name, event_date, event_time, created_at, updated_at
    `

	var created model.Event
	err := r.pool.QueryRow(
		ctx,
		query,
		e.UserID,
		e.Name,
		e.Country,
		e.City,
		e.VenueName,
		e.EventDate,
		e.EventTime,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Name,
		&created.Country,
		&created.City,
		&created.VenueName,
		&created.EventDate,
		&created.EventTime,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &created, nil
}

// Update never touches user_id; ownership is immutable after creation.
func (r *postgresRepository) Update(ctx context.Context, e *model.Event) (*model.Event, error) {
	query := `
        UPDATE events
        SET name = $1,
            country = $2,
            city = $3,
            venue_name = $4,
            event_date = $5,
            event_time = $6,
            updated_at = NOW()
        WHERE id = $7
        RETURNING id, user_id, name, country, city, venue_name, event_date, event_time, created_at, updated_at
    `

	var updated model.Event
	err := r.pool.QueryRow(
		ctx,
		query,
		e.Name,
		e.Country,
		e.City,
		e.VenueName,
		e.EventDate,
		e.EventTime,
		e.ID,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Name,
		&updated.Country,
		&updated.City,
		&updated.VenueName,
		&updated.EventDate,
		&updated.EventTime,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := `
        SELECT id, user_id, name, country, city, venue_name, event_date, event_time, created_at, updated_at
        FROM events
        WHERE id = $1
    `

	var e model.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.UserID,
		&e.Name,
		&e.Country,
		&e.City,
		&e.VenueName,
		&e.EventDate,
		&e.EventTime,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}

	return &e, nil
}

func (r *postgresRepository) GetWithOwner(ctx context.Context, id uuid.UUID) (*model.EventDetail, error) {
	query := `
        SELECT e.id, e.user_id, e.name, e.country, e.city, e.venue_name, e.event_date, e.event_time,
               e.created_at, e.updated_at, a.id, a.display_name
        FROM events e
        JOIN artists a ON a.id = e.user_id
        WHERE e.id = $1
    `

	var d model.EventDetail
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.Country,
		&d.City,
		&d.VenueName,
		&d.EventDate,
		&d.EventTime,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.Artist.ID,
		&d.Artist.DisplayName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event with owner: %w", err)
	}

	return &d, nil
}

// buildListWhere composes the AND-joined filter clauses with their
// positional args. The date range is inclusive on both sides.
func buildListWhere(criteria model.ListCriteria) (string, []interface{}) {
	clauses := []string{"1=1"}
	args := []interface{}{}

	if criteria.UserID != nil {
		clauses = append(clauses, fmt.Sprintf("user_id = $%d", len(args)+1))
		args = append(args, *criteria.UserID)
	}

	if criteria.Country != "" {
		clauses = append(clauses, fmt.Sprintf("country ILIKE $%d", len(args)+1))
		args = append(args, "%"+utils.EscapeLike(criteria.Country)+"%")
	}

	if criteria.City != "" {
		clauses = append(clauses, fmt.Sprintf("city ILIKE $%d", len(args)+1))
		args = append(args, "%"+utils.EscapeLike(criteria.City)+"%")
	}

	if criteria.Venue != "" {
		clauses = append(clauses, fmt.Sprintf("venue_name ILIKE $%d", len(args)+1))
		args = append(args, "%"+utils.EscapeLike(criteria.Venue)+"%")
	}

	if criteria.DateFrom != nil {
		clauses = append(clauses, fmt.Sprintf("event_date >= $%d", len(args)+1))
		args = append(args, *criteria.DateFrom)
	}

	if criteria.DateTo != nil {
		clauses = append(clauses, fmt.Sprintf("event_date <= $%d", len(args)+1))
		args = append(args, *criteria.DateTo)
	}

	if criteria.UpcomingOnly {
		clauses = append(clauses, "event_date >= CURRENT_DATE")
	}

	return utils.JoinWithAnd(clauses), args
}

// List runs the dynamic filtered query; default ordering is event date
// descending, then creation time descending.
func (r *postgresRepository) List(ctx context.Context, criteria model.ListCriteria) ([]model.Event, int64, error) {
	where, args := buildListWhere(criteria)
	argPos := len(args) + 1

	query := fmt.Sprintf(`
        SELECT id, user_id, name, country, city, venue_name, event_date, event_time, created_at, updated_at
        FROM events
        WHERE %s
        ORDER BY event_date DESC, created_at DESC
        LIMIT $%d OFFSET $%d
    `, where, argPos, argPos+1)

	queryArgs := append(append([]interface{}{}, args...), criteria.Limit, criteria.Offset())

	rows, err := r.pool.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Name,
			&e.Country,
			&e.City,
			&e.VenueName,
			&e.EventDate,
			&e.EventTime,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating events: %w", err)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events WHERE %s`, where)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	return events, total, nil
}
