package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/pkg/apperrors"
)

const eventColumns = "id, title, description, category, start_date, end_date, location, created_by, institution_id, max_participants, status, created_at"

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Category, &e.StartDate, &e.EndDate,
		&e.Location, &e.CreatedBy, &e.InstitutionID, &e.MaxParticipants,
		&e.Status, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new event and sets its ID
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (title, description, category, start_date, end_date, location, created_by, institution_id, max_participants, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		e.Title, e.Description, e.Category, e.StartDate, e.EndDate, e.Location,
		e.CreatedBy, e.InstitutionID, e.MaxParticipants, e.Status).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	return e, nil
}

// GetUpcomingForInstitution lists published events of an institution whose
// start date is at or after now, soonest first. This is the only event view
// students get.
func (r *EventRepository) GetUpcomingForInstitution(ctx context.Context, institutionID int64, now time.Time, limit int) ([]models.Event, error) {
	query := r.sb.Select(eventColumns).
		From("events").
		Where(squirrel.Eq{
			"institution_id": institutionID,
			"status":         models.EventPublished,
		}).
		Where(squirrel.GtOrEq{"start_date": now}).
		OrderBy("start_date ASC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upcoming events query: %w", err)
	}
	return r.queryEvents(ctx, sql, args)
}

// GetByCreator lists a faculty member's own events, most recent start first
func (r *EventRepository) GetByCreator(ctx context.Context, creatorID int64) ([]models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns).
		From("events").
		Where(squirrel.Eq{"created_by": creatorID}).
		OrderBy("start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build creator events query: %w", err)
	}
	return r.queryEvents(ctx, sql, args)
}

// Update rewrites the mutable fields of an event
func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	sql, args, err := r.sb.Update("events").
		Set("title", e.Title).
		Set("description", e.Description).
		Set("category", e.Category).
		Set("start_date", e.StartDate).
		Set("end_date", e.EndDate).
		Set("location", e.Location).
		Set("max_participants", e.MaxParticipants).
		Set("status", e.Status).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build event update: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Count returns the total number of events
func (r *EventRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, sql string, args []interface{}) ([]models.Event, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}
