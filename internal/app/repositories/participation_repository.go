package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/pkg/apperrors"
	"github.com/studenthub/backend/internal/pkg/dberrors"
)

// ParticipationRepository handles event participation database operations
type ParticipationRepository struct {
	db *pgxpool.Pool
}

// NewParticipationRepository creates a new ParticipationRepository
func NewParticipationRepository(db *pgxpool.Pool) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

// Create registers a student for an event. The (event_id, student_id) unique
// constraint backs the one-registration-per-student invariant.
func (r *ParticipationRepository) Create(ctx context.Context, p *models.EventParticipation) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO event_participations (event_id, student_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		p.EventID, p.StudentID, p.Status).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "event_participations_event_id_student_id_key") {
			return apperrors.ErrAlreadyRegistered
		}
		return fmt.Errorf("error creating participation: %w", err)
	}
	return nil
}

// CountByEvent returns the number of registrations for an event
func (r *ParticipationRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM event_participations WHERE event_id = $1`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting participations: %w", err)
	}
	return count, nil
}

// Exists reports whether a student is already registered for an event
func (r *ParticipationRepository) Exists(ctx context.Context, eventID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM event_participations WHERE event_id = $1 AND student_id = $2)`,
		eventID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking participation: %w", err)
	}
	return exists, nil
}
