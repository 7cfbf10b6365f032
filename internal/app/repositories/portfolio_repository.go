package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/pkg/apperrors"
)

// PortfolioRepository handles portfolio database operations
type PortfolioRepository struct {
	db *pgxpool.Pool
}

// NewPortfolioRepository creates a new PortfolioRepository
func NewPortfolioRepository(db *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// GetByStudent retrieves a student's portfolio. A missing portfolio is not an
// error; the result is nil, nil so callers can render an explicit empty state.
func (r *PortfolioRepository) GetByStudent(ctx context.Context, studentID int64) (*models.Portfolio, error) {
	p := &models.Portfolio{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, title, description, is_public, total_points, generated_at, updated_at
		FROM portfolios
		WHERE student_id = $1`, studentID).
		Scan(&p.ID, &p.StudentID, &p.Title, &p.Description, &p.IsPublic,
			&p.TotalPoints, &p.GeneratedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving portfolio: %w", err)
	}
	return p, nil
}

// Upsert creates a student's portfolio or refreshes it in place, keeping the
// one-portfolio-per-student invariant in a single statement.
func (r *PortfolioRepository) Upsert(ctx context.Context, p *models.Portfolio) error {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO portfolios (student_id, title, description, is_public, total_points, generated_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (student_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			is_public = EXCLUDED.is_public,
			total_points = EXCLUDED.total_points,
			generated_at = EXCLUDED.generated_at,
			updated_at = EXCLUDED.updated_at
		RETURNING id, generated_at, updated_at`,
		p.StudentID, p.Title, p.Description, p.IsPublic, p.TotalPoints, now).
		Scan(&p.ID, &p.GeneratedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting portfolio: %w", err)
	}
	return nil
}

// Update rewrites the descriptive fields of an existing portfolio
func (r *PortfolioRepository) Update(ctx context.Context, p *models.Portfolio) error {
	result, err := r.db.Exec(ctx, `
		UPDATE portfolios
		SET title = $1, description = $2, is_public = $3, updated_at = $4
		WHERE student_id = $5`,
		p.Title, p.Description, p.IsPublic, time.Now(), p.StudentID)
	if err != nil {
		return fmt.Errorf("error updating portfolio: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPortfolioNotFound
	}
	return nil
}
