package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/pkg/apperrors"
	"github.com/studenthub/backend/internal/pkg/dberrors"
)

// InstitutionRepository handles institution database operations
type InstitutionRepository struct {
	db *pgxpool.Pool
}

// NewInstitutionRepository creates a new InstitutionRepository
func NewInstitutionRepository(db *pgxpool.Pool) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

// GetAll returns all institutions ordered by name for the signup directory
func (r *InstitutionRepository) GetAll(ctx context.Context) ([]models.Institution, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, code, address, contact_email, created_at
		FROM institutions
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying institutions: %w", err)
	}
	defer rows.Close()

	var institutions []models.Institution
	for rows.Next() {
		var inst models.Institution
		if err := rows.Scan(&inst.ID, &inst.Name, &inst.Code, &inst.Address, &inst.ContactEmail, &inst.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning institution: %w", err)
		}
		institutions = append(institutions, inst)
	}
	return institutions, rows.Err()
}

// GetByID retrieves an institution by its ID
func (r *InstitutionRepository) GetByID(ctx context.Context, id int64) (*models.Institution, error) {
	inst := &models.Institution{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, code, address, contact_email, created_at
		FROM institutions
		WHERE id = $1`, id).
		Scan(&inst.ID, &inst.Name, &inst.Code, &inst.Address, &inst.ContactEmail, &inst.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("error retrieving institution: %w", err)
	}
	return inst, nil
}

// Create inserts a new institution
func (r *InstitutionRepository) Create(ctx context.Context, inst *models.Institution) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO institutions (name, code, address, contact_email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		inst.Name, inst.Code, inst.Address, inst.ContactEmail).
		Scan(&inst.ID, &inst.CreatedAt)
	if err != nil {
		// The code column carries the only unique constraint on this table.
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating institution: %w", err)
	}
	return nil
}

// CodeExists reports whether an institution with the given code exists
func (r *InstitutionRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM institutions WHERE code = $1)", code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking institution code: %w", err)
	}
	return exists, nil
}

// Count returns the total number of institutions
func (r *InstitutionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM institutions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting institutions: %w", err)
	}
	return count, nil
}
