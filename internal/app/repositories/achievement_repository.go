package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/pkg/apperrors"
)

const achievementColumns = "id, student_id, title, description, category, date_achieved, verification_status, verified_by, points, evidence_url, created_at"

// AchievementRepository handles achievement database operations
type AchievementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAchievement(row pgx.Row) (*models.Achievement, error) {
	a := &models.Achievement{}
	err := row.Scan(
		&a.ID, &a.StudentID, &a.Title, &a.Description, &a.Category,
		&a.DateAchieved, &a.VerificationStatus, &a.VerifiedBy, &a.Points,
		&a.EvidenceURL, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new achievement and sets its ID; the initial status is
// always pending regardless of what the caller put on the model.
func (r *AchievementRepository) Create(ctx context.Context, a *models.Achievement) error {
	a.VerificationStatus = models.VerificationPending
	err := r.db.QueryRow(ctx, `
		INSERT INTO achievements (student_id, title, description, category, date_achieved, verification_status, points, evidence_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		a.StudentID, a.Title, a.Description, a.Category, a.DateAchieved,
		a.VerificationStatus, a.Points, a.EvidenceURL).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating achievement: %w", err)
	}
	return nil
}

// GetByID retrieves an achievement by ID
func (r *AchievementRepository) GetByID(ctx context.Context, id int64) (*models.Achievement, error) {
	a, err := scanAchievement(r.db.QueryRow(ctx, `
		SELECT `+achievementColumns+`
		FROM achievements
		WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAchievementNotFound
		}
		return nil, fmt.Errorf("error retrieving achievement: %w", err)
	}
	return a, nil
}

// GetByStudent lists a student's achievements, newest first
func (r *AchievementRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Achievement, error) {
	sql, args, err := r.sb.Select(achievementColumns).
		From("achievements").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build achievements query: %w", err)
	}
	return r.queryAchievements(ctx, sql, args)
}

// GetPendingWithStudents lists pending achievements joined with the owning
// student's display name and student number, newest first. This backs the
// faculty verification queue.
func (r *AchievementRepository) GetPendingWithStudents(ctx context.Context) ([]models.Achievement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.title, a.description, a.category, a.date_achieved,
		       a.verification_status, a.verified_by, a.points, a.evidence_url, a.created_at,
		       u.full_name, u.student_id
		FROM achievements a
		JOIN users u ON u.id = a.student_id
		WHERE a.verification_status = $1
		ORDER BY a.created_at DESC`,
		models.VerificationPending)
	if err != nil {
		return nil, fmt.Errorf("error querying pending achievements: %w", err)
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		student := &models.User{}
		err := rows.Scan(
			&a.ID, &a.StudentID, &a.Title, &a.Description, &a.Category,
			&a.DateAchieved, &a.VerificationStatus, &a.VerifiedBy, &a.Points,
			&a.EvidenceURL, &a.CreatedAt,
			&student.FullName, &student.StudentID)
		if err != nil {
			return nil, fmt.Errorf("error scanning pending achievement row: %w", err)
		}
		student.ID = a.StudentID
		a.Student = student
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// GetAll lists every achievement; this backs the admin analytics view
func (r *AchievementRepository) GetAll(ctx context.Context) ([]models.Achievement, error) {
	sql, args, err := r.sb.Select(achievementColumns).
		From("achievements").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build achievements query: %w", err)
	}
	return r.queryAchievements(ctx, sql, args)
}

// GetPage lists achievements newest first with an offset and limit
func (r *AchievementRepository) GetPage(ctx context.Context, offset uint64, limit int) ([]models.Achievement, error) {
	sql, args, err := r.sb.Select(achievementColumns).
		From("achievements").
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build achievements page query: %w", err)
	}
	return r.queryAchievements(ctx, sql, args)
}

// Count returns the total number of achievements
func (r *AchievementRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM achievements`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting achievements: %w", err)
	}
	return count, nil
}

// Decide applies a verification decision to a pending achievement.
// The WHERE clause re-checks the pending state so a concurrent decision
// cannot be overwritten; zero affected rows means the achievement was
// already decided (or does not exist).
func (r *AchievementRepository) Decide(ctx context.Context, id int64, decision models.VerificationStatus, verifierID int64) error {
	sql, args, err := r.sb.Update("achievements").
		Set("verification_status", decision).
		Set("verified_by", verifierID).
		Where(squirrel.Eq{
			"id":                  id,
			"verification_status": models.VerificationPending,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build decide query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error applying verification decision: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrAlreadyDecided
	}
	return nil
}

// SumVerifiedPoints returns the sum of points over a student's verified
// achievements; used when (re)generating a portfolio.
func (r *AchievementRepository) SumVerifiedPoints(ctx context.Context, studentID int64) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(points), 0)
		FROM achievements
		WHERE student_id = $1 AND verification_status = $2`,
		studentID, models.VerificationVerified).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing verified points: %w", err)
	}
	return total, nil
}

// CountVerifiedBy returns how many decisions the given verifier has made
func (r *AchievementRepository) CountVerifiedBy(ctx context.Context, verifierID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM achievements WHERE verified_by = $1`, verifierID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting verifications: %w", err)
	}
	return count, nil
}

func (r *AchievementRepository) queryAchievements(ctx context.Context, sql string, args []interface{}) ([]models.Achievement, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying achievements: %w", err)
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning achievement row: %w", err)
		}
		achievements = append(achievements, *a)
	}
	return achievements, rows.Err()
}
