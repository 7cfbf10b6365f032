package services

import (
	"context"
	"fmt"

	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/pkg/apperrors"
	"github.com/studenthub/backend/internal/pkg/helpers"
	"github.com/studenthub/backend/internal/pkg/logger"
)

// achievementStore is the slice of AchievementRepository the service needs
type achievementStore interface {
	Create(ctx context.Context, a *models.Achievement) error
	GetByID(ctx context.Context, id int64) (*models.Achievement, error)
	GetByStudent(ctx context.Context, studentID int64) ([]models.Achievement, error)
	GetPendingWithStudents(ctx context.Context) ([]models.Achievement, error)
	GetPage(ctx context.Context, offset uint64, limit int) ([]models.Achievement, error)
	Count(ctx context.Context) (int64, error)
	Decide(ctx context.Context, id int64, decision models.VerificationStatus, verifierID int64) error
}

// userReader resolves a caller into a user row for role checks
type userReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AchievementService handles achievement logging and verification
type AchievementService struct {
	achievements achievementStore
	users        userReader
}

// NewAchievementService creates a new AchievementService
func NewAchievementService(achievements achievementStore, users userReader) *AchievementService {
	return &AchievementService{achievements: achievements, users: users}
}

// Create logs a new achievement for the calling student. The achievement
// always starts pending regardless of request contents.
func (s *AchievementService) Create(ctx context.Context, studentID int64, req *dto.CreateAchievementRequest) (*dto.AchievementResponse, error) {
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown category %q", req.Category))
	}
	if req.Points < 0 {
		return nil, apperrors.NewValidationError("points cannot be negative")
	}

	achievement := &models.Achievement{
		StudentID:    studentID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		DateAchieved: req.DateAchieved,
		Points:       req.Points,
		EvidenceURL:  req.EvidenceURL,
	}
	if err := s.achievements.Create(ctx, achievement); err != nil {
		return nil, err
	}

	resp := dto.NewAchievementResponse(achievement)
	return &resp, nil
}

// ListForStudent returns the student's own achievements, newest first
func (s *AchievementService) ListForStudent(ctx context.Context, studentID int64) ([]dto.AchievementResponse, error) {
	achievements, err := s.achievements.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.NewAchievementResponses(achievements), nil
}

// ListPending returns the verification queue with student display info
func (s *AchievementService) ListPending(ctx context.Context) ([]dto.AchievementResponse, error) {
	achievements, err := s.achievements.GetPendingWithStudents(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewAchievementResponses(achievements), nil
}

// ListAll returns a page of all achievements, newest first. This backs the
// admin view and the faculty ?status=all view.
func (s *AchievementService) ListAll(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	achievements, err := s.achievements.GetPage(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.achievements.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      dto.NewAchievementResponses(achievements),
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Verify applies a faculty member's decision to a pending achievement.
// Verified and rejected are terminal; deciding an already-decided achievement
// returns ErrAlreadyDecided and leaves the row untouched. The permission and
// state checks run before any mutation is issued, and the UPDATE itself
// re-checks the pending state so concurrent decisions cannot race.
func (s *AchievementService) Verify(ctx context.Context, achievementID int64, decision models.VerificationStatus, actorID int64) (*dto.AchievementResponse, error) {
	if !decision.IsDecision() {
		return nil, apperrors.ErrInvalidDecision
	}

	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsFaculty() {
		return nil, apperrors.ErrPermissionDenied
	}

	achievement, err := s.achievements.GetByID(ctx, achievementID)
	if err != nil {
		return nil, err
	}
	if achievement.VerificationStatus != models.VerificationPending {
		return nil, apperrors.ErrAlreadyDecided
	}

	if err := s.achievements.Decide(ctx, achievementID, decision, actorID); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("achievementID", achievementID).
		Int64("verifierID", actorID).
		Str("decision", string(decision)).
		Msg("Achievement decision applied")

	achievement.VerificationStatus = decision
	achievement.VerifiedBy = &actorID
	resp := dto.NewAchievementResponse(achievement)
	return &resp, nil
}
