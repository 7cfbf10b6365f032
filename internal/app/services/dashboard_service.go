package services

import (
	"context"
	"time"

	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/app/stats"
)

// DashboardKind names the dashboard variant a user sees
type DashboardKind string

const (
	DashboardStudent DashboardKind = "student"
	DashboardFaculty DashboardKind = "faculty"
	DashboardAdmin   DashboardKind = "admin"
)

// DashboardKindFor maps a role to its dashboard. The mapping is total: any
// role the server does not recognize falls back to the student dashboard
// rather than failing.
func DashboardKindFor(role models.Role) DashboardKind {
	switch role {
	case models.RoleFaculty:
		return DashboardFaculty
	case models.RoleAdmin:
		return DashboardAdmin
	default:
		return DashboardStudent
	}
}

const recentAchievementsLimit = 5
const upcomingEventsLimit = 5

// dashboardUserStore is the slice of UserRepository dashboards need
type dashboardUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetVerifiedStudents(ctx context.Context, institutionID int64) ([]models.User, error)
	CountByRole(ctx context.Context, role models.Role) (int, error)
}

// dashboardAchievementStore is the slice of AchievementRepository dashboards need
type dashboardAchievementStore interface {
	GetByStudent(ctx context.Context, studentID int64) ([]models.Achievement, error)
	GetPendingWithStudents(ctx context.Context) ([]models.Achievement, error)
	GetAll(ctx context.Context) ([]models.Achievement, error)
	CountVerifiedBy(ctx context.Context, verifierID int64) (int, error)
}

// dashboardEventStore is the slice of EventRepository dashboards need
type dashboardEventStore interface {
	GetUpcomingForInstitution(ctx context.Context, institutionID int64, now time.Time, limit int) ([]models.Event, error)
	GetByCreator(ctx context.Context, creatorID int64) ([]models.Event, error)
	Count(ctx context.Context) (int, error)
}

// portfolioReader reads the optional per-student portfolio
type portfolioReader interface {
	GetByStudent(ctx context.Context, studentID int64) (*models.Portfolio, error)
}

// DashboardService assembles the role-specific dashboard payloads
type DashboardService struct {
	users        dashboardUserStore
	achievements dashboardAchievementStore
	events       dashboardEventStore
	portfolios   portfolioReader
	now          func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(users dashboardUserStore, achievements dashboardAchievementStore, events dashboardEventStore, portfolios portfolioReader) *DashboardService {
	return &DashboardService{
		users:        users,
		achievements: achievements,
		events:       events,
		portfolios:   portfolios,
		now:          time.Now,
	}
}

// Build returns the dashboard payload for the given user. The user row is
// re-fetched so the dashboard reflects the current role, not the one baked
// into a possibly stale token.
func (s *DashboardService) Build(ctx context.Context, userID int64) (DashboardKind, interface{}, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	kind := DashboardKindFor(user.Role)
	var payload interface{}
	switch kind {
	case DashboardFaculty:
		payload, err = s.buildFaculty(ctx, user)
	case DashboardAdmin:
		payload, err = s.buildAdmin(ctx)
	default:
		payload, err = s.buildStudent(ctx, user)
	}
	if err != nil {
		return "", nil, err
	}
	return kind, payload, nil
}

func (s *DashboardService) buildStudent(ctx context.Context, user *models.User) (*dto.StudentDashboardResponse, error) {
	achievements, err := s.achievements.GetByStudent(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if user.InstitutionID != nil {
		events, err = s.events.GetUpcomingForInstitution(ctx, *user.InstitutionID, s.now(), upcomingEventsLimit)
		if err != nil {
			return nil, err
		}
	}

	portfolio, err := s.portfolios.GetByStudent(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	pa := make([]*models.Achievement, len(achievements))
	for i := range achievements {
		pa[i] = &achievements[i]
	}

	recent := achievements
	if len(recent) > recentAchievementsLimit {
		recent = recent[:recentAchievementsLimit]
	}

	return &dto.StudentDashboardResponse{
		Stats: dto.StudentStats{
			TotalAchievements:    len(achievements),
			VerifiedAchievements: stats.VerifiedCount(pa),
			TotalPoints:          stats.TotalPoints(pa),
			UpcomingEvents:       len(events),
		},
		RecentAchievements: dto.NewAchievementResponses(recent),
		UpcomingEvents:     dto.NewEventResponses(events),
		Portfolio:          dto.NewPortfolioResponse(portfolio),
	}, nil
}

func (s *DashboardService) buildFaculty(ctx context.Context, user *models.User) (*dto.FacultyDashboardResponse, error) {
	pending, err := s.achievements.GetPendingWithStudents(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.events.GetByCreator(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var students []models.User
	if user.InstitutionID != nil {
		students, err = s.users.GetVerifiedStudents(ctx, *user.InstitutionID)
		if err != nil {
			return nil, err
		}
	}

	verificationsDone, err := s.achievements.CountVerifiedBy(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	studentResponses := make([]dto.UserResponse, 0, len(students))
	for i := range students {
		studentResponses = append(studentResponses, dto.NewUserResponse(&students[i]))
	}

	return &dto.FacultyDashboardResponse{
		Stats: dto.FacultyStats{
			PendingVerifications: len(pending),
			MyEvents:             len(events),
			ActiveStudents:       len(students),
			VerificationsDone:    verificationsDone,
		},
		PendingAchievements: dto.NewAchievementResponses(pending),
		MyEvents:            dto.NewEventResponses(events),
		Students:            studentResponses,
	}, nil
}

func (s *DashboardService) buildAdmin(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	totalStudents, err := s.users.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	totalFaculty, err := s.users.CountByRole(ctx, models.RoleFaculty)
	if err != nil {
		return nil, err
	}

	achievements, err := s.achievements.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	totalEvents, err := s.events.Count(ctx)
	if err != nil {
		return nil, err
	}

	pa := make([]*models.Achievement, len(achievements))
	for i := range achievements {
		pa[i] = &achievements[i]
	}

	return &dto.AdminDashboardResponse{
		Stats: dto.AdminStats{
			TotalStudents:        totalStudents,
			TotalFaculty:         totalFaculty,
			TotalAchievements:    len(achievements),
			TotalEvents:          totalEvents,
			PendingVerifications: stats.PendingCount(pa),
		},
		CategoryBreakdown:  stats.CategoryHistogram(pa),
		StatusDistribution: stats.StatusDistribution(pa),
	}, nil
}
