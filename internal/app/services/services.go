// Package services contains the business logic between HTTP controllers and
// repositories. Services accept narrow store interfaces so tests can drive
// them with in-memory fakes.
package services

import (
	"github.com/studenthub/backend/internal/app/repositories"
	"github.com/studenthub/backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService        *AuthService
	AchievementService *AchievementService
	EventService       *EventService
	PortfolioService   *PortfolioService
	DashboardService   *DashboardService
	InstitutionService *InstitutionService
}

// NewServices initializes all services over the given repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.TokenRepository,
			repos.InstitutionRepository,
			jwtService,
		),
		AchievementService: NewAchievementService(
			repos.AchievementRepository,
			repos.UserRepository,
		),
		EventService: NewEventService(
			repos.EventRepository,
			repos.ParticipationRepository,
			repos.UserRepository,
		),
		PortfolioService: NewPortfolioService(
			repos.PortfolioRepository,
			repos.AchievementRepository,
		),
		DashboardService: NewDashboardService(
			repos.UserRepository,
			repos.AchievementRepository,
			repos.EventRepository,
			repos.PortfolioRepository,
		),
		InstitutionService: NewInstitutionService(
			repos.InstitutionRepository,
		),
	}
}
