package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	InstitutionRepository   *InstitutionRepository
	AchievementRepository   *AchievementRepository
	EventRepository         *EventRepository
	ParticipationRepository *ParticipationRepository
	PortfolioRepository     *PortfolioRepository
	TokenRepository         *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		InstitutionRepository:   NewInstitutionRepository(db),
		AchievementRepository:   NewAchievementRepository(db),
		EventRepository:         NewEventRepository(db),
		ParticipationRepository: NewParticipationRepository(db),
		PortfolioRepository:     NewPortfolioRepository(db),
		TokenRepository:         NewTokenRepository(db),
	}
}
