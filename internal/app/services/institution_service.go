package services

import (
	"context"

	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/app/models/dto"
)

// institutionLister lists the public institution directory
type institutionLister interface {
	GetAll(ctx context.Context) ([]models.Institution, error)
}

// InstitutionService serves the public institution directory
type InstitutionService struct {
	institutions institutionLister
}

// NewInstitutionService creates a new InstitutionService
func NewInstitutionService(institutions institutionLister) *InstitutionService {
	return &InstitutionService{institutions: institutions}
}

// List returns all institutions ordered by name
func (s *InstitutionService) List(ctx context.Context) ([]dto.InstitutionResponse, error) {
	institutions, err := s.institutions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewInstitutionResponses(institutions), nil
}
