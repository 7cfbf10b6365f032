package services

import (
	"context"

	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/pkg/apperrors"
)

// portfolioStore persists the single portfolio per student
type portfolioStore interface {
	GetByStudent(ctx context.Context, studentID int64) (*models.Portfolio, error)
	Upsert(ctx context.Context, p *models.Portfolio) error
	Update(ctx context.Context, p *models.Portfolio) error
}

// pointsSummer computes a student's verified achievement points
type pointsSummer interface {
	SumVerifiedPoints(ctx context.Context, studentID int64) (int, error)
}

// PortfolioService handles portfolio generation and updates
type PortfolioService struct {
	portfolios portfolioStore
	points     pointsSummer
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(portfolios portfolioStore, points pointsSummer) *PortfolioService {
	return &PortfolioService{portfolios: portfolios, points: points}
}

// Generate creates the student's portfolio or refreshes it in place.
// TotalPoints is derived from verified achievements at generation time, never
// taken from the request.
func (s *PortfolioService) Generate(ctx context.Context, studentID int64, req *dto.GeneratePortfolioRequest) (*dto.PortfolioResponse, error) {
	total, err := s.points.SumVerifiedPoints(ctx, studentID)
	if err != nil {
		return nil, err
	}

	portfolio := &models.Portfolio{
		StudentID:   studentID,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		TotalPoints: total,
	}
	if err := s.portfolios.Upsert(ctx, portfolio); err != nil {
		return nil, err
	}
	return dto.NewPortfolioResponse(portfolio), nil
}

// Get returns the student's portfolio, or nil when none has been generated.
// A missing portfolio is an empty state, not an error.
func (s *PortfolioService) Get(ctx context.Context, studentID int64) (*dto.PortfolioResponse, error) {
	portfolio, err := s.portfolios.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.NewPortfolioResponse(portfolio), nil
}

// Update changes the descriptive fields of an existing portfolio
func (s *PortfolioService) Update(ctx context.Context, studentID int64, req *dto.UpdatePortfolioRequest) (*dto.PortfolioResponse, error) {
	portfolio, err := s.portfolios.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, apperrors.ErrPortfolioNotFound
	}

	if req.Title != nil {
		portfolio.Title = *req.Title
	}
	if req.Description != nil {
		portfolio.Description = *req.Description
	}
	if req.IsPublic != nil {
		portfolio.IsPublic = *req.IsPublic
	}

	if err := s.portfolios.Update(ctx, portfolio); err != nil {
		return nil, err
	}
	return dto.NewPortfolioResponse(portfolio), nil
}
