package dto

import (
	"time"

	"github.com/studenthub/backend/internal/app/models"
)

// GeneratePortfolioRequest creates or refreshes a student's portfolio
type GeneratePortfolioRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// UpdatePortfolioRequest updates the descriptive fields of a portfolio
type UpdatePortfolioRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

// PortfolioResponse represents a portfolio with its derived total points
type PortfolioResponse struct {
	ID          int64  `json:"id"`
	StudentID   int64  `json:"studentId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
	TotalPoints int    `json:"totalPoints"`
	GeneratedAt string `json:"generatedAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// NewPortfolioResponse builds a PortfolioResponse from a model; nil in, nil out
func NewPortfolioResponse(p *models.Portfolio) *PortfolioResponse {
	if p == nil {
		return nil
	}
	return &PortfolioResponse{
		ID:          p.ID,
		StudentID:   p.StudentID,
		Title:       p.Title,
		Description: p.Description,
		IsPublic:    p.IsPublic,
		TotalPoints: p.TotalPoints,
		GeneratedAt: p.GeneratedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
