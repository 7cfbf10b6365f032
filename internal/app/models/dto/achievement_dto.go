package dto

import (
	"time"

	"github.com/studenthub/backend/internal/app/models"
)

// CreateAchievementRequest represents a student logging a new achievement
type CreateAchievementRequest struct {
	Title        string                     `json:"title" binding:"required"`
	Description  string                     `json:"description"`
	Category     models.AchievementCategory `json:"category" binding:"required"`
	DateAchieved time.Time                  `json:"dateAchieved" binding:"required"`
	Points       int                        `json:"points" binding:"min=0"`
	EvidenceURL  *string                    `json:"evidenceUrl,omitempty"`
}

// VerifyAchievementRequest carries a faculty verification decision
type VerifyAchievementRequest struct {
	Decision models.VerificationStatus `json:"decision" binding:"required"`
}

// AchievementResponse represents an achievement, optionally joined with the
// owning student's display info for the faculty pending queue
type AchievementResponse struct {
	ID                 int64   `json:"id"`
	StudentID          int64   `json:"studentId"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	DateAchieved       string  `json:"dateAchieved"`
	VerificationStatus string  `json:"verificationStatus"`
	VerifiedBy         *int64  `json:"verifiedBy,omitempty"`
	Points             int     `json:"points"`
	EvidenceURL        *string `json:"evidenceUrl,omitempty"`
	CreatedAt          string  `json:"createdAt"`

	StudentName   *string `json:"studentName,omitempty"`
	StudentNumber *string `json:"studentNumber,omitempty"`
}

// NewAchievementResponse builds an AchievementResponse from a model
func NewAchievementResponse(a *models.Achievement) AchievementResponse {
	resp := AchievementResponse{
		ID:                 a.ID,
		StudentID:          a.StudentID,
		Title:              a.Title,
		Description:        a.Description,
		Category:           string(a.Category),
		DateAchieved:       a.DateAchieved.Format(time.RFC3339),
		VerificationStatus: string(a.VerificationStatus),
		VerifiedBy:         a.VerifiedBy,
		Points:             a.Points,
		EvidenceURL:        a.EvidenceURL,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
	}
	if a.Student != nil {
		resp.StudentName = &a.Student.FullName
		resp.StudentNumber = a.Student.StudentID
	}
	return resp
}

// NewAchievementResponses maps a slice of models, always returning a non-nil
// slice so empty results serialize as [] rather than null
func NewAchievementResponses(achievements []models.Achievement) []AchievementResponse {
	responses := make([]AchievementResponse, 0, len(achievements))
	for i := range achievements {
		responses = append(responses, NewAchievementResponse(&achievements[i]))
	}
	return responses
}
