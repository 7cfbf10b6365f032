package dto

import (
	"time"

	"github.com/studenthub/backend/internal/app/models"
)

// CreateEventRequest represents a faculty member creating an event
type CreateEventRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	Category        string    `json:"category" binding:"required"`
	StartDate       time.Time `json:"startDate" binding:"required"`
	EndDate         time.Time `json:"endDate" binding:"required"`
	Location        string    `json:"location"`
	MaxParticipants *int      `json:"maxParticipants,omitempty"`
}

// UpdateEventRequest represents an event update, including status transitions
type UpdateEventRequest struct {
	Title           *string             `json:"title,omitempty"`
	Description     *string             `json:"description,omitempty"`
	Category        *string             `json:"category,omitempty"`
	StartDate       *time.Time          `json:"startDate,omitempty"`
	EndDate         *time.Time          `json:"endDate,omitempty"`
	Location        *string             `json:"location,omitempty"`
	MaxParticipants *int                `json:"maxParticipants,omitempty"`
	Status          *models.EventStatus `json:"status,omitempty"`
}

// EventResponse represents an event
type EventResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Location        string `json:"location"`
	CreatedBy       int64  `json:"createdBy"`
	InstitutionID   int64  `json:"institutionId"`
	MaxParticipants *int   `json:"maxParticipants,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// ParticipationResponse represents a student's event registration
type ParticipationResponse struct {
	ID        int64  `json:"id"`
	EventID   int64  `json:"eventId"`
	StudentID int64  `json:"studentId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// NewEventResponse builds an EventResponse from a model
func NewEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Category:        e.Category,
		StartDate:       e.StartDate.Format(time.RFC3339),
		EndDate:         e.EndDate.Format(time.RFC3339),
		Location:        e.Location,
		CreatedBy:       e.CreatedBy,
		InstitutionID:   e.InstitutionID,
		MaxParticipants: e.MaxParticipants,
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

// NewEventResponses maps a slice of models, always non-nil
func NewEventResponses(events []models.Event) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, NewEventResponse(&events[i]))
	}
	return responses
}

// NewParticipationResponse builds a ParticipationResponse from a model
func NewParticipationResponse(p *models.EventParticipation) ParticipationResponse {
	return ParticipationResponse{
		ID:        p.ID,
		EventID:   p.EventID,
		StudentID: p.StudentID,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
