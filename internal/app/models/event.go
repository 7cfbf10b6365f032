package models

import "time"

// Event defines the event model based on the 'events' table.
// Students only see events with status=published whose start date has not
// passed; CreatedBy always references a faculty user.
type Event struct {
	ID              int64       `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	Description     string      `json:"description" db:"description"`
	Category        string      `json:"category" db:"category"`
	StartDate       time.Time   `json:"startDate" db:"start_date"`
	EndDate         time.Time   `json:"endDate" db:"end_date"`
	Location        string      `json:"location" db:"location"`
	CreatedBy       int64       `json:"createdBy" db:"created_by"`
	InstitutionID   int64       `json:"institutionId" db:"institution_id"`
	MaxParticipants *int        `json:"maxParticipants,omitempty" db:"max_participants"`
	Status          EventStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}

// EventParticipation defines a student's registration for an event, one row
// per (event, student) pair.
type EventParticipation struct {
	ID                int64               `json:"id" db:"id"`
	EventID           int64               `json:"eventId" db:"event_id"`
	StudentID         int64               `json:"studentId" db:"student_id"`
	Status            ParticipationStatus `json:"status" db:"status"`
	AchievementPoints *int                `json:"achievementPoints,omitempty" db:"achievement_points"`
	VerifiedBy        *int64              `json:"verifiedBy,omitempty" db:"verified_by"`
	CreatedAt         time.Time           `json:"createdAt" db:"created_at"`
}
