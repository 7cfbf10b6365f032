package models

import "time"

// Portfolio defines the portfolio model based on the 'portfolios' table.
// At most one portfolio exists per student; TotalPoints is derived from the
// owner's verified achievements and recomputed on generation.
type Portfolio struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	IsPublic    bool      `json:"isPublic" db:"is_public"`
	TotalPoints int       `json:"totalPoints" db:"total_points"`
	GeneratedAt time.Time `json:"generatedAt" db:"generated_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
