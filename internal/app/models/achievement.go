package models

import "time"

// Achievement defines the achievement model based on the 'achievements' table.
// VerifiedBy is set iff the status has left pending; the verification workflow
// is the only writer of status and VerifiedBy.
type Achievement struct {
	ID                 int64               `json:"id" db:"id"`
	StudentID          int64               `json:"studentId" db:"student_id"` // Owning student user ID
	Title              string              `json:"title" db:"title"`
	Description        string              `json:"description" db:"description"`
	Category           AchievementCategory `json:"category" db:"category"`
	DateAchieved       time.Time           `json:"dateAchieved" db:"date_achieved"`
	VerificationStatus VerificationStatus  `json:"verificationStatus" db:"verification_status"`
	VerifiedBy         *int64              `json:"verifiedBy,omitempty" db:"verified_by"` // Verifier user ID, nil while pending
	Points             int                 `json:"points" db:"points"`
	EvidenceURL        *string             `json:"evidenceUrl,omitempty" db:"evidence_url"`
	CreatedAt          time.Time           `json:"createdAt" db:"created_at"`

	Student *User `json:"student,omitempty"` // Relation, no db tag
}
