package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                 int64              `json:"id" db:"id" example:"1"`                                        // Unique identifier for the user
	Email              string             `json:"email" db:"email" example:"jane@university.edu"`                // User's email address
	Password           string             `json:"-" db:"password"`                                               // User's hashed password (excluded from JSON)
	FullName           string             `json:"fullName" db:"full_name" example:"Jane Doe"`                    // User's display name
	Role               Role               `json:"role" db:"role" example:"student"`                              // User's role (student, faculty or admin)
	InstitutionID      *int64             `json:"institutionId,omitempty" db:"institution_id" example:"1"`       // Institution the user belongs to (nullable)
	StudentID          *string            `json:"studentId,omitempty" db:"student_id" example:"20210001"`        // Student number, set only for role=student
	Department         *string            `json:"department,omitempty" db:"department" example:"Computer Eng."`  // Department name (nullable)
	VerificationStatus VerificationStatus `json:"verificationStatus" db:"verification_status" example:"pending"` // Account verification state
	CreatedAt          time.Time          `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`      // Timestamp when the user was created
	UpdatedAt          time.Time          `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`      // Timestamp when the user was last updated
}

// IsStudent reports whether the user holds the student role
func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// IsFaculty reports whether the user holds the faculty role
func (u *User) IsFaculty() bool { return u.Role == RoleFaculty }
