package dto

import "github.com/studenthub/backend/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents a refresh token rotation request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest carries the refresh token to revoke on sign-out
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RegisterRequest represents a user registration request.
// StudentID is required iff role is student; it is rejected for other roles.
type RegisterRequest struct {
	Email         string      `json:"email" binding:"required,email"`
	Password      string      `json:"password" binding:"required,min=6"`
	FullName      string      `json:"fullName" binding:"required"`
	Role          models.Role `json:"role" binding:"required"`
	InstitutionID *int64      `json:"institutionId,omitempty"`
	StudentID     *string     `json:"studentId,omitempty"`
	Department    *string     `json:"department,omitempty"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID                 int64   `json:"id"`
	Email              string  `json:"email"`
	FullName           string  `json:"fullName"`
	Role               string  `json:"role"`
	InstitutionID      *int64  `json:"institutionId,omitempty"`
	StudentID          *string `json:"studentId,omitempty"`
	Department         *string `json:"department,omitempty"`
	VerificationStatus string  `json:"verificationStatus"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// NewUserResponse builds a UserResponse from a user model
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		Email:              user.Email,
		FullName:           user.FullName,
		Role:               string(user.Role),
		InstitutionID:      user.InstitutionID,
		StudentID:          user.StudentID,
		Department:         user.Department,
		VerificationStatus: string(user.VerificationStatus),
	}
}
