package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/pkg/apperrors"
	"github.com/studenthub/backend/internal/pkg/auth"
	"github.com/studenthub/backend/internal/pkg/logger"
)

// userStore is the slice of UserRepository the auth service needs
type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	StudentIDExists(ctx context.Context, studentID string) (bool, error)
}

// tokenStore persists refresh tokens
type tokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// institutionStore resolves institution references during registration
type institutionStore interface {
	GetByID(ctx context.Context, id int64) (*models.Institution, error)
}

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	users        userStore
	tokens       tokenStore
	institutions institutionStore
	jwtService   *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users userStore, tokens tokenStore, institutions institutionStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:        users,
		tokens:       tokens,
		institutions: institutions,
		jwtService:   jwtService,
	}
}

// Register creates a new user account. The account starts unverified and no
// tokens are issued; the caller must log in afterwards.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, apperrors.NewValidationError("email cannot be empty")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.NewValidationError("password must be at least 6 characters")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, apperrors.NewValidationError("full name cannot be empty")
	}

	switch req.Role {
	case models.RoleStudent, models.RoleFaculty, models.RoleAdmin:
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role %q", req.Role))
	}

	// Student ID is required for students and rejected for everyone else
	if req.Role == models.RoleStudent {
		if req.StudentID == nil || strings.TrimSpace(*req.StudentID) == "" {
			return nil, apperrors.NewValidationError("student ID is required for student accounts")
		}
		exists, err := s.users.StudentIDExists(ctx, *req.StudentID)
		if err != nil {
			return nil, fmt.Errorf("error checking student ID: %w", err)
		}
		if exists {
			return nil, apperrors.ErrStudentIDExists
		}
	} else if req.StudentID != nil {
		return nil, apperrors.NewValidationError("student ID is only valid for student accounts")
	}

	if req.InstitutionID != nil {
		if _, err := s.institutions.GetByID(ctx, *req.InstitutionID); err != nil {
			if errors.Is(err, apperrors.ErrInstitutionNotFound) {
				return nil, apperrors.ErrInstitutionNotFound
			}
			return nil, fmt.Errorf("error resolving institution: %w", err)
		}
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:              email,
		Password:           hashedPassword,
		FullName:           strings.TrimSpace(req.FullName),
		Role:               req.Role,
		InstitutionID:      req.InstitutionID,
		StudentID:          req.StudentID,
		Department:         req.Department,
		VerificationStatus: models.VerificationPending,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Login authenticates a user and issues an access/refresh token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: *token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// RefreshToken rotates a refresh token. The old token is revoked before the
// new pair is issued so a stolen token cannot be replayed.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, err := s.tokens.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		// A revoked token being replayed means the rotation contract was
		// broken; every session of that user is cut as a precaution.
		if errors.Is(err, apperrors.ErrTokenRevoked) && userID != 0 {
			if revokeErr := s.tokens.RevokeAllForUser(ctx, userID); revokeErr != nil {
				logger.Error().Err(revokeErr).Int64("userID", userID).Msg("Failed to revoke sessions after token replay")
			} else {
				logger.Warn().Int64("userID", userID).Msg("Revoked token replayed, all sessions revoked")
			}
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving token owner: %w", err)
	}

	if err := s.tokens.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token. Sign-out always succeeds from
// the client's point of view; revocation failures are logged and swallowed so
// the session is cleared locally regardless.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	if strings.TrimSpace(refreshToken) == "" {
		return
	}
	if err := s.tokens.RevokeToken(ctx, refreshToken); err != nil {
		logger.Warn().Err(err).Msg("Failed to revoke refresh token during logout")
	}
}

// GetProfile returns the current user's profile
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokens.CreateToken(ctx, refreshToken, user.ID, expiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}
