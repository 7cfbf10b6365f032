package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/pkg/apperrors"
	"github.com/studenthub/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses. Controllers
// funnel every service error through here so status codes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied), errors.Is(err, apperrors.ErrEventNotOwnedByYou):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrAlreadyDecided):
		respond(c, http.StatusConflict, dto.ErrorCodeAlreadyDecided, "Achievement has already been decided")
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Already registered for this event")
	case errors.Is(err, apperrors.ErrEventFull):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Event has reached its participant limit")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrStudentIDExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Student ID already exists")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrEventNotOpen), errors.Is(err, apperrors.ErrInvalidEventDates),
		errors.Is(err, apperrors.ErrInvalidDecision):
		respondWithMessage(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err)
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondWithMessage(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err)
	case errors.Is(err, apperrors.ErrUserNotFound), errors.Is(err, apperrors.ErrAchievementNotFound),
		errors.Is(err, apperrors.ErrEventNotFound), errors.Is(err, apperrors.ErrInstitutionNotFound),
		errors.Is(err, apperrors.ErrPortfolioNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
		respondWithMessage(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err)
	case errors.Is(err, apperrors.ErrSetupRequired):
		respond(c, http.StatusServiceUnavailable, dto.ErrorCodeSetupRequired, "Backend is not configured")
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// respondWithMessage surfaces the error text itself; used where the sentinel
// message (or a CustomError wrapper's message) is already client-safe.
func respondWithMessage(c *gin.Context, status int, code dto.ErrorCode, err error) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, err.Error())))
}
