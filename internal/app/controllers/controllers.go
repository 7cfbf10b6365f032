package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/middleware"
)

// requireUserID reads the authenticated user ID or writes a 401 and reports
// false. Routes behind JWTAuth always have the ID; this guards direct use.
func requireUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return 0, false
	}
	return userID, true
}
