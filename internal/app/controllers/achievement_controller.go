package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/app/services"
	"github.com/studenthub/backend/internal/middleware"
	"github.com/studenthub/backend/internal/pkg/helpers"
)

// AchievementController handles achievement logging and verification
type AchievementController struct {
	achievementService *services.AchievementService
}

// NewAchievementController creates a new AchievementController
func NewAchievementController(achievementService *services.AchievementService) *AchievementController {
	return &AchievementController{achievementService: achievementService}
}

// Create logs a new achievement for the calling student
// @Summary Log an achievement
// @Description Creates an achievement owned by the caller. New achievements always start in pending state.
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body dto.CreateAchievementRequest true "Achievement details"
// @Success 201 {object} dto.APIResponse{data=dto.AchievementResponse} "Achievement created"
// @Failure 400 {object} dto.ErrorResponse "Invalid category or negative points"
// @Security BearerAuth
// @Router /achievements [post]
func (c *AchievementController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.achievementService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// List returns achievements scoped to the caller's role
// @Summary List achievements
// @Description Students receive their own achievements. Faculty receive the pending verification queue, or all achievements with ?status=all. Admins receive everything.
// @Tags achievements
// @Produce json
// @Param status query string false "Faculty filter: pending (default) or all"
// @Param page query int false "Page number for the all-achievements view"
// @Param size query int false "Page size for the all-achievements view"
// @Success 200 {object} dto.APIResponse{data=[]dto.AchievementResponse} "Achievements"
// @Security BearerAuth
// @Router /achievements [get]
func (c *AchievementController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	role, _ := ctx.Get(middleware.ContextRole)

	var (
		resp interface{}
		err  error
	)
	switch role {
	case string(models.RoleFaculty):
		if ctx.Query("status") == "all" {
			page, size := helpers.ParsePaginationParams(ctx)
			resp, err = c.achievementService.ListAll(ctx.Request.Context(), page, size)
		} else {
			resp, err = c.achievementService.ListPending(ctx.Request.Context())
		}
	case string(models.RoleAdmin):
		page, size := helpers.ParsePaginationParams(ctx)
		resp, err = c.achievementService.ListAll(ctx.Request.Context(), page, size)
	default:
		resp, err = c.achievementService.ListForStudent(ctx.Request.Context(), userID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Verify applies a verification decision to a pending achievement
// @Summary Verify or reject an achievement
// @Description Faculty-only. Applies a terminal decision to a pending achievement. Deciding an already-decided achievement returns 409 and changes nothing.
// @Tags achievements
// @Accept json
// @Produce json
// @Param id path int true "Achievement ID"
// @Param request body dto.VerifyAchievementRequest true "Decision: verified or rejected"
// @Success 200 {object} dto.APIResponse{data=dto.AchievementResponse} "Decision applied"
// @Failure 403 {object} dto.ErrorResponse "Caller is not faculty"
// @Failure 404 {object} dto.ErrorResponse "Achievement not found"
// @Failure 409 {object} dto.ErrorResponse "Achievement already decided"
// @Security BearerAuth
// @Router /achievements/{id}/verify [post]
func (c *AchievementController) Verify(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	achievementID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid achievement ID")))
		return
	}

	var req dto.VerifyAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.achievementService.Verify(ctx.Request.Context(), achievementID, req.Decision, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
