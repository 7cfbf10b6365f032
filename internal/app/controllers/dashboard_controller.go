package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/app/services"
	"github.com/studenthub/backend/internal/middleware"
)

// DashboardController serves the role-gated dashboard
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// dashboardEnvelope wraps a dashboard payload with the variant that was served
type dashboardEnvelope struct {
	Kind      services.DashboardKind `json:"kind"`
	Dashboard interface{}            `json:"dashboard"`
}

// Get returns the caller's dashboard
// @Summary Get dashboard
// @Description Returns the dashboard matching the caller's current role. Unknown roles receive the student dashboard. The role is re-read from the database, not trusted from the token.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse "Role-specific dashboard payload"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /dashboard [get]
func (c *DashboardController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	kind, payload, err := c.dashboardService.Build(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboardEnvelope{
		Kind:      kind,
		Dashboard: payload,
	}))
}
