package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/app/services"
	"github.com/studenthub/backend/internal/middleware"
)

// PortfolioController handles portfolio generation and updates
type PortfolioController struct {
	portfolioService *services.PortfolioService
}

// NewPortfolioController creates a new PortfolioController
func NewPortfolioController(portfolioService *services.PortfolioService) *PortfolioController {
	return &PortfolioController{portfolioService: portfolioService}
}

// Generate creates or refreshes the caller's portfolio
// @Summary Generate portfolio
// @Description Student-only. Creates the caller's portfolio or refreshes it in place. Total points are recomputed from verified achievements.
// @Tags portfolio
// @Accept json
// @Produce json
// @Param request body dto.GeneratePortfolioRequest true "Portfolio details"
// @Success 200 {object} dto.APIResponse{data=dto.PortfolioResponse} "Portfolio generated"
// @Security BearerAuth
// @Router /portfolio [post]
func (c *PortfolioController) Generate(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.GeneratePortfolioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.portfolioService.Generate(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Get returns the caller's portfolio
// @Summary Get portfolio
// @Description Student-only. Returns the caller's portfolio, or null data when none has been generated yet.
// @Tags portfolio
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PortfolioResponse} "Portfolio or null"
// @Security BearerAuth
// @Router /portfolio [get]
func (c *PortfolioController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.portfolioService.Get(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Update changes the descriptive fields of the caller's portfolio
// @Summary Update portfolio
// @Description Student-only. Updates title, description or visibility of an existing portfolio.
// @Tags portfolio
// @Accept json
// @Produce json
// @Param request body dto.UpdatePortfolioRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.PortfolioResponse} "Portfolio updated"
// @Failure 404 {object} dto.ErrorResponse "Portfolio not generated yet"
// @Security BearerAuth
// @Router /portfolio [put]
func (c *PortfolioController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePortfolioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.portfolioService.Update(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
