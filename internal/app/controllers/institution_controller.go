package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/app/services"
	"github.com/studenthub/backend/internal/middleware"
)

// InstitutionController serves the public institution directory
type InstitutionController struct {
	institutionService *services.InstitutionService
}

// NewInstitutionController creates a new InstitutionController
func NewInstitutionController(institutionService *services.InstitutionService) *InstitutionController {
	return &InstitutionController{institutionService: institutionService}
}

// List returns all institutions
// @Summary List institutions
// @Description Public directory of institutions ordered by name, used by the registration form.
// @Tags institutions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstitutionResponse} "Institutions"
// @Router /institutions [get]
func (c *InstitutionController) List(ctx *gin.Context) {
	resp, err := c.institutionService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
