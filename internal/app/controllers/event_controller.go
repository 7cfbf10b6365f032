package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/app/services"
	"github.com/studenthub/backend/internal/middleware"
)

// EventController handles event management and registration
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// Create creates a new event
// @Summary Create an event
// @Description Faculty-only. Creates a draft event scoped to the caller's institution.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 400 {object} dto.ErrorResponse "End date precedes start date"
// @Failure 403 {object} dto.ErrorResponse "Caller is not faculty"
// @Security BearerAuth
// @Router /events [post]
func (c *EventController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.eventService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// Update modifies an event owned by the caller
// @Summary Update an event
// @Description Faculty-only. Only the creating faculty member may update an event. Status transitions (publish, complete, cancel) are applied here.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event updated"
// @Failure 403 {object} dto.ErrorResponse "Event belongs to another faculty member"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")))
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.eventService.Update(ctx.Request.Context(), eventID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// List returns events scoped to the caller's role
// @Summary List events
// @Description Students see published upcoming events of their institution. Faculty see the events they created.
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse} "Events"
// @Security BearerAuth
// @Router /events [get]
func (c *EventController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.eventService.ListForCaller(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Register signs the calling student up for an event
// @Summary Register for an event
// @Description Student-only. Registers for a published upcoming event. Duplicate registrations and full events are rejected.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 201 {object} dto.APIResponse{data=dto.ParticipationResponse} "Registered"
// @Failure 400 {object} dto.ErrorResponse "Event is not open for registration"
// @Failure 409 {object} dto.ErrorResponse "Already registered or event full"
// @Security BearerAuth
// @Router /events/{id}/register [post]
func (c *EventController) Register(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")))
		return
	}

	resp, err := c.eventService.Register(ctx.Request.Context(), eventID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}
