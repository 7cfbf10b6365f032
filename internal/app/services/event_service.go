package services

import (
	"context"
	"time"

	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/pkg/apperrors"
)

// eventStore is the slice of EventRepository the service needs
type eventStore interface {
	Create(ctx context.Context, e *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetUpcomingForInstitution(ctx context.Context, institutionID int64, now time.Time, limit int) ([]models.Event, error)
	GetByCreator(ctx context.Context, creatorID int64) ([]models.Event, error)
	Update(ctx context.Context, e *models.Event) error
}

// participationStore persists event registrations
type participationStore interface {
	Create(ctx context.Context, p *models.EventParticipation) error
	CountByEvent(ctx context.Context, eventID int64) (int, error)
	Exists(ctx context.Context, eventID, studentID int64) (bool, error)
}

// EventService handles event management and student registration
type EventService struct {
	events         eventStore
	participations participationStore
	users          userReader
	now            func() time.Time
}

// NewEventService creates a new EventService
func NewEventService(events eventStore, participations participationStore, users userReader) *EventService {
	return &EventService{
		events:         events,
		participations: participations,
		users:          users,
		now:            time.Now,
	}
}

// Create creates a draft event owned by the calling faculty member. The event
// is scoped to the creator's institution.
func (s *EventService) Create(ctx context.Context, creatorID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	creator, err := s.users.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if !creator.IsFaculty() {
		return nil, apperrors.ErrPermissionDenied
	}
	if creator.InstitutionID == nil {
		return nil, apperrors.NewValidationError("faculty account has no institution")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidEventDates
	}
	if req.MaxParticipants != nil && *req.MaxParticipants <= 0 {
		return nil, apperrors.NewValidationError("maxParticipants must be positive")
	}

	event := &models.Event{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		CreatedBy:       creatorID,
		InstitutionID:   *creator.InstitutionID,
		MaxParticipants: req.MaxParticipants,
		Status:          models.EventDraft,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	resp := dto.NewEventResponse(event)
	return &resp, nil
}

// Update modifies an event. Only the creating faculty member may update it;
// status transitions (publish, complete, cancel) go through here too.
func (s *EventService) Update(ctx context.Context, eventID, actorID int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != actorID {
		return nil, apperrors.ErrEventNotOwnedByYou
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = req.MaxParticipants
	}
	if req.Status != nil {
		event.Status = *req.Status
	}

	if event.EndDate.Before(event.StartDate) {
		return nil, apperrors.ErrInvalidEventDates
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	resp := dto.NewEventResponse(event)
	return &resp, nil
}

// ListForCaller returns events scoped by the caller's role: students see
// published upcoming events of their institution, faculty see their own
// events, admins see their own institution's upcoming events too.
func (s *EventService) ListForCaller(ctx context.Context, callerID int64) ([]dto.EventResponse, error) {
	caller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if caller.IsFaculty() {
		events, err := s.events.GetByCreator(ctx, callerID)
		if err != nil {
			return nil, err
		}
		return dto.NewEventResponses(events), nil
	}

	if caller.InstitutionID == nil {
		return dto.NewEventResponses(nil), nil
	}
	events, err := s.events.GetUpcomingForInstitution(ctx, *caller.InstitutionID, s.now(), 0)
	if err != nil {
		return nil, err
	}
	return dto.NewEventResponses(events), nil
}

// Register signs the calling student up for an event. Only published events
// that have not started yet accept registrations, capacity permitting.
func (s *EventService) Register(ctx context.Context, eventID, studentID int64) (*dto.ParticipationResponse, error) {
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !student.IsStudent() {
		return nil, apperrors.ErrPermissionDenied
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != models.EventPublished || event.StartDate.Before(s.now()) {
		return nil, apperrors.ErrEventNotOpen
	}

	registered, err := s.participations.Exists(ctx, eventID, studentID)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, apperrors.ErrAlreadyRegistered
	}

	if event.MaxParticipants != nil {
		count, err := s.participations.CountByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if count >= *event.MaxParticipants {
			return nil, apperrors.ErrEventFull
		}
	}

	participation := &models.EventParticipation{
		EventID:   eventID,
		StudentID: studentID,
		Status:    models.ParticipationRegistered,
	}
	if err := s.participations.Create(ctx, participation); err != nil {
		return nil, err
	}

	resp := dto.NewParticipationResponse(participation)
	return &resp, nil
}
