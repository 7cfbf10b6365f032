package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/pkg/apperrors"
)

var testNow = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newEventService(events *fakeEventStore, participations *fakeParticipationStore, users *fakeUserStore) *EventService {
	svc := NewEventService(events, participations, users)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestCreateEventDefaultsToDraft(t *testing.T) {
	faculty := &models.User{ID: 10, Role: models.RoleFaculty, InstitutionID: int64Ptr(7)}
	svc := newEventService(newFakeEventStore(), newFakeParticipationStore(), newFakeUserStore(faculty))

	resp, err := svc.Create(context.Background(), 10, &dto.CreateEventRequest{
		Title:     "Tech Fest",
		Category:  "technical",
		StartDate: testNow.Add(24 * time.Hour),
		EndDate:   testNow.Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if resp.Status != string(models.EventDraft) {
		t.Fatalf("status = %q, want draft", resp.Status)
	}
	if resp.CreatedBy != 10 || resp.InstitutionID != 7 {
		t.Fatalf("ownership = creator %d / institution %d, want 10/7", resp.CreatedBy, resp.InstitutionID)
	}
}

func TestCreateEventRejectsBadDates(t *testing.T) {
	faculty := &models.User{ID: 10, Role: models.RoleFaculty, InstitutionID: int64Ptr(7)}
	svc := newEventService(newFakeEventStore(), newFakeParticipationStore(), newFakeUserStore(faculty))

	_, err := svc.Create(context.Background(), 10, &dto.CreateEventRequest{
		Title:     "Backwards",
		Category:  "cultural",
		StartDate: testNow.Add(48 * time.Hour),
		EndDate:   testNow.Add(24 * time.Hour),
	})
	if !errors.Is(err, apperrors.ErrInvalidEventDates) {
		t.Fatalf("err = %v, want ErrInvalidEventDates", err)
	}
}

func TestCreateEventDeniedForStudents(t *testing.T) {
	student := &models.User{ID: 2, Role: models.RoleStudent, InstitutionID: int64Ptr(7)}
	svc := newEventService(newFakeEventStore(), newFakeParticipationStore(), newFakeUserStore(student))

	_, err := svc.Create(context.Background(), 2, &dto.CreateEventRequest{
		Title:     "Nope",
		Category:  "sports",
		StartDate: testNow,
		EndDate:   testNow,
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestUpdateEventOwnershipEnforced(t *testing.T) {
	owner := &models.User{ID: 10, Role: models.RoleFaculty, InstitutionID: int64Ptr(7)}
	other := &models.User{ID: 11, Role: models.RoleFaculty, InstitutionID: int64Ptr(7)}
	events := newFakeEventStore(&models.Event{
		ID: 1, CreatedBy: 10, Status: models.EventDraft,
		StartDate: testNow.Add(time.Hour), EndDate: testNow.Add(2 * time.Hour),
	})
	svc := newEventService(events, newFakeParticipationStore(), newFakeUserStore(owner, other))

	_, err := svc.Update(context.Background(), 1, 11, &dto.UpdateEventRequest{Title: strPtr("Hijacked")})
	if !errors.Is(err, apperrors.ErrEventNotOwnedByYou) {
		t.Fatalf("err = %v, want ErrEventNotOwnedByYou", err)
	}

	published := models.EventPublished
	resp, err := svc.Update(context.Background(), 1, 10, &dto.UpdateEventRequest{Status: &published})
	if err != nil {
		t.Fatalf("owner update returned error: %v", err)
	}
	if resp.Status != string(models.EventPublished) {
		t.Fatalf("status = %q, want published", resp.Status)
	}
}

func TestRegisterForEvent(t *testing.T) {
	student := &models.User{ID: 2, Role: models.RoleStudent, InstitutionID: int64Ptr(7)}
	events := newFakeEventStore(&models.Event{
		ID: 1, InstitutionID: 7, Status: models.EventPublished,
		StartDate: testNow.Add(24 * time.Hour), EndDate: testNow.Add(30 * time.Hour),
	})
	svc := newEventService(events, newFakeParticipationStore(), newFakeUserStore(student))

	resp, err := svc.Register(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.Status != string(models.ParticipationRegistered) {
		t.Fatalf("status = %q, want registered", resp.Status)
	}

	// Second registration for the same pair is rejected
	_, err = svc.Register(context.Background(), 1, 2)
	if !errors.Is(err, apperrors.ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}
}

func TestRegisterRejectsClosedEvents(t *testing.T) {
	student := &models.User{ID: 2, Role: models.RoleStudent, InstitutionID: int64Ptr(7)}

	tests := []struct {
		name  string
		event models.Event
	}{
		{"draft", models.Event{ID: 1, InstitutionID: 7, Status: models.EventDraft, StartDate: testNow.Add(time.Hour)}},
		{"cancelled", models.Event{ID: 1, InstitutionID: 7, Status: models.EventCancelled, StartDate: testNow.Add(time.Hour)}},
		{"already started", models.Event{ID: 1, InstitutionID: 7, Status: models.EventPublished, StartDate: testNow.Add(-time.Hour)}},
	}
	for _, tt := range tests {
		event := tt.event
		svc := newEventService(newFakeEventStore(&event), newFakeParticipationStore(), newFakeUserStore(student))

		_, err := svc.Register(context.Background(), 1, 2)
		if !errors.Is(err, apperrors.ErrEventNotOpen) {
			t.Fatalf("%s: err = %v, want ErrEventNotOpen", tt.name, err)
		}
	}
}

func TestRegisterRejectsFullEvent(t *testing.T) {
	first := &models.User{ID: 2, Role: models.RoleStudent, InstitutionID: int64Ptr(7)}
	second := &models.User{ID: 3, Role: models.RoleStudent, InstitutionID: int64Ptr(7)}
	events := newFakeEventStore(&models.Event{
		ID: 1, InstitutionID: 7, Status: models.EventPublished,
		StartDate: testNow.Add(time.Hour), MaxParticipants: intPtr(1),
	})
	svc := newEventService(events, newFakeParticipationStore(), newFakeUserStore(first, second))

	if _, err := svc.Register(context.Background(), 1, 2); err != nil {
		t.Fatalf("first registration returned error: %v", err)
	}
	_, err := svc.Register(context.Background(), 1, 3)
	if !errors.Is(err, apperrors.ErrEventFull) {
		t.Fatalf("err = %v, want ErrEventFull", err)
	}
}

func TestListForCallerScopes(t *testing.T) {
	student := &models.User{ID: 2, Role: models.RoleStudent, InstitutionID: int64Ptr(7)}
	faculty := &models.User{ID: 10, Role: models.RoleFaculty, InstitutionID: int64Ptr(7)}
	events := newFakeEventStore(
		&models.Event{ID: 1, InstitutionID: 7, CreatedBy: 10, Status: models.EventPublished, StartDate: testNow.Add(time.Hour)},
		&models.Event{ID: 2, InstitutionID: 7, CreatedBy: 10, Status: models.EventDraft, StartDate: testNow.Add(time.Hour)},
		&models.Event{ID: 3, InstitutionID: 8, CreatedBy: 11, Status: models.EventPublished, StartDate: testNow.Add(time.Hour)},
	)
	svc := newEventService(events, newFakeParticipationStore(), newFakeUserStore(student, faculty))

	studentView, err := svc.ListForCaller(context.Background(), 2)
	if err != nil {
		t.Fatalf("student list returned error: %v", err)
	}
	if len(studentView) != 1 || studentView[0].ID != 1 {
		t.Fatalf("student sees %d events, want only the published one in their institution", len(studentView))
	}

	facultyView, err := svc.ListForCaller(context.Background(), 10)
	if err != nil {
		t.Fatalf("faculty list returned error: %v", err)
	}
	if len(facultyView) != 2 {
		t.Fatalf("faculty sees %d events, want their own 2", len(facultyView))
	}
}

func TestUncappedEventAcceptsAnyRegistrations(t *testing.T) {
	first := &models.User{ID: 2, Role: models.RoleStudent, InstitutionID: int64Ptr(7)}
	second := &models.User{ID: 3, Role: models.RoleStudent, InstitutionID: int64Ptr(7)}
	events := newFakeEventStore(&models.Event{
		ID: 1, InstitutionID: 7, Status: models.EventPublished,
		StartDate: testNow.Add(time.Hour), EndDate: testNow.Add(2 * time.Hour),
	})
	svc := newEventService(events, newFakeParticipationStore(), newFakeUserStore(first, second))

	if events.events[1].MaxParticipants != nil {
		t.Fatal("fixture event must have no participant cap")
	}
	if _, err := svc.Register(context.Background(), 1, 2); err != nil {
		t.Fatalf("first registration on uncapped event: %v", err)
	}
	if _, err := svc.Register(context.Background(), 1, 3); err != nil {
		t.Fatalf("second registration on uncapped event: %v", err)
	}
}
