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

func dtoCreateAchievement() dto.CreateAchievementRequest {
	return dto.CreateAchievementRequest{
		Title:        "Dean's list",
		Description:  "Fall semester",
		Category:     models.CategoryAcademic,
		DateAchieved: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
		Points:       20,
	}
}

func TestVerifyAppliesDecision(t *testing.T) {
	faculty := &models.User{ID: 10, Role: models.RoleFaculty}
	achievements := newFakeAchievementStore(&models.Achievement{
		ID:                 1,
		StudentID:          2,
		VerificationStatus: models.VerificationPending,
		Points:             25,
	})
	svc := NewAchievementService(achievements, newFakeUserStore(faculty))

	resp, err := svc.Verify(context.Background(), 1, models.VerificationVerified, 10)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if resp.VerificationStatus != string(models.VerificationVerified) {
		t.Fatalf("status = %q, want verified", resp.VerificationStatus)
	}
	if resp.VerifiedBy == nil || *resp.VerifiedBy != 10 {
		t.Fatalf("verifiedBy = %v, want 10", resp.VerifiedBy)
	}

	stored := achievements.achievements[1]
	if stored.VerificationStatus != models.VerificationVerified {
		t.Fatalf("stored status = %q, want verified", stored.VerificationStatus)
	}
}

func TestVerifyReject(t *testing.T) {
	faculty := &models.User{ID: 10, Role: models.RoleFaculty}
	achievements := newFakeAchievementStore(&models.Achievement{
		ID:                 1,
		StudentID:          2,
		VerificationStatus: models.VerificationPending,
	})
	svc := NewAchievementService(achievements, newFakeUserStore(faculty))

	resp, err := svc.Verify(context.Background(), 1, models.VerificationRejected, 10)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if resp.VerificationStatus != string(models.VerificationRejected) {
		t.Fatalf("status = %q, want rejected", resp.VerificationStatus)
	}

	// The rejected item no longer appears in the pending queue
	pending, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending queue has %d items, want 0", len(pending))
	}
}

func TestVerifyDeniedForNonFaculty(t *testing.T) {
	for _, role := range []models.Role{models.RoleStudent, models.RoleAdmin} {
		actor := &models.User{ID: 10, Role: role}
		achievements := newFakeAchievementStore(&models.Achievement{
			ID:                 1,
			VerificationStatus: models.VerificationPending,
		})
		svc := NewAchievementService(achievements, newFakeUserStore(actor))

		_, err := svc.Verify(context.Background(), 1, models.VerificationVerified, 10)
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Fatalf("role %s: err = %v, want ErrPermissionDenied", role, err)
		}
		// No mutation must have been issued
		if achievements.achievements[1].VerificationStatus != models.VerificationPending {
			t.Fatalf("role %s: achievement mutated despite denial", role)
		}
	}
}

func TestVerifyTerminalStates(t *testing.T) {
	faculty := &models.User{ID: 10, Role: models.RoleFaculty}
	other := int64(99)
	for _, status := range []models.VerificationStatus{models.VerificationVerified, models.VerificationRejected} {
		achievements := newFakeAchievementStore(&models.Achievement{
			ID:                 1,
			VerificationStatus: status,
			VerifiedBy:         &other,
		})
		svc := NewAchievementService(achievements, newFakeUserStore(faculty))

		_, err := svc.Verify(context.Background(), 1, models.VerificationVerified, 10)
		if !errors.Is(err, apperrors.ErrAlreadyDecided) {
			t.Fatalf("status %s: err = %v, want ErrAlreadyDecided", status, err)
		}
		stored := achievements.achievements[1]
		if stored.VerificationStatus != status || *stored.VerifiedBy != other {
			t.Fatalf("status %s: terminal achievement was mutated", status)
		}
	}
}

func TestVerifyInvalidDecision(t *testing.T) {
	faculty := &models.User{ID: 10, Role: models.RoleFaculty}
	achievements := newFakeAchievementStore(&models.Achievement{
		ID:                 1,
		VerificationStatus: models.VerificationPending,
	})
	svc := NewAchievementService(achievements, newFakeUserStore(faculty))

	_, err := svc.Verify(context.Background(), 1, models.VerificationPending, 10)
	if !errors.Is(err, apperrors.ErrInvalidDecision) {
		t.Fatalf("err = %v, want ErrInvalidDecision", err)
	}
}

func TestVerifyMissingAchievement(t *testing.T) {
	faculty := &models.User{ID: 10, Role: models.RoleFaculty}
	svc := NewAchievementService(newFakeAchievementStore(), newFakeUserStore(faculty))

	_, err := svc.Verify(context.Background(), 42, models.VerificationVerified, 10)
	if !errors.Is(err, apperrors.ErrAchievementNotFound) {
		t.Fatalf("err = %v, want ErrAchievementNotFound", err)
	}
}

func TestCreateStartsPending(t *testing.T) {
	achievements := newFakeAchievementStore()
	svc := NewAchievementService(achievements, newFakeUserStore())

	req := dtoCreateAchievement()
	resp, err := svc.Create(context.Background(), 2, &req)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if resp.VerificationStatus != string(models.VerificationPending) {
		t.Fatalf("status = %q, want pending", resp.VerificationStatus)
	}
	if resp.VerifiedBy != nil {
		t.Fatalf("verifiedBy = %v, want nil for a new achievement", resp.VerifiedBy)
	}
	if resp.StudentID != 2 {
		t.Fatalf("studentId = %d, want 2", resp.StudentID)
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := NewAchievementService(newFakeAchievementStore(), newFakeUserStore())

	req := dtoCreateAchievement()
	req.Category = "hackathon"
	_, err := svc.Create(context.Background(), 2, &req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestCreateRejectsNegativePoints(t *testing.T) {
	svc := NewAchievementService(newFakeAchievementStore(), newFakeUserStore())

	req := dtoCreateAchievement()
	req.Points = -5
	_, err := svc.Create(context.Background(), 2, &req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestListForStudentEmpty(t *testing.T) {
	svc := NewAchievementService(newFakeAchievementStore(), newFakeUserStore())

	achievements, err := svc.ListForStudent(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListForStudent returned error: %v", err)
	}
	if achievements == nil {
		t.Fatal("empty result must be a non-nil slice")
	}
	if len(achievements) != 0 {
		t.Fatalf("got %d achievements, want 0", len(achievements))
	}
}

func TestListAllPaginates(t *testing.T) {
	achievements := newFakeAchievementStore(
		&models.Achievement{ID: 1, StudentID: 2, VerificationStatus: models.VerificationPending},
		&models.Achievement{ID: 2, StudentID: 2, VerificationStatus: models.VerificationVerified},
		&models.Achievement{ID: 3, StudentID: 3, VerificationStatus: models.VerificationPending},
	)
	svc := NewAchievementService(achievements, newFakeUserStore())

	page, err := svc.ListAll(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	items, ok := page.Items.([]dto.AchievementResponse)
	if !ok {
		t.Fatalf("items have type %T, want []dto.AchievementResponse", page.Items)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items on page 1, want 2", len(items))
	}
	if page.Pagination.TotalItems != 3 {
		t.Fatalf("totalItems = %d, want 3", page.Pagination.TotalItems)
	}
	if page.Pagination.TotalPages != 2 {
		t.Fatalf("totalPages = %d, want 2", page.Pagination.TotalPages)
	}

	page2, err := svc.ListAll(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("ListAll page 2 returned error: %v", err)
	}
	items2 := page2.Items.([]dto.AchievementResponse)
	if len(items2) != 1 {
		t.Fatalf("got %d items on page 2, want 1", len(items2))
	}
}
