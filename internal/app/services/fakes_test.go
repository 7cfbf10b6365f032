package services

import (
	"context"
	"sort"
	"time"

	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/pkg/apperrors"
)

// fakeUserStore is an in-memory userStore / userReader / dashboardUserStore
type fakeUserStore struct {
	users      map[int64]*models.User
	nextID     int64
	studentIDs map[string]bool
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[int64]*models.User), studentIDs: make(map[string]bool), nextID: 1}
	for _, u := range users {
		f.users[u.ID] = u
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
		if u.StudentID != nil {
			f.studentIDs[*u.StudentID] = true
		}
	}
	return f
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	if user.StudentID != nil {
		f.studentIDs[*user.StudentID] = true
	}
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	return f.studentIDs[studentID], nil
}

func (f *fakeUserStore) GetVerifiedStudents(ctx context.Context, institutionID int64) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == models.RoleStudent && u.VerificationStatus == models.VerificationVerified &&
			u.InstitutionID != nil && *u.InstitutionID == institutionID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) CountByRole(ctx context.Context, role models.Role) (int, error) {
	count := 0
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

// fakeAchievementStore is an in-memory achievementStore / dashboardAchievementStore
type fakeAchievementStore struct {
	achievements map[int64]*models.Achievement
	nextID       int64
}

func newFakeAchievementStore(achievements ...*models.Achievement) *fakeAchievementStore {
	f := &fakeAchievementStore{achievements: make(map[int64]*models.Achievement), nextID: 1}
	for _, a := range achievements {
		f.achievements[a.ID] = a
		if a.ID >= f.nextID {
			f.nextID = a.ID + 1
		}
	}
	return f
}

func (f *fakeAchievementStore) Create(ctx context.Context, a *models.Achievement) error {
	a.ID = f.nextID
	f.nextID++
	a.VerificationStatus = models.VerificationPending
	a.CreatedAt = time.Now()
	f.achievements[a.ID] = a
	return nil
}

func (f *fakeAchievementStore) GetByID(ctx context.Context, id int64) (*models.Achievement, error) {
	a, ok := f.achievements[id]
	if !ok {
		return nil, apperrors.ErrAchievementNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAchievementStore) GetByStudent(ctx context.Context, studentID int64) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, a := range f.achievements {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAchievementStore) GetPendingWithStudents(ctx context.Context) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, a := range f.achievements {
		if a.VerificationStatus == models.VerificationPending {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAchievementStore) GetAll(ctx context.Context) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, a := range f.achievements {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAchievementStore) GetPage(ctx context.Context, offset uint64, limit int) ([]models.Achievement, error) {
	all, _ := f.GetAll(ctx)
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if int(offset) >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeAchievementStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.achievements)), nil
}

// Decide mirrors the SQL guard: only a pending row is updated.
func (f *fakeAchievementStore) Decide(ctx context.Context, id int64, decision models.VerificationStatus, verifierID int64) error {
	a, ok := f.achievements[id]
	if !ok || a.VerificationStatus != models.VerificationPending {
		return apperrors.ErrAlreadyDecided
	}
	a.VerificationStatus = decision
	a.VerifiedBy = &verifierID
	return nil
}

func (f *fakeAchievementStore) CountVerifiedBy(ctx context.Context, verifierID int64) (int, error) {
	count := 0
	for _, a := range f.achievements {
		if a.VerifiedBy != nil && *a.VerifiedBy == verifierID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAchievementStore) SumVerifiedPoints(ctx context.Context, studentID int64) (int, error) {
	total := 0
	for _, a := range f.achievements {
		if a.StudentID == studentID && a.VerificationStatus == models.VerificationVerified {
			total += a.Points
		}
	}
	return total, nil
}

// fakeEventStore is an in-memory eventStore / dashboardEventStore
type fakeEventStore struct {
	events map[int64]*models.Event
	nextID int64
}

func newFakeEventStore(events ...*models.Event) *fakeEventStore {
	f := &fakeEventStore{events: make(map[int64]*models.Event), nextID: 1}
	for _, e := range events {
		f.events[e.ID] = e
		if e.ID >= f.nextID {
			f.nextID = e.ID + 1
		}
	}
	return f
}

func (f *fakeEventStore) Create(ctx context.Context, e *models.Event) error {
	e.ID = f.nextID
	f.nextID++
	e.CreatedAt = time.Now()
	f.events[e.ID] = e
	return nil
}

func (f *fakeEventStore) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventStore) GetUpcomingForInstitution(ctx context.Context, institutionID int64, now time.Time, limit int) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		if e.InstitutionID == institutionID && e.Status == models.EventPublished && !e.StartDate.Before(now) {
			out = append(out, *e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEventStore) GetByCreator(ctx context.Context, creatorID int64) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		if e.CreatedBy == creatorID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventStore) Update(ctx context.Context, e *models.Event) error {
	if _, ok := f.events[e.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	copied := *e
	f.events[e.ID] = &copied
	return nil
}

func (f *fakeEventStore) Count(ctx context.Context) (int, error) {
	return len(f.events), nil
}

// fakeParticipationStore is an in-memory participationStore
type fakeParticipationStore struct {
	participations []*models.EventParticipation
	nextID         int64
}

func newFakeParticipationStore() *fakeParticipationStore {
	return &fakeParticipationStore{nextID: 1}
}

func (f *fakeParticipationStore) Create(ctx context.Context, p *models.EventParticipation) error {
	for _, existing := range f.participations {
		if existing.EventID == p.EventID && existing.StudentID == p.StudentID {
			return apperrors.ErrAlreadyRegistered
		}
	}
	p.ID = f.nextID
	f.nextID++
	p.CreatedAt = time.Now()
	f.participations = append(f.participations, p)
	return nil
}

func (f *fakeParticipationStore) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	count := 0
	for _, p := range f.participations {
		if p.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (f *fakeParticipationStore) Exists(ctx context.Context, eventID, studentID int64) (bool, error) {
	for _, p := range f.participations {
		if p.EventID == eventID && p.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

// fakePortfolioStore is an in-memory portfolioStore / portfolioReader
type fakePortfolioStore struct {
	portfolios map[int64]*models.Portfolio
	nextID     int64
}

func newFakePortfolioStore() *fakePortfolioStore {
	return &fakePortfolioStore{portfolios: make(map[int64]*models.Portfolio), nextID: 1}
}

func (f *fakePortfolioStore) GetByStudent(ctx context.Context, studentID int64) (*models.Portfolio, error) {
	p, ok := f.portfolios[studentID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakePortfolioStore) Upsert(ctx context.Context, p *models.Portfolio) error {
	now := time.Now()
	if existing, ok := f.portfolios[p.StudentID]; ok {
		p.ID = existing.ID
	} else {
		p.ID = f.nextID
		f.nextID++
	}
	p.GeneratedAt = now
	p.UpdatedAt = now
	copied := *p
	f.portfolios[p.StudentID] = &copied
	return nil
}

func (f *fakePortfolioStore) Update(ctx context.Context, p *models.Portfolio) error {
	if _, ok := f.portfolios[p.StudentID]; !ok {
		return apperrors.ErrPortfolioNotFound
	}
	p.UpdatedAt = time.Now()
	copied := *p
	f.portfolios[p.StudentID] = &copied
	return nil
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
