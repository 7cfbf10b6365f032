package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/pkg/apperrors"
	"github.com/studenthub/backend/internal/pkg/auth"
)

// fakeInstitutionStore resolves institution lookups during registration
type fakeInstitutionStore struct {
	institutions map[int64]*models.Institution
}

func (f *fakeInstitutionStore) GetByID(ctx context.Context, id int64) (*models.Institution, error) {
	inst, ok := f.institutions[id]
	if !ok {
		return nil, apperrors.ErrInstitutionNotFound
	}
	return inst, nil
}

// fakeTokenStore is an in-memory tokenStore
type fakeTokenStore struct {
	tokens map[string]tokenRecord
}

type tokenRecord struct {
	userID    int64
	expiry    time.Time
	isRevoked bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]tokenRecord)}
}

func (f *fakeTokenStore) CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	f.tokens[token] = tokenRecord{userID: userID, expiry: expiryDate}
	return nil
}

func (f *fakeTokenStore) GetTokenByValue(ctx context.Context, token string) (int64, error) {
	rec, ok := f.tokens[token]
	if !ok {
		return 0, apperrors.ErrTokenNotFound
	}
	if rec.isRevoked {
		return rec.userID, apperrors.ErrTokenRevoked
	}
	if rec.expiry.Before(time.Now()) {
		return 0, apperrors.ErrTokenExpired
	}
	return rec.userID, nil
}

func (f *fakeTokenStore) RevokeToken(ctx context.Context, token string) error {
	rec, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	rec.isRevoked = true
	f.tokens[token] = rec
	return nil
}

func (f *fakeTokenStore) RevokeAllForUser(ctx context.Context, userID int64) error {
	for token, rec := range f.tokens {
		if rec.userID == userID {
			rec.isRevoked = true
			f.tokens[token] = rec
		}
	}
	return nil
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "studenthub-test",
	})
}

func newAuthService(users *fakeUserStore, tokens *fakeTokenStore) *AuthService {
	institutions := &fakeInstitutionStore{institutions: map[int64]*models.Institution{
		7: {ID: 7, Name: "State University", Code: "SU"},
	}}
	return NewAuthService(users, tokens, institutions, newTestJWTService())
}

func TestRegisterStudent(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users, newFakeTokenStore())

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:         "Ada@Example.EDU",
		Password:      "secret1",
		FullName:      "Ada Student",
		Role:          models.RoleStudent,
		InstitutionID: int64Ptr(7),
		StudentID:     strPtr("20260001"),
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.Email != "ada@example.edu" {
		t.Fatalf("email = %q, want lower-cased", resp.Email)
	}
	if resp.VerificationStatus != string(models.VerificationPending) {
		t.Fatalf("verificationStatus = %q, want pending", resp.VerificationStatus)
	}

	stored, err := users.GetByEmail(context.Background(), "ada@example.edu")
	if err != nil {
		t.Fatalf("stored user lookup failed: %v", err)
	}
	if stored.Password == "secret1" {
		t.Fatal("password stored in plain text")
	}
}

func TestRegisterStudentIDRules(t *testing.T) {
	svc := newAuthService(newFakeUserStore(), newFakeTokenStore())

	// Student without a student ID
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "a@example.edu",
		Password: "secret1",
		FullName: "A",
		Role:     models.RoleStudent,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("missing student ID: err = %v, want ErrValidationFailed", err)
	}

	// Faculty with a student ID
	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "b@example.edu",
		Password:  "secret1",
		FullName:  "B",
		Role:      models.RoleFaculty,
		StudentID: strPtr("20260001"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("faculty with student ID: err = %v, want ErrValidationFailed", err)
	}
}

func TestRegisterConflicts(t *testing.T) {
	existing := &models.User{
		ID: 1, Email: "taken@example.edu", Role: models.RoleStudent,
		StudentID: strPtr("20260001"),
	}
	svc := newAuthService(newFakeUserStore(existing), newFakeTokenStore())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "taken@example.edu",
		Password:  "secret1",
		FullName:  "Dup",
		Role:      models.RoleStudent,
		StudentID: strPtr("20260002"),
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("duplicate email: err = %v, want ErrEmailAlreadyExists", err)
	}

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "new@example.edu",
		Password:  "secret1",
		FullName:  "Dup",
		Role:      models.RoleStudent,
		StudentID: strPtr("20260001"),
	})
	if !errors.Is(err, apperrors.ErrStudentIDExists) {
		t.Fatalf("duplicate student ID: err = %v, want ErrStudentIDExists", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newAuthService(newFakeUserStore(), newFakeTokenStore())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "x@example.edu",
		Password: "secret1",
		FullName: "X",
		Role:     models.Role("superuser"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestLoginAndRefresh(t *testing.T) {
	hashed, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	user := &models.User{ID: 1, Email: "ada@example.edu", Password: hashed, Role: models.RoleStudent}
	tokens := newFakeTokenStore()
	svc := newAuthService(newFakeUserStore(user), tokens)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ada@example.edu", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token.AccessToken == "" || resp.Token.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if resp.User.ID != 1 {
		t.Fatalf("user id = %d, want 1", resp.User.ID)
	}

	// Rotation revokes the old refresh token
	rotated, err := svc.RefreshToken(context.Background(), resp.Token.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}
	if rotated.RefreshToken == resp.Token.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}
	if _, err := svc.RefreshToken(context.Background(), resp.Token.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Fatalf("replayed token: err = %v, want ErrTokenRevoked", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	hashed, _ := auth.HashPassword("secret1")
	user := &models.User{ID: 1, Email: "ada@example.edu", Password: hashed, Role: models.RoleStudent}
	svc := newAuthService(newFakeUserStore(user), newFakeTokenStore())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ada@example.edu", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.edu", Password: "secret1"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown user: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	svc := newAuthService(newFakeUserStore(), newFakeTokenStore())

	// Unknown and empty tokens do not surface errors; the client-side session
	// is cleared regardless of what the server manages to revoke.
	svc.Logout(context.Background(), "no-such-token")
	svc.Logout(context.Background(), "")
}

func TestRefreshReplayCutsAllSessions(t *testing.T) {
	hashed, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	user := &models.User{ID: 1, Email: "ada@example.edu", Password: hashed, Role: models.RoleStudent}
	tokens := newFakeTokenStore()
	svc := newAuthService(newFakeUserStore(user), tokens)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ada@example.edu", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	rotated, err := svc.RefreshToken(context.Background(), resp.Token.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}

	// Replaying the rotated-out token revokes every session of the user,
	// so the live token stops working too.
	if _, err := svc.RefreshToken(context.Background(), resp.Token.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Fatalf("replayed token: err = %v, want ErrTokenRevoked", err)
	}
	if _, err := svc.RefreshToken(context.Background(), rotated.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Fatalf("live token after replay: err = %v, want ErrTokenRevoked", err)
	}
}
