package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/studenthub/backend/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "studenthub-test",
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 42, Email: "ada@example.edu", Role: models.RoleFaculty}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}
	if refreshToken == "" {
		t.Fatal("expected an opaque refresh token")
	}
	if expiresIn != 3600 || refreshExpiresIn != 86400 {
		t.Fatalf("expiries = %d/%d, want 3600/86400", expiresIn, refreshExpiresIn)
	}

	claims, err := svc.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("userID = %d, want 42", claims.UserID)
	}
	if claims.Email != "ada@example.edu" {
		t.Fatalf("email = %q, want ada@example.edu", claims.Email)
	}
	if claims.Role != string(models.RoleFaculty) {
		t.Fatalf("role = %q, want faculty", claims.Role)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 1, Email: "x@example.edu", Role: models.RoleStudent}

	accessToken, _, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	if _, err := svc.ValidateToken(accessToken); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Email: "x@example.edu", Role: models.RoleStudent}
	accessToken, _, _, _, err := testService(time.Hour).GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
	})
	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc123", "abc123", false},
		{"abc123", "abc123", false},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("header %q: expected error", tt.header)
			}
			continue
		}
		if err != nil {
			t.Fatalf("header %q: unexpected error: %v", tt.header, err)
		}
		if got != tt.want {
			t.Fatalf("header %q: got %q, want %q", tt.header, got, tt.want)
		}
	}
}
