package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/noxel/ticketing-api/internal/core/domain"
	"github.com/noxel/ticketing-api/internal/core/service"
)

func issueTestToken(t *testing.T, secret string, role domain.Role) (string, uuid.UUID) {
	t.Helper()
	svc := service.NewTokenService(secret, time.Hour, zerolog.Nop())
	user := &domain.User{
		ID:       uuid.New(),
		FullName: "Alice",
		Role:     role,
		Email:    "alice@x.com",
	}
	token, err := svc.Issue(user, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token, user.ID
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	token, userID := issueTestToken(t, "secret", domain.RoleOrganizer)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(service.NewTokenService("secret", time.Hour, zerolog.Nop()))
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := UserFrom(c)
		if !ok {
			t.Fatalf("user not injected into context")
		}
		if user.ID != userID {
			t.Fatalf("wrong user id: %s", user.ID)
		}
		if user.Role != domain.RoleOrganizer {
			t.Fatalf("wrong role: %s", user.Role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func rejectionStatus(t *testing.T, authorization string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService("secret", time.Hour, zerolog.Nop()))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestAuth_MissingHeader(t *testing.T) {
	if code := rejectionStatus(t, ""); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	if code := rejectionStatus(t, "Token abc"); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_EmptyBearer(t *testing.T) {
	if code := rejectionStatus(t, "Bearer "); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	if code := rejectionStatus(t, "Bearer not-a-token"); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	now := time.Now()
	claims := &service.SessionClaims{
		User: domain.User{ID: uuid.New(), Role: domain.RoleAttendee},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if code := rejectionStatus(t, "Bearer "+expired); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", code)
	}
}
