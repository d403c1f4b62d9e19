package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/noxel/ticketing-api/internal/api"
	"github.com/noxel/ticketing-api/internal/api/handler"
	"github.com/noxel/ticketing-api/internal/api/middleware"
	"github.com/noxel/ticketing-api/internal/core/domain"
	"github.com/noxel/ticketing-api/internal/core/service"
)

// memoryUserRepo backs handler tests with an in-memory transactional store.
type memoryUserRepo struct {
	users     map[uuid.UUID]*domain.User
	organizer map[uuid.UUID]*domain.OrganizerProfile
	attendee  map[uuid.UUID]*domain.AttendeeProfile
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		users:     make(map[uuid.UUID]*domain.User),
		organizer: make(map[uuid.UUID]*domain.OrganizerProfile),
		attendee:  make(map[uuid.UUID]*domain.AttendeeProfile),
	}
}

func (r *memoryUserRepo) conflict(u *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return &domain.ConflictError{Field: "email"}
		}
		if existing.GovIdentification == u.GovIdentification {
			return &domain.ConflictError{Field: "gov_identification"}
		}
	}
	return nil
}

func (r *memoryUserRepo) CreateOrganizer(_ context.Context, user *domain.User) (*domain.User, *domain.OrganizerProfile, error) {
	if err := r.conflict(user); err != nil {
		return nil, nil, err
	}
	created := *user
	created.ID = uuid.New()
	profile := &domain.OrganizerProfile{ID: uuid.New(), UserID: created.ID, CreatedAt: time.Now().UTC()}
	r.users[created.ID] = &created
	r.organizer[created.ID] = profile
	return &created, profile, nil
}

func (r *memoryUserRepo) CreateAttendee(_ context.Context, user *domain.User, phone string, birthDate time.Time) (*domain.User, *domain.AttendeeProfile, error) {
	if err := r.conflict(user); err != nil {
		return nil, nil, err
	}
	created := *user
	created.ID = uuid.New()
	profile := &domain.AttendeeProfile{
		ID:        uuid.New(),
		UserID:    created.ID,
		Phone:     phone,
		BirthDate: birthDate,
		CreatedAt: time.Now().UTC(),
	}
	r.users[created.ID] = &created
	r.attendee[created.ID] = profile
	return &created, profile, nil
}

func (r *memoryUserRepo) OrganizerProfileByUserID(_ context.Context, userID uuid.UUID) (*domain.OrganizerProfile, error) {
	return r.organizer[userID], nil
}

func (r *memoryUserRepo) AttendeeProfileByUserID(_ context.Context, userID uuid.UUID) (*domain.AttendeeProfile, error) {
	return r.attendee[userID], nil
}

// newTestServer wires handlers the way the router does, on an in-memory repo.
func newTestServer(t *testing.T) (*echo.Echo, *memoryUserRepo) {
	t.Helper()
	repo := newMemoryUserRepo()
	tokens := service.NewTokenService("secret", time.Hour, zerolog.Nop())
	signup := service.NewSignupService(repo, service.NewArgon2idHasher(), tokens, nil, time.Hour, zerolog.Nop())

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewAuthHandler(signup, zerolog.Nop())
	e.POST("/users/signup/organizer", h.SignupOrganizer)
	e.POST("/users/signup/attendee", h.SignupAttendee)
	e.GET("/users/me", h.Me, middleware.Auth(tokens))

	return e, repo
}

const attendeeBody = `{
	"full_name": "Robert Smith",
	"password": "pw123456",
	"phone": "+5511999999999",
	"email": "robert@x.com",
	"gov_identification": 12345678901,
	"birth_date": "1990-01-31",
	"address": {
		"cep": "01001-000",
		"logradouro": "Avenida Paulista",
		"numero": "123",
		"cidade": "Sao Paulo",
		"estado": "SP"
	}
}`

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSignupAttendee_ThenMe(t *testing.T) {
	e, _ := newTestServer(t)

	rec := postJSON(e, "/users/signup/attendee", attendeeBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var signupResp struct {
		Token string `json:"token"`
		User  struct {
			ID           string `json:"id"`
			Role         string `json:"role"`
			PasswordHash string `json:"password_hash"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &signupResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if signupResp.Token == "" {
		t.Fatalf("expected a token in the signup response")
	}
	if signupResp.User.Role != "attendee" {
		t.Fatalf("expected role attendee, got %q", signupResp.User.Role)
	}
	if signupResp.User.PasswordHash != "" {
		t.Fatalf("password hash leaked into the response")
	}
	if strings.Contains(rec.Body.String(), "argon2id") {
		t.Fatalf("credential hash leaked into the response body")
	}

	// The issued token must open the self-profile endpoint.
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+signupResp.Token)
	meRec := httptest.NewRecorder()
	e.ServeHTTP(meRec, req)

	if meRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", meRec.Code, meRec.Body.String())
	}

	var meResp struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		RelatedData struct {
			Attendee *struct {
				UserID    string `json:"user_id"`
				Phone     string `json:"phone"`
				BirthDate string `json:"birth_date"`
			} `json:"attendee"`
		} `json:"related_data"`
	}
	if err := json.Unmarshal(meRec.Body.Bytes(), &meResp); err != nil {
		t.Fatalf("decode /me response: %v", err)
	}
	if meResp.User.ID != signupResp.User.ID {
		t.Fatalf("/me user id %q does not match signup user id %q", meResp.User.ID, signupResp.User.ID)
	}
	if meResp.RelatedData.Attendee == nil {
		t.Fatalf("expected attendee related data")
	}
	if meResp.RelatedData.Attendee.UserID != signupResp.User.ID {
		t.Fatalf("profile user id mismatch")
	}
	if meResp.RelatedData.Attendee.Phone != "+5511999999999" {
		t.Fatalf("phone mismatch: %q", meResp.RelatedData.Attendee.Phone)
	}
	if !strings.HasPrefix(meResp.RelatedData.Attendee.BirthDate, "1990-01-31") {
		t.Fatalf("birth date mismatch: %q", meResp.RelatedData.Attendee.BirthDate)
	}
}

func TestSignupOrganizer_Success(t *testing.T) {
	e, repo := newTestServer(t)

	body := `{
		"full_name": "Ana Costa",
		"password": "pw123456",
		"email": "ana@x.com",
		"gov_identification": 11122233344,
		"address": {
			"cep": "01001-000",
			"logradouro": "Avenida Paulista",
			"numero": "9",
			"cidade": "Sao Paulo",
			"estado": "SP"
		}
	}`
	rec := postJSON(e, "/users/signup/organizer", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.users) != 1 || len(repo.organizer) != 1 {
		t.Fatalf("expected exactly one user and one organizer profile")
	}
}

func TestSignupAttendee_ValidationFailure(t *testing.T) {
	e, repo := newTestServer(t)

	rec := postJSON(e, "/users/signup/attendee", `{"full_name": "No Fields"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(repo.users) != 0 {
		t.Fatalf("validation failure must not persist anything")
	}
}

func TestSignupAttendee_DuplicateEmail(t *testing.T) {
	e, repo := newTestServer(t)

	if rec := postJSON(e, "/users/signup/attendee", attendeeBody); rec.Code != http.StatusCreated {
		t.Fatalf("first signup failed: %d", rec.Code)
	}
	rec := postJSON(e, "/users/signup/attendee", attendeeBody)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "email") {
		t.Fatalf("conflict response should name the violated field: %s", rec.Body.String())
	}
	if len(repo.users) != 1 || len(repo.attendee) != 1 {
		t.Fatalf("conflict left partial state behind")
	}
}

func TestMe_WithoutToken(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
