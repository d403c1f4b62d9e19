package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/noxel/ticketing-api/internal/api/metrics"
	"github.com/noxel/ticketing-api/internal/api/middleware"
	"github.com/noxel/ticketing-api/internal/core/domain"
	"github.com/noxel/ticketing-api/internal/core/ports"
)

// AuthHandler serves signup and the authenticated self-profile.
type AuthHandler struct {
	signup ports.SignupService
	logger zerolog.Logger
}

func NewAuthHandler(signup ports.SignupService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{signup: signup, logger: logger}
}

// SignupOrganizer creates an organizer account.
//
// @Summary      Organizer signup
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupOrganizerRequest  true  "Organizer signup details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/signup/organizer [post]
func (h *AuthHandler) SignupOrganizer(c echo.Context) error {
	var req signupOrganizerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Never log raw passwords, only their length.
	h.logger.Info().
		Str("flow", "organizer").
		Str("email", req.Email).
		Int("password_len", len(req.Password)).
		Msg("signup request")

	return h.handleSignup(c, ports.SignupInput{
		Role:              domain.RoleOrganizer,
		FullName:          req.FullName,
		Password:          req.Password,
		Email:             req.Email,
		GovIdentification: req.GovIdentification,
	})
}

// SignupAttendee creates an attendee account.
//
// @Summary      Attendee signup
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupAttendeeRequest  true  "Attendee signup details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/signup/attendee [post]
func (h *AuthHandler) SignupAttendee(c echo.Context) error {
	var req signupAttendeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "birth_date must match format 2006-01-02")
	}

	h.logger.Info().
		Str("flow", "attendee").
		Str("email", req.Email).
		Int("password_len", len(req.Password)).
		Msg("signup request")

	return h.handleSignup(c, ports.SignupInput{
		Role:              domain.RoleAttendee,
		FullName:          req.FullName,
		Password:          req.Password,
		Email:             req.Email,
		GovIdentification: req.GovIdentification,
		Phone:             req.Phone,
		BirthDate:         &birthDate,
	})
}

func (h *AuthHandler) handleSignup(c echo.Context, input ports.SignupInput) error {
	start := time.Now()

	result, err := h.signup.Signup(c.Request().Context(), input)
	if err != nil {
		if ce, ok := domain.AsConflict(err); ok {
			field := ce.Field
			if field == "" {
				field = "unknown"
			}
			metrics.SignupConflictsTotal.WithLabelValues(field).Inc()
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(input.Role)).Inc()
	metrics.TokensIssuedTotal.WithLabelValues(string(input.Role)).Inc()
	metrics.SignupDuration.WithLabelValues(string(input.Role)).Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusCreated, signupResponse{
		Token: result.Token,
		User:  result.User,
	})
}

// Me returns the authenticated user and its role-specific profile.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	related, err := h.signup.RelatedData(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		User:        user,
		RelatedData: related,
	})
}
