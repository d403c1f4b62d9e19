package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/noxel/ticketing-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs 5xx causes (full chain) server-side and returns a generic message.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		logClientError(log, he.Code, err, c)
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Conflict messages
	// may name the violated field; nothing else leaks.
	var ce *domain.ConflictError
	switch {
	case errors.As(err, &ce):
		logClientError(log, http.StatusConflict, err, c)
		return http.StatusConflict, ce.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		logClientError(log, http.StatusUnauthorized, err, c)
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		logClientError(log, http.StatusForbidden, err, c)
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrTicketNotFound):
		logClientError(log, http.StatusNotFound, err, c)
		return http.StatusNotFound, "ticket not found"
	}

	// Everything else (storage, hashing, missing signing secret) is a
	// server failure: log the real cause chain, answer generically.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func logClientError(log zerolog.Logger, status int, err error, c echo.Context) {
	log.Debug().
		Err(err).
		Int("status", status).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request rejected")
}
