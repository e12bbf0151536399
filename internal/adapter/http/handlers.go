package http

import (
	"errors"
	"net/http"
	"time"

	appDomain "gramsetu-backend/internal/domain/application"
	repayDomain "gramsetu-backend/internal/domain/repayment"
	userDomain "gramsetu-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// writeDomainError maps domain failures onto HTTP statuses.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appDomain.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, repayDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, appDomain.ErrInvalidTransition),
		errors.Is(err, repayDomain.ErrNotActive),
		errors.Is(err, userDomain.ErrIdentifierTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, userDomain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
