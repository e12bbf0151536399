package http

import (
	"net/http"

	userDomain "gramsetu-backend/internal/domain/user"
	dashUC "gramsetu-backend/internal/usecase/dashboard"
	scoreUC "gramsetu-backend/internal/usecase/score"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	stats  *dashUC.Usecase
	scores *scoreUC.Generator
}

func NewDashboardHandler(stats *dashUC.Usecase, scores *scoreUC.Generator) *DashboardHandler {
	return &DashboardHandler{stats: stats, scores: scores}
}

func (h *DashboardHandler) GetStats(c echo.Context) error {
	role := userDomain.Role(c.QueryParam("role"))
	if !userDomain.ValidRole(role) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role must be lender or borrower"})
	}

	stats, err := h.stats.Stats(c.Request().Context(), role, c.QueryParam("owner_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetCreditScore(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
	}
	return c.JSON(http.StatusOK, h.scores.For(userID))
}
