package http

import (
	"net/http"

	appDomain "gramsetu-backend/internal/domain/application"
	appUC "gramsetu-backend/internal/usecase/application"
	repayUC "gramsetu-backend/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	apps *appUC.Usecase
	pays *repayUC.Usecase
}

func NewLoanHandler(apps *appUC.Usecase, pays *repayUC.Usecase) *LoanHandler {
	return &LoanHandler{apps: apps, pays: pays}
}

type createLoanReq struct {
	OwnerID        string   `json:"owner_id"        validate:"required,hex32"`
	OwnerName      string   `json:"owner_name"`
	Amount         int64    `json:"amount"          validate:"omitempty,gte=1"`
	Purpose        string   `json:"purpose"         validate:"omitempty,purpose"`
	TermMonths     int      `json:"term_months"     validate:"omitempty,gte=1,lte=360"`
	InterestRate   float64  `json:"interest_rate"   validate:"omitempty,gte=0"`
	MonthlyIncome  int64    `json:"monthly_income"  validate:"omitempty,gte=0"`
	EmploymentType string   `json:"employment_type"`
	Documents      []string `json:"documents"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.apps.Create(c.Request().Context(), appUC.CreateInput{
		OwnerID:        req.OwnerID,
		OwnerName:      req.OwnerName,
		Amount:         req.Amount,
		Purpose:        req.Purpose,
		TermMonths:     req.TermMonths,
		InterestRate:   req.InterestRate,
		MonthlyIncome:  req.MonthlyIncome,
		EmploymentType: req.EmploymentType,
		Documents:      req.Documents,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.apps.List(c.Request().Context(), c.QueryParam("owner_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": dtos})
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.apps.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required,loanstatus"`
}

func (h *LoanHandler) UpdateStatus(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.apps.UpdateStatus(c.Request().Context(), loanID, appDomain.Status(req.Status))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetSchedule(c echo.Context) error {
	dto, err := h.pays.Schedule(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) PayEMI(c echo.Context) error {
	dto, err := h.pays.PayEMI(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
