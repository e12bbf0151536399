package http

import (
	"net/http"

	userUC "gramsetu-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ users *userUC.Usecase }

func NewAuthHandler(users *userUC.Usecase) *AuthHandler { return &AuthHandler{users: users} }

type registerReq struct {
	Identifier  string `json:"identifier"   validate:"required"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"        validate:"omitempty,email"`
	Role        string `json:"role"         validate:"required,role"`
	Password    string `json:"password"     validate:"required,min=6"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.users.Register(c.Request().Context(), userUC.RegisterInput{
		Identifier:  req.Identifier,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Role:        req.Role,
		Password:    req.Password,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type loginReq struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.users.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
