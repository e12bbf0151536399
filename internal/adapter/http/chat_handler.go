package http

import (
	"net/http"

	chatUC "gramsetu-backend/internal/usecase/chat"

	"github.com/labstack/echo/v4"
)

type ChatHandler struct{ relay *chatUC.Relay }

func NewChatHandler(relay *chatUC.Relay) *ChatHandler { return &ChatHandler{relay: relay} }

type chatReq struct {
	Message string `json:"message" validate:"required"`
}

// Ask always answers 200: relay failures are already folded into the
// reply text.
func (h *ChatHandler) Ask(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	reply := h.relay.Ask(c.Request().Context(), req.Message)
	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}

func (h *ChatHandler) Reset(c echo.Context) error {
	h.relay.Reset()
	return c.JSON(http.StatusOK, map[string]string{"status": "conversation reset"})
}
