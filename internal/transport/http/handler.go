// Package http provides the HTTP server and handlers for the support
// assistant API.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xiaot623/support-assistant/internal/domain"
	"github.com/xiaot623/support-assistant/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/chat", h.Chat)
	e.GET("/api/conversations/:sessionId", h.GetConversation)
	e.GET("/api/sessions", h.ListSessions)
	e.GET("/api/health", h.Health)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Route not found."})
	})
}

// ChatRequest is the submit-turn request body.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// Chat submits one conversation turn.
// POST /api/chat
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}

	result, err := h.service.HandleTurn(c.Request().Context(), req.SessionID, req.Message)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetConversation returns the full message history for a session.
// GET /api/conversations/:sessionId
func (h *Handler) GetConversation(c echo.Context) error {
	conversation, err := h.service.GetConversation(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, conversation)
}

// ListSessions lists all sessions with message counts.
// GET /api/sessions
func (h *Handler) ListSessions(c echo.Context) error {
	sessions, err := h.service.ListSessions(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sessions": sessions,
	})
}

// Health returns health status.
// GET /api/health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// writeError translates the error taxonomy into a structured payload. No
// internal details reach the client for server-side failures.
func (h *Handler) writeError(c echo.Context, err error) error {
	var validationErr *domain.ValidationError
	var gatewayErr *domain.GatewayError

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Error() + "."})
	case errors.As(err, &gatewayErr):
		c.Logger().Errorf("gateway error: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "LLM service error. Please try again."})
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found."})
	default:
		c.Logger().Errorf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error."})
	}
}
