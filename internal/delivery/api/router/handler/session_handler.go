package handler

import (
	"log/slog"
	"net/http"

	"medreminder/internal/delivery/api/middleware"
	"medreminder/internal/delivery/api/response"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler mounts and unmounts medication screens
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SessionResponse identifies a mounted screen
type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

// Mount handles POST /api/v1/sessions
func (h *SessionHandler) Mount(c echo.Context) error {
	return response.Success(c, http.StatusCreated, SessionResponse{SessionID: h.sessionUC.Mount()})
}

// Unmount handles DELETE /api/v1/sessions/:sessionId
func (h *SessionHandler) Unmount(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param(middleware.SessionIDParam))
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "sessionId must be a UUID")
	}

	if err := h.sessionUC.Unmount(sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
