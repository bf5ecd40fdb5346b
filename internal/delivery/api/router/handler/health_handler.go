package handler

import (
	"net/http"

	"medreminder/internal/delivery/api/response"
	"medreminder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
}

// HealthHandler reports liveness
type HealthHandler struct {
	sessionUC usecase.SessionUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{sessionUC: params.SessionUC}
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthResponse{
		Status:   "ok",
		Sessions: h.sessionUC.Count(),
	})
}
