// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medreminder/internal/delivery/api/middleware"
	"medreminder/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	SessionHandler    *handler.SessionHandler
	MedicationHandler *handler.MedicationHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler     *handler.HealthHandler
	sessionHandler    *handler.SessionHandler
	medicationHandler *handler.MedicationHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:     params.HealthHandler,
		sessionHandler:    params.SessionHandler,
		medicationHandler: params.MedicationHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.sessionHandler.Mount)
		sessionsGroup.DELETE("/:sessionId", r.sessionHandler.Unmount)
	}

	// Routes bound to one mounted medication screen
	screenGroup := sessionsGroup.Group("/:sessionId", r.sessionMiddleware.Resolve)
	{
		screenGroup.GET("/medications", r.medicationHandler.ListMedications)
		screenGroup.POST("/medications", r.medicationHandler.AddMedication)
		screenGroup.DELETE("/medications/:id", r.medicationHandler.RemoveMedication)

		screenGroup.GET("/form", r.medicationHandler.GetForm)
		screenGroup.PUT("/form/name", r.medicationHandler.SetName)

		screenGroup.POST("/picker/open", r.medicationHandler.OpenPicker)
		screenGroup.POST("/picker/select", r.medicationHandler.SelectTime)
		screenGroup.POST("/picker/dismiss", r.medicationHandler.DismissPicker)
	}
}
