package middleware

import (
	deliverycontext "medreminder/internal/delivery/context"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionIDParam is the path parameter naming the mounted screen session
	SessionIDParam = "sessionId"

	controllerKey = "medication_controller"
)

// SessionMiddleware resolves the :sessionId path parameter to its controller
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewSessionMiddleware creates a new session resolving middleware
func NewSessionMiddleware(sessions usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Resolve loads the session controller or fails with 400/404
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, err := uuid.Parse(c.Param(SessionIDParam))
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("sessionId must be a UUID")
		}

		controller, err := m.sessions.Get(sessionID)
		if err != nil {
			return err
		}

		c.Set(controllerKey, controller)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithSessionID(c.Request().Context(), sessionID)))

		return next(c)
	}
}

// GetMedicationController returns the controller stored by Resolve
func GetMedicationController(c echo.Context) (usecase.MedicationUsecase, bool) {
	controller, ok := c.Get(controllerKey).(usecase.MedicationUsecase)

	return controller, ok
}
