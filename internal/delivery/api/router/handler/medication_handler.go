package handler

import (
	"log/slog"
	"net/http"
	"time"

	"medreminder/internal/delivery/api/middleware"
	"medreminder/internal/delivery/api/response"
	"medreminder/internal/delivery/api/validator"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/service"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MedicationHandlerParams holds dependencies for MedicationHandler, injected by Fx.
type MedicationHandlerParams struct {
	fx.In

	Clock  service.Clock
	Logger *slog.Logger
}

// MedicationHandler serves the medication screen of a mounted session
type MedicationHandler struct {
	clock  service.Clock
	logger *slog.Logger
}

// NewMedicationHandler is the constructor for MedicationHandler
func NewMedicationHandler(params MedicationHandlerParams) *MedicationHandler {
	return &MedicationHandler{
		clock:  params.Clock,
		logger: params.Logger,
	}
}

// AddMedicationRequest adds a medicine directly. An empty body submits the drafted form instead.
type AddMedicationRequest struct {
	Name *string `json:"name" validate:"required_with=Time"`
	Time *string `json:"time" validate:"required_with=Name,omitempty,clock"`
}

// SetNameRequest edits the drafted medicine name
type SetNameRequest struct {
	Name string `json:"name"`
}

// SelectTimeRequest carries the time picked in the picker
type SelectTimeRequest struct {
	Time string `json:"time" validate:"required,clock"`
}

// ListMedications handles GET /medications
func (h *MedicationHandler) ListMedications(c echo.Context) error {
	controller, err := controllerOf(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, controller.Medications())
}

// AddMedication handles POST /medications
func (h *MedicationHandler) AddMedication(c echo.Context) error {
	controller, err := controllerOf(c)
	if err != nil {
		return err
	}

	var req AddMedicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medication input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	submitted := req.Name == nil && req.Time == nil
	if submitted {
		result := controller.SubmitForm(ctx)
		if !result.Accepted {
			return response.HandleAppError(c, domainerrors.ErrMedicationNameRequired)
		}

		return response.Success(c, http.StatusCreated, result)
	}

	selected, err := h.todayAt(*req.Time)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := controller.AddMedicine(ctx, *req.Name, selected)
	if !result.Accepted {
		return response.HandleAppError(c, domainerrors.ErrMedicationNameRequired)
	}

	return response.Success(c, http.StatusCreated, result)
}

// RemoveMedication handles DELETE /medications/:id. Unknown IDs are accepted.
func (h *MedicationHandler) RemoveMedication(c echo.Context) error {
	controller, err := controllerOf(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_MEDICATION_ID", "id must be a UUID")
	}

	controller.RemoveMedicine(c.Request().Context(), id)

	return response.NoContent(c)
}

// GetForm handles GET /form
func (h *MedicationHandler) GetForm(c echo.Context) error {
	controller, err := controllerOf(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, controller.Form())
}

// SetName handles PUT /form/name
func (h *MedicationHandler) SetName(c echo.Context) error {
	controller, err := controllerOf(c)
	if err != nil {
		return err
	}

	var req SetNameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid name input")
	}

	controller.SetName(req.Name)

	return response.Success(c, http.StatusOK, controller.Form())
}

// OpenPicker handles POST /picker/open
func (h *MedicationHandler) OpenPicker(c echo.Context) error {
	controller, err := controllerOf(c)
	if err != nil {
		return err
	}

	controller.OpenPicker()

	return response.Success(c, http.StatusOK, controller.Form())
}

// SelectTime handles POST /picker/select
func (h *MedicationHandler) SelectTime(c echo.Context) error {
	controller, err := controllerOf(c)
	if err != nil {
		return err
	}

	var req SelectTimeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid time input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	selected, err := h.todayAt(req.Time)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	controller.SelectTime(selected)

	return response.Success(c, http.StatusOK, controller.Form())
}

// DismissPicker handles POST /picker/dismiss
func (h *MedicationHandler) DismissPicker(c echo.Context) error {
	controller, err := controllerOf(c)
	if err != nil {
		return err
	}

	controller.DismissPicker()

	return response.Success(c, http.StatusOK, controller.Form())
}

// todayAt places an "HH:MM" clock value on today's date in the local zone
func (h *MedicationHandler) todayAt(clock string) (time.Time, error) {
	parsed, err := time.Parse(validator.ClockLayout, clock)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("time must match " + validator.ClockLayout)
	}

	now := h.clock.Now()
	year, month, day := now.Date()

	return time.Date(year, month, day, parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}

func controllerOf(c echo.Context) (usecase.MedicationUsecase, error) {
	controller, ok := middleware.GetMedicationController(c)
	if !ok {
		return nil, errors.New("medication route registered without session middleware")
	}

	return controller, nil
}
