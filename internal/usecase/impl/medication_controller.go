package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"medreminder/internal/domain/entity"
	"medreminder/internal/domain/repository"
	"medreminder/internal/domain/service"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
)

type medicationController struct {
	store     repository.MedicationStore
	reminders usecase.ReminderUsecase
	clock     service.Clock
	logger    *slog.Logger

	// mu serializes every operation of one screen, including the scheduling round-trip.
	mu           sync.Mutex
	name         string
	selectedTime time.Time
	picker       entity.PickerState
}

// NewMedicationController creates the controller a single medication screen binds to
func NewMedicationController(
	logger *slog.Logger,
	store repository.MedicationStore,
	reminders usecase.ReminderUsecase,
	clock service.Clock,
) usecase.MedicationUsecase {
	return &medicationController{
		store:        store,
		reminders:    reminders,
		clock:        clock,
		logger:       logger,
		selectedTime: clock.Now(),
		picker:       entity.PickerIdle,
	}
}

// AddMedicine stores the entry and arms its reminder. A name that is blank after trimming
// leaves the store, the form and the host untouched.
func (c *medicationController) AddMedicine(ctx context.Context, name string, selectedTime time.Time) entity.AddResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.add(ctx, name, selectedTime)
}

// SubmitForm adds whatever the form currently holds.
func (c *medicationController) SubmitForm(ctx context.Context) entity.AddResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.add(ctx, c.name, c.selectedTime)
}

func (c *medicationController) add(ctx context.Context, name string, selectedTime time.Time) entity.AddResult {
	if strings.TrimSpace(name) == "" {
		c.logger.Debug("rejected medicine with blank name")

		return entity.AddResult{Accepted: false}
	}

	entry := entity.NewMedicationEntry(name, selectedTime)
	c.store.Add(entry)

	now := c.clock.Now()
	fireAt := c.reminders.ScheduleReminder(ctx, entry.Name, entry.Hour, entry.Minute, now)

	c.name = ""
	c.selectedTime = now

	c.logger.Info("medicine added",
		slog.String("entry_id", entry.ID.String()),
		slog.String("display_time", entry.DisplayTime),
		slog.String("category", string(entry.Category())),
	)

	return entity.AddResult{Accepted: true, Entry: entry, FireAt: fireAt}
}

// RemoveMedicine only drops the entry from the store; a reminder already armed for it still fires.
func (c *medicationController) RemoveMedicine(_ context.Context, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Remove(id)
}

func (c *medicationController) Medications() entity.CategorizedMedications {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.ByCategory()
}

func (c *medicationController) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.name = name
}

func (c *medicationController) OpenPicker() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.picker = entity.PickerPickingTime
}

// SelectTime closes the picker and keeps the picked time. A zero time counts as no selection.
func (c *medicationController) SelectTime(selected time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.picker = entity.PickerIdle
	if !selected.IsZero() {
		c.selectedTime = selected
	}
}

// DismissPicker closes the picker without touching the selected time.
func (c *medicationController) DismissPicker() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.picker = entity.PickerIdle
}

func (c *medicationController) Form() entity.MedicationForm {
	c.mu.Lock()
	defer c.mu.Unlock()

	return entity.MedicationForm{
		Name:         c.name,
		SelectedTime: c.selectedTime,
		DisplayTime:  c.selectedTime.Format(entity.DisplayTimeLayout),
		Picker:       c.picker,
	}
}
