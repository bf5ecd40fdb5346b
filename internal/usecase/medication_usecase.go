package usecase

import (
	"context"
	"time"

	"medreminder/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicationUsecase is what a medication screen binds to: the entry list, the draft form and the time picker.
type MedicationUsecase interface {
	// AddMedicine registers a medicine and arms its reminder. Blank names are rejected silently.
	AddMedicine(ctx context.Context, name string, selectedTime time.Time) entity.AddResult

	// SubmitForm adds the medicine currently drafted in the form.
	SubmitForm(ctx context.Context) entity.AddResult

	// RemoveMedicine drops an entry by ID. The armed reminder is left in place.
	RemoveMedicine(ctx context.Context, id uuid.UUID)

	// Medications returns the categorized view of all entries.
	Medications() entity.CategorizedMedications

	SetName(name string)
	OpenPicker()
	SelectTime(selected time.Time)
	DismissPicker()

	// Form returns a snapshot of the draft form.
	Form() entity.MedicationForm
}
