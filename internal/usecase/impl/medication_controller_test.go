package impl

import (
	"context"
	"testing"
	"time"

	"medreminder/internal/domain/entity"
	"medreminder/internal/domain/repository"
	"medreminder/internal/infra/persistence/memory"
	mockRepo "medreminder/internal/mocks/repository"
	mockSvc "medreminder/internal/mocks/service"
	mockUsecase "medreminder/internal/mocks/usecase"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var controllerNow = time.Date(2026, 3, 1, 14, 0, 0, 0, time.Local)

func createTestMedicationController(t *testing.T) (
	usecase.MedicationUsecase,
	repository.MedicationStore,
	*mockUsecase.MockReminderUsecase,
) {
	store := memory.NewMedicationStore()
	reminders := mockUsecase.NewMockReminderUsecase(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(controllerNow)

	return NewMedicationController(newTestLogger(), store, reminders, clock), store, reminders
}

func TestMedicationController_AddMedicine_Success(t *testing.T) {
	controller, store, reminders := createTestMedicationController(t)
	ctx := context.Background()
	picked := time.Date(2026, 3, 1, 21, 5, 0, 0, time.Local)
	fireAt := time.Date(2026, 3, 1, 21, 5, 0, 0, time.Local)

	controller.SetName("Aspirin")
	reminders.EXPECT().ScheduleReminder(ctx, "Aspirin", 21, 5, controllerNow).Return(fireAt).Once()

	result := controller.AddMedicine(ctx, "Aspirin", picked)

	require.True(t, result.Accepted)
	require.NotNil(t, result.Entry)
	assert.Equal(t, "Aspirin", result.Entry.Name)
	assert.Equal(t, "09:05 PM", result.Entry.DisplayTime)
	assert.Equal(t, entity.CategoryNight, result.Entry.Category())
	assert.True(t, fireAt.Equal(result.FireAt))

	assert.Equal(t, []*entity.MedicationEntry{result.Entry}, store.List())
	assert.Equal(t, []*entity.MedicationEntry{result.Entry}, controller.Medications().Night)

	form := controller.Form()
	assert.Empty(t, form.Name)
	assert.True(t, controllerNow.Equal(form.SelectedTime))
}

func TestMedicationController_AddMedicine_BlankNameRejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "spaces", input: "   "},
		{name: "tabs and newlines", input: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, store, reminders := createTestMedicationController(t)
			ctx := context.Background()
			selected := time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local)

			controller.SetName(tt.input)
			controller.SelectTime(selected)

			result := controller.AddMedicine(ctx, tt.input, selected)

			assert.False(t, result.Accepted)
			assert.Nil(t, result.Entry)
			assert.True(t, result.FireAt.IsZero())
			assert.Empty(t, store.List())
			reminders.AssertNumberOfCalls(t, "ScheduleReminder", 0)

			form := controller.Form()
			assert.Equal(t, tt.input, form.Name)
			assert.True(t, selected.Equal(form.SelectedTime))
		})
	}
}

func TestMedicationController_AddMedicine_KeepsNameAsEntered(t *testing.T) {
	controller, _, reminders := createTestMedicationController(t)
	ctx := context.Background()

	reminders.EXPECT().ScheduleReminder(ctx, "  Vitamin D ", 7, 30, controllerNow).Return(controllerNow).Once()

	result := controller.AddMedicine(ctx, "  Vitamin D ", time.Date(2026, 3, 1, 7, 30, 0, 0, time.Local))

	require.True(t, result.Accepted)
	assert.Equal(t, "  Vitamin D ", result.Entry.Name)
}

func TestMedicationController_AddMedicine_AllowsDuplicates(t *testing.T) {
	controller, store, reminders := createTestMedicationController(t)
	ctx := context.Background()
	picked := time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local)

	reminders.EXPECT().ScheduleReminder(ctx, "Aspirin", 8, 0, controllerNow).Return(picked.AddDate(0, 0, 1)).Twice()

	first := controller.AddMedicine(ctx, "Aspirin", picked)
	second := controller.AddMedicine(ctx, "Aspirin", picked)

	require.True(t, first.Accepted)
	require.True(t, second.Accepted)
	assert.NotEqual(t, first.Entry.ID, second.Entry.ID)
	assert.Len(t, store.List(), 2)
}

func TestMedicationController_SubmitForm_UsesDraft(t *testing.T) {
	controller, _, reminders := createTestMedicationController(t)
	ctx := context.Background()
	picked := time.Date(2026, 3, 1, 12, 15, 0, 0, time.Local)

	controller.SetName("Iron")
	controller.OpenPicker()
	controller.SelectTime(picked)

	reminders.EXPECT().ScheduleReminder(ctx, "Iron", 12, 15, controllerNow).Return(picked.AddDate(0, 0, 1)).Once()

	result := controller.SubmitForm(ctx)

	require.True(t, result.Accepted)
	assert.Equal(t, entity.CategoryAfternoon, result.Entry.Category())
	assert.Equal(t, "12:15 PM", result.Entry.DisplayTime)
	assert.Empty(t, controller.Form().Name)
}

func TestMedicationController_SubmitForm_EmptyDraftRejected(t *testing.T) {
	controller, store, reminders := createTestMedicationController(t)

	result := controller.SubmitForm(context.Background())

	assert.False(t, result.Accepted)
	assert.Empty(t, store.List())
	reminders.AssertNumberOfCalls(t, "ScheduleReminder", 0)
}

func TestMedicationController_RemoveMedicine(t *testing.T) {
	controller, store, reminders := createTestMedicationController(t)
	ctx := context.Background()

	reminders.EXPECT().ScheduleReminder(ctx, "A", 8, 0, controllerNow).Return(controllerNow).Once()
	reminders.EXPECT().ScheduleReminder(ctx, "B", 13, 0, controllerNow).Return(controllerNow).Once()
	reminders.EXPECT().ScheduleReminder(ctx, "C", 19, 0, controllerNow).Return(controllerNow).Once()

	a := controller.AddMedicine(ctx, "A", time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local))
	b := controller.AddMedicine(ctx, "B", time.Date(2026, 3, 1, 13, 0, 0, 0, time.Local))
	c := controller.AddMedicine(ctx, "C", time.Date(2026, 3, 1, 19, 0, 0, 0, time.Local))

	controller.RemoveMedicine(ctx, b.Entry.ID)
	assert.Equal(t, []*entity.MedicationEntry{a.Entry, c.Entry}, store.List())

	controller.RemoveMedicine(ctx, uuid.New())
	assert.Equal(t, []*entity.MedicationEntry{a.Entry, c.Entry}, store.List())

	view := controller.Medications()
	assert.Empty(t, view.Afternoon)
	assert.Equal(t, 2, view.Len())
	reminders.AssertNumberOfCalls(t, "ScheduleReminder", 3)
}

func TestMedicationController_RemoveMedicine_DelegatesToStore(t *testing.T) {
	store := mockRepo.NewMockMedicationStore(t)
	reminders := mockUsecase.NewMockReminderUsecase(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(controllerNow)

	controller := NewMedicationController(newTestLogger(), store, reminders, clock)
	id := uuid.New()

	store.EXPECT().Remove(id).Once()

	controller.RemoveMedicine(context.Background(), id)
}

func TestMedicationController_PickerStateMachine(t *testing.T) {
	controller, _, _ := createTestMedicationController(t)

	form := controller.Form()
	assert.Equal(t, entity.PickerIdle, form.Picker)
	assert.True(t, controllerNow.Equal(form.SelectedTime))
	assert.Equal(t, "02:00 PM", form.DisplayTime)

	controller.OpenPicker()
	assert.Equal(t, entity.PickerPickingTime, controller.Form().Picker)

	picked := time.Date(2026, 3, 1, 6, 45, 0, 0, time.Local)
	controller.SelectTime(picked)
	form = controller.Form()
	assert.Equal(t, entity.PickerIdle, form.Picker)
	assert.True(t, picked.Equal(form.SelectedTime))
	assert.Equal(t, "06:45 AM", form.DisplayTime)

	controller.OpenPicker()
	controller.DismissPicker()
	form = controller.Form()
	assert.Equal(t, entity.PickerIdle, form.Picker)
	assert.True(t, picked.Equal(form.SelectedTime))

	controller.OpenPicker()
	controller.SelectTime(time.Time{})
	form = controller.Form()
	assert.Equal(t, entity.PickerIdle, form.Picker)
	assert.True(t, picked.Equal(form.SelectedTime))
}
