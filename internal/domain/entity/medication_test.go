package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		hour   int
		minute int
		want   Category
	}{
		{name: "05:00 opens morning", hour: 5, minute: 0, want: CategoryMorning},
		{name: "11:59 still morning", hour: 11, minute: 59, want: CategoryMorning},
		{name: "12:00 opens afternoon", hour: 12, minute: 0, want: CategoryAfternoon},
		{name: "17:59 still afternoon", hour: 17, minute: 59, want: CategoryAfternoon},
		{name: "18:00 opens night", hour: 18, minute: 0, want: CategoryNight},
		{name: "04:59 still night", hour: 4, minute: 59, want: CategoryNight},
		{name: "midnight is night", hour: 0, minute: 0, want: CategoryNight},
		{name: "23:59 is night", hour: 23, minute: 59, want: CategoryNight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry := NewMedicationEntry("Aspirin", time.Date(2026, 3, 1, tt.hour, tt.minute, 0, 0, time.UTC))
			assert.Equal(t, tt.want, entry.Category())
		})
	}
}

func TestCategorize_PartitionsEveryClockValue(t *testing.T) {
	t.Parallel()

	entries := make([]*MedicationEntry, 0, 24*60)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			entries = append(entries, NewMedicationEntry("med", time.Date(2026, 3, 1, hour, minute, 0, 0, time.UTC)))
		}
	}

	view := Categorize(entries)
	require.Equal(t, len(entries), view.Len())

	seen := make(map[uuid.UUID]int, len(entries))
	for _, category := range Categories {
		for _, entry := range view.Bucket(category) {
			seen[entry.ID]++
			assert.Equal(t, category, entry.Category())
		}
	}

	for _, entry := range entries {
		assert.Equal(t, 1, seen[entry.ID], "entry %02d:%02d must be in exactly one bucket", entry.Hour, entry.Minute)
	}
}

func TestCategorize_KeepsInsertionOrderWithinBucket(t *testing.T) {
	t.Parallel()

	late := NewMedicationEntry("late", time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC))
	early := NewMedicationEntry("early", time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC))
	night := NewMedicationEntry("night", time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC))

	view := Categorize([]*MedicationEntry{late, night, early})

	assert.Equal(t, []*MedicationEntry{late, early}, view.Morning)
	assert.Empty(t, view.Afternoon)
	assert.Equal(t, []*MedicationEntry{night}, view.Night)
}

func TestCategorize_EmptyBucketsAreNotNil(t *testing.T) {
	t.Parallel()

	view := Categorize(nil)

	assert.NotNil(t, view.Morning)
	assert.NotNil(t, view.Afternoon)
	assert.NotNil(t, view.Night)
	assert.Zero(t, view.Len())
}

func TestNewMedicationEntry_DerivesClockAndDisplay(t *testing.T) {
	t.Parallel()

	entry := NewMedicationEntry("Metformin", time.Date(2026, 3, 1, 21, 5, 42, 0, time.UTC))

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, "Metformin", entry.Name)
	assert.Equal(t, 21, entry.Hour)
	assert.Equal(t, 5, entry.Minute)
	assert.Equal(t, "09:05 PM", entry.DisplayTime)

	morning := NewMedicationEntry("Vitamin D", time.Date(2026, 3, 1, 7, 30, 0, 0, time.UTC))
	assert.Equal(t, "07:30 AM", morning.DisplayTime)
	assert.NotEqual(t, entry.ID, morning.ID)
}

func TestReminderTexts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Reminder for Aspirin", ReminderTitle("Aspirin"))
	assert.Equal(t, "Hey! It's time to take your Aspirin. Stay healthy! 💊", ReminderBody("Aspirin"))
}
