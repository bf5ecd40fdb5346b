// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DisplayTimeLayout renders a time of day as two-digit 12-hour clock, e.g. "09:05 PM".
const DisplayTimeLayout = "03:04 PM"

// MedicationEntry is one user-registered medicine plus its target time of day.
type MedicationEntry struct {
	ID          uuid.UUID `json:"id"`           // Generated at creation, never changes.
	Name        string    `json:"name"`         // Display name as entered by the user.
	Hour        int       `json:"hour"`         // Target hour, 0-23.
	Minute      int       `json:"minute"`       // Target minute, 0-59.
	DisplayTime string    `json:"display_time"` // 12-hour rendering captured at creation.
}

// NewMedicationEntry builds an entry from a name and the picked time value.
// Only the wall-clock components of selected are kept.
func NewMedicationEntry(name string, selected time.Time) *MedicationEntry {
	return &MedicationEntry{
		ID:          uuid.New(),
		Name:        name,
		Hour:        selected.Hour(),
		Minute:      selected.Minute(),
		DisplayTime: selected.Format(DisplayTimeLayout),
	}
}

// Category returns the time-of-day bucket of the entry.
func (m *MedicationEntry) Category() Category {
	return CategoryOf(m.Hour)
}

// Category is a time-of-day bucket derived from an entry's hour.
type Category string

const (
	CategoryMorning   Category = "morning"   // [05:00, 12:00)
	CategoryAfternoon Category = "afternoon" // [12:00, 18:00)
	CategoryNight     Category = "night"     // [18:00, 24:00) and [00:00, 05:00)
)

// Categories lists the buckets in display order.
var Categories = []Category{CategoryMorning, CategoryAfternoon, CategoryNight}

// CategoryOf maps an hour of day to its bucket.
func CategoryOf(hour int) Category {
	switch {
	case hour >= 5 && hour < 12:
		return CategoryMorning
	case hour >= 12 && hour < 18:
		return CategoryAfternoon
	default:
		return CategoryNight
	}
}

// CategorizedMedications is the three-bucket view over a medication collection.
// Each bucket keeps insertion order.
type CategorizedMedications struct {
	Morning   []*MedicationEntry `json:"morning"`
	Afternoon []*MedicationEntry `json:"afternoon"`
	Night     []*MedicationEntry `json:"night"`
}

// Categorize partitions entries into their buckets.
func Categorize(entries []*MedicationEntry) CategorizedMedications {
	view := CategorizedMedications{
		Morning:   make([]*MedicationEntry, 0),
		Afternoon: make([]*MedicationEntry, 0),
		Night:     make([]*MedicationEntry, 0),
	}

	for _, entry := range entries {
		switch entry.Category() {
		case CategoryMorning:
			view.Morning = append(view.Morning, entry)
		case CategoryAfternoon:
			view.Afternoon = append(view.Afternoon, entry)
		default:
			view.Night = append(view.Night, entry)
		}
	}

	return view
}

// Bucket returns the entries of a single category.
func (v CategorizedMedications) Bucket(category Category) []*MedicationEntry {
	switch category {
	case CategoryMorning:
		return v.Morning
	case CategoryAfternoon:
		return v.Afternoon
	case CategoryNight:
		return v.Night
	default:
		return nil
	}
}

// Len is the total number of entries across all buckets.
func (v CategorizedMedications) Len() int {
	return len(v.Morning) + len(v.Afternoon) + len(v.Night)
}

// AddResult reports the outcome of submitting a medicine.
type AddResult struct {
	Accepted bool             `json:"accepted"`
	Entry    *MedicationEntry `json:"entry,omitempty"`
	FireAt   time.Time        `json:"fire_at,omitzero"` // Next instant the reminder is armed for.
}
