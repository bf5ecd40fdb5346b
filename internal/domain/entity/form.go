package entity

import "time"

// PickerState tracks whether the time picker of a screen is open.
type PickerState string

const (
	PickerIdle        PickerState = "idle"
	PickerPickingTime PickerState = "picking_time"
)

// MedicationForm is the input form a screen binds to.
type MedicationForm struct {
	Name         string      `json:"name"`
	SelectedTime time.Time   `json:"selected_time"`
	DisplayTime  string      `json:"display_time"`
	Picker       PickerState `json:"picker"`
}
