package entity

import (
	"fmt"
	"time"
)

// ImportanceHigh is the channel importance level used for medication reminders.
const ImportanceHigh = 4

// ChannelConfig is the host's named delivery category: sound, vibration and importance policy.
type ChannelConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SoundName   string `json:"sound_name"`
	PlaySound   bool   `json:"play_sound"`
	Vibrate     bool   `json:"vibrate"`
	Importance  int    `json:"importance"`
}

// ReminderFlags are the delivery options requested for a one-shot notification.
type ReminderFlags struct {
	AllowWhileIdle bool   `json:"allow_while_idle"`
	PlaySound      bool   `json:"play_sound"`
	SoundName      string `json:"sound_name"`
	Vibrate        bool   `json:"vibrate"`
}

// ScheduledReminder is a single alert handed to the host for delivery at FireAt.
// Once armed it is owned by the host; the engine keeps no reference to it.
type ScheduledReminder struct {
	ChannelID string        `json:"channel_id"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	FireAt    time.Time     `json:"fire_at"`
	Flags     ReminderFlags `json:"flags"`
}

// ReminderTitle is the notification title for a medicine.
func ReminderTitle(name string) string {
	return fmt.Sprintf("Reminder for %s", name)
}

// ReminderBody is the notification body for a medicine.
func ReminderBody(name string) string {
	return fmt.Sprintf("Hey! It's time to take your %s. Stay healthy! 💊", name)
}
