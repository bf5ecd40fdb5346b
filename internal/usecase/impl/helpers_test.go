package impl

import (
	"io"
	"log/slog"

	"medreminder/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestReminderConfig() *config.ReminderConfig {
	return &config.ReminderConfig{
		Channel: config.ChannelConfig{
			ID:          "medication-reminders",
			Name:        "Medication Reminders",
			Description: "A channel to remind you to take medicine",
			SoundName:   "default",
			Importance:  4,
		},
		Dispatcher: "log",
	}
}
