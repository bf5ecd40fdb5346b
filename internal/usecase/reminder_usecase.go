package usecase

import (
	"context"
	"time"
)

// ReminderUsecase arms one-shot medication reminders.
type ReminderUsecase interface {
	// ScheduleReminder arms a notification for the next occurrence of hour:minute after now
	// and returns that instant. The instant is informational and cannot be used to cancel.
	ScheduleReminder(ctx context.Context, name string, hour, minute int, now time.Time) time.Time
}
