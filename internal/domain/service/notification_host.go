package service

import (
	"context"

	"medreminder/internal/domain/entity"
)

// NotificationHost is the local-notification subsystem the engine drives.
// Every call is a round-trip into the host and may block until it answers.
type NotificationHost interface {
	// ChannelExists reports whether a channel with the given ID is registered
	ChannelExists(ctx context.Context, channelID string) (bool, error)

	// CreateChannel registers a channel and reports whether the host accepted it
	CreateChannel(ctx context.Context, channel entity.ChannelConfig) (bool, error)

	// ScheduleOneShot arms a single notification to fire at reminder.FireAt.
	// No handle is returned; the host owns the pending notification.
	ScheduleOneShot(ctx context.Context, reminder *entity.ScheduledReminder) error
}

// ReminderDispatcher delivers a reminder at the moment the host fires it
type ReminderDispatcher interface {
	Dispatch(ctx context.Context, reminder *entity.ScheduledReminder) error
}
