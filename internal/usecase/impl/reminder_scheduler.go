package impl

import (
	"context"
	"log/slog"
	"time"

	"medreminder/config"
	"medreminder/internal/domain/entity"
	"medreminder/internal/domain/service"
	"medreminder/internal/usecase"
	"medreminder/internal/util"
)

type reminderScheduler struct {
	channels usecase.ChannelUsecase
	host     service.NotificationHost
	channel  entity.ChannelConfig
	logger   *slog.Logger
}

// NewReminderScheduler creates the scheduler that arms one-shot medication reminders
func NewReminderScheduler(
	logger *slog.Logger,
	channels usecase.ChannelUsecase,
	host service.NotificationHost,
	cfg *config.ReminderConfig,
) usecase.ReminderUsecase {
	return &reminderScheduler{
		channels: channels,
		host:     host,
		channel:  channelFromConfig(cfg),
		logger:   logger,
	}
}

// ScheduleReminder waits for the channel, then asks the host to fire once at the next hour:minute.
// Channel and host failures are logged; the computed instant is returned either way.
func (s *reminderScheduler) ScheduleReminder(ctx context.Context, name string, hour, minute int, now time.Time) time.Time {
	fireAt := NextFireTime(now, hour, minute)

	logger := s.logger.With(
		slog.String("medicine", name),
		slog.String("target", util.FormatClock(hour, minute)),
	)
	logger.Info("scheduling notification at",
		slog.Time("fire_at", fireAt),
		slog.String("in", util.FormatDuration(fireAt.Sub(now))),
	)

	if err := s.channels.EnsureChannel(ctx); err != nil {
		logger.Warn("channel not ready, scheduling anyway", slog.Any("error", err))
	}

	reminder := &entity.ScheduledReminder{
		ChannelID: s.channel.ID,
		Title:     entity.ReminderTitle(name),
		Body:      entity.ReminderBody(name),
		FireAt:    fireAt,
		Flags: entity.ReminderFlags{
			AllowWhileIdle: true,
			PlaySound:      s.channel.PlaySound,
			SoundName:      s.channel.SoundName,
			Vibrate:        s.channel.Vibrate,
		},
	}

	if err := s.host.ScheduleOneShot(ctx, reminder); err != nil {
		logger.Error("failed to schedule notification", slog.Time("fire_at", fireAt), slog.Any("error", err))

		return fireAt
	}

	logger.Info("notification set", slog.Time("fire_at", fireAt))

	return fireAt
}

// NextFireTime is the first instant strictly after now whose wall clock reads hour:minute:00.
// A target equal to now rolls over to the following day.
func NextFireTime(now time.Time, hour, minute int) time.Time {
	year, month, day := now.Date()

	candidate := time.Date(year, month, day, hour, minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = time.Date(year, month, day+1, hour, minute, 0, 0, now.Location())
	}

	return candidate
}
