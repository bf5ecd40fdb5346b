package notification

import (
	"context"
	"log/slog"

	"medreminder/config"
	"medreminder/internal/domain/constants"
	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const pushPriorityHigh = "high"

// logDispatcher writes fired reminders to the log
type logDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher creates a dispatcher that only logs fired reminders
func NewLogDispatcher(logger *slog.Logger) service.ReminderDispatcher {
	return &logDispatcher{logger: logger}
}

func (d *logDispatcher) Dispatch(_ context.Context, reminder *entity.ScheduledReminder) error {
	d.logger.Info("reminder fired",
		slog.String("channel_id", reminder.ChannelID),
		slog.String("title", reminder.Title),
		slog.String("body", reminder.Body),
		slog.Time("fire_at", reminder.FireAt),
		slog.Bool("play_sound", reminder.Flags.PlaySound),
		slog.Bool("vibrate", reminder.Flags.Vibrate),
	)

	return nil
}

// pushDispatcher sends fired reminders to the companion devices through FCM
type pushDispatcher struct {
	logger  *slog.Logger
	pusher  service.NotificationService
	tokens  []string
	channel entity.ChannelConfig
}

// NewPushDispatcher creates a dispatcher pushing to the given device tokens
func NewPushDispatcher(
	logger *slog.Logger,
	pusher service.NotificationService,
	tokens []string,
	channel entity.ChannelConfig,
) service.ReminderDispatcher {
	return &pushDispatcher{
		logger:  logger,
		pusher:  pusher,
		tokens:  tokens,
		channel: channel,
	}
}

func (d *pushDispatcher) Dispatch(ctx context.Context, reminder *entity.ScheduledReminder) error {
	if len(d.tokens) == 0 {
		d.logger.Warn("no device tokens configured, reminder not pushed", slog.String("title", reminder.Title))

		return nil
	}

	result, err := d.pusher.SendReminder(ctx, d.tokens, d.channel, reminder)
	if err != nil {
		return domainerrors.ErrReminderDispatchFailed.WithDetails(err.Error())
	}

	if len(result.InvalidTokens) > 0 {
		d.logger.Warn("devices rejected reminder token", slog.Int("invalid_tokens", len(result.InvalidTokens)))
	}

	d.logger.Info("reminder pushed",
		slog.String("title", reminder.Title),
		slog.Int("success_count", result.SuccessCount),
		slog.Int("failure_count", result.FailureCount),
	)

	return nil
}

// pubsubDispatcher hands fired reminders to the dispatch worker through the event publisher
type pubsubDispatcher struct {
	logger    *slog.Logger
	publisher service.EventPublisher
}

// NewPubSubDispatcher creates a dispatcher publishing ReminderEvents
func NewPubSubDispatcher(logger *slog.Logger, publisher service.EventPublisher) service.ReminderDispatcher {
	return &pubsubDispatcher{
		logger:    logger,
		publisher: publisher,
	}
}

func (d *pubsubDispatcher) Dispatch(ctx context.Context, reminder *entity.ScheduledReminder) error {
	event := NewReminderEvent(reminder)

	if err := d.publisher.PublishReminderEvent(ctx, event); err != nil {
		return domainerrors.ErrReminderDispatchFailed.WithDetails(err.Error())
	}

	d.logger.Debug("reminder published", slog.String("event_id", event.EventID))

	return nil
}

// NewReminderEvent converts a fired reminder into its wire event
func NewReminderEvent(reminder *entity.ScheduledReminder) *service.ReminderEvent {
	return &service.ReminderEvent{
		EventID:   uuid.New().String(),
		ChannelID: reminder.ChannelID,
		Title:     reminder.Title,
		Body:      reminder.Body,
		FireAt:    reminder.FireAt,
		PlaySound: reminder.Flags.PlaySound,
		SoundName: reminder.Flags.SoundName,
		Vibrate:   reminder.Flags.Vibrate,
		Priority:  pushPriorityHigh,
	}
}

// DispatcherParams holds dependencies for the ReminderDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher      `optional:"true"`
	Pusher    service.NotificationService `optional:"true"`
}

// NewReminderDispatcher selects the dispatcher named by reminder.dispatcher
func NewReminderDispatcher(params DispatcherParams) (service.ReminderDispatcher, error) {
	logger := params.Logger

	kind := constants.DispatcherLog
	channel := entity.ChannelConfig{}
	if params.Config.Reminder != nil {
		kind = params.Config.Reminder.Dispatcher
		channel = params.Config.Reminder.Channel.ToEntity()
	}

	switch kind {
	case constants.DispatcherLog, "":
		logger.Info("Using log reminder dispatcher")

		return NewLogDispatcher(logger), nil

	case constants.DispatcherPush:
		if params.Pusher == nil {
			return nil, errors.New("firebase is required for push dispatcher")
		}

		var tokens []string
		if params.Config.Push != nil {
			tokens = params.Config.Push.DeviceTokens
		}
		logger.Info("Using push reminder dispatcher", slog.Int("device_count", len(tokens)))

		return NewPushDispatcher(logger, params.Pusher, tokens, channel), nil

	case constants.DispatcherPubSub:
		if params.Publisher == nil {
			return nil, errors.New("event publisher is required for pubsub dispatcher")
		}
		logger.Info("Using pubsub reminder dispatcher")

		return NewPubSubDispatcher(logger, params.Publisher), nil

	default:
		return nil, errors.Errorf("unknown reminder dispatcher: %s", kind)
	}
}

// Module provides the notification host and its dispatcher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewReminderDispatcher,
		NewNotificationHost,
	),
)
