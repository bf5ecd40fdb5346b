package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"medreminder/internal/domain/entity"
	"medreminder/internal/domain/lifecycle"
	"medreminder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrHostStopped is returned when a reminder is scheduled after shutdown began
var ErrHostStopped = errors.New("notification host stopped")

// Timer is a pending one-shot callback
type Timer interface {
	Stop() bool
}

// AfterFunc arms f to run once after d
type AfterFunc func(d time.Duration, f func()) Timer

func systemAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// LocalHost is an in-process notification host. Every scheduled reminder is
// backed by its own timer which hands the reminder to a dispatcher when it fires.
type LocalHost struct {
	logger     *slog.Logger
	dispatcher service.ReminderDispatcher
	clock      service.Clock
	afterFunc  AfterFunc

	mu       sync.Mutex
	channels map[string]entity.ChannelConfig
	pending  map[uuid.UUID]Timer
	stopped  bool
}

// HostOption customizes a LocalHost
type HostOption func(*LocalHost)

// WithAfterFunc replaces the timer source
func WithAfterFunc(afterFunc AfterFunc) HostOption {
	return func(h *LocalHost) {
		h.afterFunc = afterFunc
	}
}

// NewLocalHost creates an in-process host delivering through dispatcher
func NewLocalHost(logger *slog.Logger, dispatcher service.ReminderDispatcher, clock service.Clock, opts ...HostOption) *LocalHost {
	host := &LocalHost{
		logger:     logger,
		dispatcher: dispatcher,
		clock:      clock,
		afterFunc:  systemAfterFunc,
		channels:   make(map[string]entity.ChannelConfig),
		pending:    make(map[uuid.UUID]Timer),
	}
	for _, opt := range opts {
		opt(host)
	}

	return host
}

// HostParams holds dependencies for the notification host, injected by Fx
type HostParams struct {
	fx.In

	Lc         fx.Lifecycle
	Logger     *slog.Logger
	Dispatcher service.ReminderDispatcher
	Clock      service.Clock
}

// NewNotificationHost provides the local host and stops its timers on shutdown
func NewNotificationHost(params HostParams) service.NotificationHost {
	host := NewLocalHost(params.Logger, params.Dispatcher, params.Clock)

	params.Lc.Append(fx.Hook{
		OnStop: host.Stop,
	})

	return host
}

func (h *LocalHost) ChannelExists(_ context.Context, channelID string) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, ok := h.channels[channelID]

	return ok, nil
}

// CreateChannel registers the channel. Channels without an ID are refused.
func (h *LocalHost) CreateChannel(_ context.Context, channel entity.ChannelConfig) (bool, error) {
	if channel.ID == "" {
		return false, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.channels[channel.ID] = channel

	return true, nil
}

// ScheduleOneShot arms a timer for reminder.FireAt. Instants already in the past fire immediately.
func (h *LocalHost) ScheduleOneShot(_ context.Context, reminder *entity.ScheduledReminder) error {
	if reminder == nil {
		return errors.New("reminder is required")
	}

	armed := *reminder
	delay := max(armed.FireAt.Sub(h.clock.Now()), 0)
	id := uuid.New()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return ErrHostStopped
	}

	if _, ok := h.channels[armed.ChannelID]; !ok {
		h.logger.Warn("scheduling on unregistered channel", slog.String("channel_id", armed.ChannelID))
	}

	h.pending[id] = h.afterFunc(delay, func() {
		h.fire(id, &armed)
	})

	h.logger.Debug("reminder armed",
		slog.String("reminder_id", id.String()),
		slog.Time("fire_at", armed.FireAt),
		slog.Duration("delay", delay),
	)

	return nil
}

func (h *LocalHost) fire(id uuid.UUID, reminder *entity.ScheduledReminder) {
	h.mu.Lock()
	_, ok := h.pending[id]
	delete(h.pending, id)
	h.mu.Unlock()

	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := h.dispatcher.Dispatch(ctx, reminder); err != nil {
		h.logger.Error("failed to dispatch reminder",
			slog.String("reminder_id", id.String()),
			slog.String("title", reminder.Title),
			slog.Any("error", err),
		)
	}
}

// Pending is the number of armed reminders that have not fired yet
func (h *LocalHost) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.pending)
}

// Stop cancels every pending timer and refuses new reminders
func (h *LocalHost) Stop(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopped = true
	dropped := len(h.pending)
	for id, timer := range h.pending {
		timer.Stop()
		delete(h.pending, id)
	}

	h.logger.Info("notification host stopped", slog.Int("dropped_reminders", dropped))

	return nil
}
