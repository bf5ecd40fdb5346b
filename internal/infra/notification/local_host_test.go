package notification

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"medreminder/internal/domain/entity"
	mockSvc "medreminder/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true

	return wasActive
}

type fakeTimers struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (f *fakeTimers) afterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	timer := &fakeTimer{delay: d, fn: fn}
	f.timers = append(f.timers, timer)

	return timer
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

var hostNow = time.Date(2026, 3, 1, 14, 0, 0, 0, time.Local)

func createTestLocalHost(t *testing.T) (*LocalHost, *mockSvc.MockReminderDispatcher, *fakeTimers) {
	dispatcher := mockSvc.NewMockReminderDispatcher(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(hostNow).Maybe()
	timers := &fakeTimers{}

	return NewLocalHost(newTestLogger(), dispatcher, clock, WithAfterFunc(timers.afterFunc)), dispatcher, timers
}

func testReminder(fireAt time.Time) *entity.ScheduledReminder {
	return &entity.ScheduledReminder{
		ChannelID: "medication-reminders",
		Title:     "Reminder for Aspirin",
		Body:      "Hey! It's time to take your Aspirin. Stay healthy! 💊",
		FireAt:    fireAt,
		Flags:     entity.ReminderFlags{AllowWhileIdle: true, PlaySound: true, SoundName: "default", Vibrate: true},
	}
}

func TestLocalHost_Channels(t *testing.T) {
	host, _, _ := createTestLocalHost(t)
	ctx := context.Background()

	exists, err := host.ChannelExists(ctx, "medication-reminders")
	require.NoError(t, err)
	assert.False(t, exists)

	created, err := host.CreateChannel(ctx, entity.ChannelConfig{ID: "medication-reminders", Name: "Medication Reminders"})
	require.NoError(t, err)
	assert.True(t, created)

	exists, err = host.ChannelExists(ctx, "medication-reminders")
	require.NoError(t, err)
	assert.True(t, exists)

	created, err = host.CreateChannel(ctx, entity.ChannelConfig{})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLocalHost_ScheduleOneShot_FiresThroughDispatcher(t *testing.T) {
	host, dispatcher, timers := createTestLocalHost(t)
	fireAt := hostNow.Add(19*time.Hour + 30*time.Minute)
	reminder := testReminder(fireAt)

	require.NoError(t, host.ScheduleOneShot(context.Background(), reminder))
	require.Len(t, timers.timers, 1)
	assert.Equal(t, 19*time.Hour+30*time.Minute, timers.timers[0].delay)
	assert.Equal(t, 1, host.Pending())

	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(r *entity.ScheduledReminder) bool {
			return r.Title == reminder.Title && r.FireAt.Equal(fireAt)
		})).
		Run(func(ctx context.Context, _ *entity.ScheduledReminder) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
		}).
		Return(nil).Once()

	timers.timers[0].fn()

	assert.Zero(t, host.Pending())
}

func TestLocalHost_ScheduleOneShot_PastInstantFiresImmediately(t *testing.T) {
	host, _, timers := createTestLocalHost(t)

	require.NoError(t, host.ScheduleOneShot(context.Background(), testReminder(hostNow.Add(-time.Minute))))

	require.Len(t, timers.timers, 1)
	assert.Zero(t, timers.timers[0].delay)
}

func TestLocalHost_ScheduleOneShot_CopiesReminder(t *testing.T) {
	host, dispatcher, timers := createTestLocalHost(t)
	reminder := testReminder(hostNow.Add(time.Hour))

	require.NoError(t, host.ScheduleOneShot(context.Background(), reminder))
	reminder.Title = "changed"

	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(r *entity.ScheduledReminder) bool {
			return r.Title == "Reminder for Aspirin"
		})).
		Return(nil).Once()

	timers.timers[0].fn()
}

func TestLocalHost_DispatchErrorIsLogged(t *testing.T) {
	host, dispatcher, timers := createTestLocalHost(t)

	require.NoError(t, host.ScheduleOneShot(context.Background(), testReminder(hostNow.Add(time.Hour))))
	dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(errors.New("fcm down")).Once()

	timers.timers[0].fn()

	assert.Zero(t, host.Pending())
}

func TestLocalHost_StopCancelsPendingTimers(t *testing.T) {
	host, _, timers := createTestLocalHost(t)
	ctx := context.Background()

	require.NoError(t, host.ScheduleOneShot(ctx, testReminder(hostNow.Add(time.Hour))))
	require.NoError(t, host.ScheduleOneShot(ctx, testReminder(hostNow.Add(2*time.Hour))))
	require.Equal(t, 2, host.Pending())

	require.NoError(t, host.Stop(ctx))

	assert.Zero(t, host.Pending())
	for _, timer := range timers.timers {
		assert.True(t, timer.stopped)
	}

	// A timer racing with Stop must not dispatch.
	timers.timers[0].fn()

	err := host.ScheduleOneShot(ctx, testReminder(hostNow.Add(time.Hour)))
	assert.True(t, errors.Is(err, ErrHostStopped))
}

func TestLocalHost_ScheduleOneShot_NilReminder(t *testing.T) {
	host, _, _ := createTestLocalHost(t)

	assert.Error(t, host.ScheduleOneShot(context.Background(), nil))
}
