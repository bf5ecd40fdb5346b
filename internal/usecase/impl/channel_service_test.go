package impl

import (
	"context"
	"testing"

	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	mockSvc "medreminder/internal/mocks/service"
	"medreminder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestChannelService(t *testing.T) (usecase.ChannelUsecase, *mockSvc.MockNotificationHost) {
	host := mockSvc.NewMockNotificationHost(t)

	return NewChannelService(newTestLogger(), host, newTestReminderConfig()), host
}

func expectedChannel() entity.ChannelConfig {
	return entity.ChannelConfig{
		ID:          "medication-reminders",
		Name:        "Medication Reminders",
		Description: "A channel to remind you to take medicine",
		SoundName:   "default",
		PlaySound:   true,
		Vibrate:     true,
		Importance:  entity.ImportanceHigh,
	}
}

func TestChannelService_EnsureChannel_CreatesWhenAbsent(t *testing.T) {
	service, host := createTestChannelService(t)
	ctx := context.Background()

	host.EXPECT().ChannelExists(mock.Anything, "medication-reminders").Return(false, nil).Once()
	host.EXPECT().CreateChannel(mock.Anything, expectedChannel()).Return(true, nil).Once()

	require.NoError(t, service.EnsureChannel(ctx))
}

func TestChannelService_EnsureChannel_SkipsExistingChannel(t *testing.T) {
	service, host := createTestChannelService(t)
	ctx := context.Background()

	host.EXPECT().ChannelExists(mock.Anything, "medication-reminders").Return(true, nil).Once()

	require.NoError(t, service.EnsureChannel(ctx))
	host.AssertNumberOfCalls(t, "CreateChannel", 0)
}

func TestChannelService_EnsureChannel_TwiceCreatesOnce(t *testing.T) {
	service, host := createTestChannelService(t)
	ctx := context.Background()

	host.EXPECT().ChannelExists(mock.Anything, "medication-reminders").Return(false, nil).Once()
	host.EXPECT().CreateChannel(mock.Anything, expectedChannel()).Return(true, nil).Once()
	host.EXPECT().ChannelExists(mock.Anything, "medication-reminders").Return(true, nil).Once()

	require.NoError(t, service.EnsureChannel(ctx))
	require.NoError(t, service.EnsureChannel(ctx))

	host.AssertNumberOfCalls(t, "CreateChannel", 1)
	host.AssertNumberOfCalls(t, "ChannelExists", 2)
}

func TestChannelService_EnsureChannel_HostRejectsChannel(t *testing.T) {
	service, host := createTestChannelService(t)
	ctx := context.Background()

	host.EXPECT().ChannelExists(mock.Anything, "medication-reminders").Return(false, nil).Once()
	host.EXPECT().CreateChannel(mock.Anything, expectedChannel()).Return(false, nil).Once()

	err := service.EnsureChannel(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChannelSetupFailed))
}

func TestChannelService_EnsureChannel_HostErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx context.Context, host *mockSvc.MockNotificationHost)
	}{
		{
			name: "existence check fails",
			setup: func(ctx context.Context, host *mockSvc.MockNotificationHost) {
				host.EXPECT().ChannelExists(mock.Anything, "medication-reminders").Return(false, errors.New("host unavailable")).Once()
			},
		},
		{
			name: "creation fails",
			setup: func(ctx context.Context, host *mockSvc.MockNotificationHost) {
				host.EXPECT().ChannelExists(mock.Anything, "medication-reminders").Return(false, nil).Once()
				host.EXPECT().CreateChannel(mock.Anything, expectedChannel()).Return(false, errors.New("permission denied")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, host := createTestChannelService(t)
			ctx := context.Background()
			tt.setup(ctx, host)

			err := service.EnsureChannel(ctx)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrChannelSetupFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.NotEmpty(t, appErr.Details())
		})
	}
}

func TestChannelService_EnsureChannel_IgnoresCallerCancellation(t *testing.T) {
	service, host := createTestChannelService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	host.EXPECT().ChannelExists(mock.Anything, "medication-reminders").
		RunAndReturn(func(hostCtx context.Context, _ string) (bool, error) {
			assert.NoError(t, hostCtx.Err())

			return false, nil
		}).Once()
	host.EXPECT().CreateChannel(mock.Anything, expectedChannel()).
		RunAndReturn(func(hostCtx context.Context, _ entity.ChannelConfig) (bool, error) {
			assert.NoError(t, hostCtx.Err())

			return true, nil
		}).Once()

	require.NoError(t, service.EnsureChannel(ctx))
}

func TestChannelService_EnsureChannel_JoinedCallerSurvivesFirstCancellation(t *testing.T) {
	service, host := createTestChannelService(t)
	firstCtx, cancelFirst := context.WithCancel(context.Background())

	entered := make(chan struct{})
	release := make(chan struct{})

	host.EXPECT().ChannelExists(mock.Anything, "medication-reminders").
		RunAndReturn(func(hostCtx context.Context, _ string) (bool, error) {
			close(entered)
			<-release

			if err := hostCtx.Err(); err != nil {
				return false, err
			}

			return true, nil
		}).Once()
	// Used only when the second caller misses the in-flight call
	host.EXPECT().ChannelExists(mock.Anything, "medication-reminders").Return(true, nil).Maybe()

	firstErr := make(chan error, 1)
	go func() { firstErr <- service.EnsureChannel(firstCtx) }()
	<-entered

	secondErr := make(chan error, 1)
	go func() { secondErr <- service.EnsureChannel(context.Background()) }()

	cancelFirst()
	close(release)

	require.NoError(t, <-firstErr)
	require.NoError(t, <-secondErr)
	host.AssertNumberOfCalls(t, "CreateChannel", 0)
}
