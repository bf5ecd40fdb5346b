package notification

import (
	"context"
	"testing"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	message  *messaging.MulticastMessage
	response *messaging.BatchResponse
	err      error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.message = message

	return f.response, f.err
}

func TestBuildReminderMessage(t *testing.T) {
	fireAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	message := buildReminderMessage([]string{"token-a"}, testChannel(), testReminder(fireAt))

	assert.Equal(t, []string{"token-a"}, message.Tokens)
	require.NotNil(t, message.Notification)
	assert.Equal(t, "Reminder for Aspirin", message.Notification.Title)
	assert.Equal(t, "Hey! It's time to take your Aspirin. Stay healthy! 💊", message.Notification.Body)

	require.NotNil(t, message.Android)
	assert.Equal(t, "high", message.Android.Priority)
	require.NotNil(t, message.Android.Notification)
	assert.Equal(t, "medication-reminders", message.Android.Notification.ChannelID)
	assert.Equal(t, "default", message.Android.Notification.Sound)
	assert.True(t, message.Android.Notification.DefaultVibrateTimings)
	assert.Equal(t, messaging.PriorityHigh, message.Android.Notification.Priority)

	assert.Equal(t, "default", message.APNS.Payload.Aps.Sound)
	assert.Equal(t, "2026-03-02T09:00:00Z", message.Data["fire_at"])
	assert.Equal(t, "medication-reminders", message.Data["channel_id"])
}

func TestBuildReminderMessage_Silent(t *testing.T) {
	reminder := testReminder(hostNow)
	reminder.Flags.PlaySound = false
	reminder.Flags.Vibrate = false

	message := buildReminderMessage([]string{"token-a"}, testChannel(), reminder)

	assert.Empty(t, message.Android.Notification.Sound)
	assert.False(t, message.Android.Notification.DefaultVibrateTimings)
	assert.Empty(t, message.APNS.Payload.Aps.Sound)
}

func TestFirebaseService_SendReminder(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{
		SuccessCount: 2,
		Responses:    []*messaging.SendResponse{{Success: true}, {Success: true}},
	}}
	svc := &firebaseService{client: sender}

	result, err := svc.SendReminder(context.Background(), []string{"token-a", "token-b"}, testChannel(), testReminder(hostNow))

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.Empty(t, result.InvalidTokens)
	require.NotNil(t, sender.message)
	assert.Len(t, sender.message.Tokens, 2)
}

func TestFirebaseService_SendReminder_Limits(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}
	ctx := context.Background()

	result, err := svc.SendReminder(ctx, nil, testChannel(), testReminder(hostNow))
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Nil(t, sender.message)

	_, err = svc.SendReminder(ctx, make([]string, firebaseBatchSize+1), testChannel(), testReminder(hostNow))
	assert.Error(t, err)
}

func TestFirebaseService_SendReminder_ClientError(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("unauthenticated")}}

	_, err := svc.SendReminder(context.Background(), []string{"token-a"}, testChannel(), testReminder(hostNow))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthenticated")
}
