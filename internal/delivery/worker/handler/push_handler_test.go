package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medreminder/config"
	deliverycontext "medreminder/internal/delivery/context"
	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/service"
	mockSvc "medreminder/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockReminderDispatcher) {
	t.Helper()

	dispatcher := mockSvc.NewMockReminderDispatcher(t)
	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	return NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Dispatcher: dispatcher,
	}), dispatcher
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/reminder-dispatch"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodeEvent(t *testing.T, event *service.ReminderEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e := echo.New()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DispatchesReminder(t *testing.T) {
	h, dispatcher := newTestPushHandler(t)
	fireAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	event := &service.ReminderEvent{
		EventID:   "evt-1",
		ChannelID: "medication-reminders",
		Title:     "Reminder for Aspirin",
		Body:      "Hey! It's time to take your Aspirin. Stay healthy! 💊",
		FireAt:    fireAt,
		PlaySound: true,
		SoundName: "default",
		Vibrate:   true,
		Priority:  "high",
	}

	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, reminder *entity.ScheduledReminder) error {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
			assert.Equal(t, "medication-reminders", reminder.ChannelID)
			assert.Equal(t, "Reminder for Aspirin", reminder.Title)
			assert.True(t, fireAt.Equal(reminder.FireAt))
			assert.True(t, reminder.Flags.AllowWhileIdle)
			assert.True(t, reminder.Flags.PlaySound)
			assert.Equal(t, "default", reminder.Flags.SoundName)
			assert.True(t, reminder.Flags.Vibrate)

			return nil
		}).
		Once()

	rec := servePush(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-42"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DispatchFailureIsRetried(t *testing.T) {
	h, dispatcher := newTestPushHandler(t)
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Return(domainerrors.ErrReminderDispatchFailed.WithDetails("fcm unavailable")).
		Once()

	event := &service.ReminderEvent{EventID: "evt-2", Title: "Reminder for Insulin"}
	rec := servePush(h, pushBody(t, encodeEvent(t, event), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body func(t *testing.T) string
		want int
	}{
		{
			name: "envelope is not json",
			body: func(*testing.T) string { return `{"message":` },
			want: http.StatusBadRequest,
		},
		{
			name: "data is not base64",
			body: func(t *testing.T) string { return pushBody(t, "%%%", nil) },
			want: http.StatusBadRequest,
		},
		{
			name: "data is not an event",
			body: func(t *testing.T) string {
				return pushBody(t, base64.StdEncoding.EncodeToString([]byte("plain text")), nil)
			},
			want: http.StatusBadRequest,
		},
		{
			name: "event without title is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, &service.ReminderEvent{EventID: "evt-3"}), nil)
			},
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := servePush(h, tt.body(t))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")

	var withAttr PubSubMessage
	withAttr.Message.Attributes = map[string]string{"request_id": "from-attr"}

	assert.Equal(t, "from-attr", h.extractRequestID(ctx, &withAttr, &service.ReminderEvent{RequestID: "from-event"}))
	assert.Equal(t, "from-event", h.extractRequestID(ctx, &PubSubMessage{}, &service.ReminderEvent{RequestID: "from-event"}))
	assert.Equal(t, "from-header", h.extractRequestID(ctx, &PubSubMessage{}, &service.ReminderEvent{}))
	assert.NotEmpty(t, h.extractRequestID(context.Background(), &PubSubMessage{}, &service.ReminderEvent{}))
}

func TestPushHandler_VerifiesTokenForGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Dispatcher: mockSvc.NewMockReminderDispatcher(t),
	})
	require.True(t, h.verifyPushAuth)

	rec := servePush(h, pushBody(t, "", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
