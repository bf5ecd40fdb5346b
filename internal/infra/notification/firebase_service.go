package notification

import (
	"context"
	"fmt"
	"time"

	"medreminder/internal/domain/entity"
	"medreminder/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Firebase limits multicast messages to 500 tokens per request
const firebaseBatchSize = 500

// multicastSender is the subset of *messaging.Client the service needs
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	opts := make([]option.ClientOption, 0, 1)
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendReminder pushes a fired reminder to the companion devices (max 500 tokens)
func (s *firebaseService) SendReminder(
	ctx context.Context,
	tokens []string,
	channel entity.ChannelConfig,
	reminder *entity.ScheduledReminder,
) (*service.PushResult, error) {
	if len(tokens) == 0 {
		return &service.PushResult{}, nil
	}

	if len(tokens) > firebaseBatchSize {
		return nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), firebaseBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, buildReminderMessage(tokens, channel, reminder))
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast reminder: %w", err)
	}

	result := &service.PushResult{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}

	// Collect tokens the devices no longer accept
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

// buildReminderMessage binds the notification to the reminder channel on Android
// and mirrors the sound request on iOS.
func buildReminderMessage(tokens []string, channel entity.ChannelConfig, reminder *entity.ScheduledReminder) *messaging.MulticastMessage {
	fireAt := reminder.FireAt

	android := &messaging.AndroidNotification{
		ChannelID:             reminder.ChannelID,
		DefaultVibrateTimings: reminder.Flags.Vibrate,
		EventTimestamp:        &fireAt,
	}
	if channel.Importance >= entity.ImportanceHigh {
		android.Priority = messaging.PriorityHigh
	}

	aps := &messaging.Aps{}
	if reminder.Flags.PlaySound {
		android.Sound = reminder.Flags.SoundName
		aps.Sound = reminder.Flags.SoundName
	}

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: reminder.Title,
			Body:  reminder.Body,
		},
		Data: map[string]string{
			"channel_id": reminder.ChannelID,
			"fire_at":    fireAt.Format(time.RFC3339),
		},
		Android: &messaging.AndroidConfig{
			Priority:     "high",
			Notification: android,
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{Aps: aps},
		},
	}
}
