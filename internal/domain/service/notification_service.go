package service

import (
	"context"

	"medreminder/internal/domain/entity"
)

// PushResult summarizes a multicast push.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendReminder pushes a fired reminder to the given device tokens using the channel's Android settings
	SendReminder(ctx context.Context, tokens []string, channel entity.ChannelConfig, reminder *entity.ScheduledReminder) (*PushResult, error)
}
