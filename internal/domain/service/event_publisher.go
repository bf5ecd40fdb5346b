package service

import (
	"context"
	"time"
)

// ReminderEvent is the message published when a reminder fires and is delivered by the dispatch worker
type ReminderEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	EventID   string    `json:"event_id"`
	ChannelID string    `json:"channel_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	FireAt    time.Time `json:"fire_at"`
	PlaySound bool      `json:"play_sound"`
	SoundName string    `json:"sound_name,omitempty"`
	Vibrate   bool      `json:"vibrate"`
	Priority  string    `json:"priority"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReminderEvent publishes a fired reminder for async delivery
	PublishReminderEvent(ctx context.Context, event *ReminderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
