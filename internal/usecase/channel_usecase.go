package usecase

import "context"

// ChannelUsecase guarantees the reminder delivery channel is registered with the host.
type ChannelUsecase interface {
	// EnsureChannel checks the host for the channel and creates it when absent.
	// It returns once the host has answered both round-trips.
	EnsureChannel(ctx context.Context) error
}
