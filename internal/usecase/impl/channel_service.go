package impl

import (
	"context"
	"log/slog"

	"medreminder/config"
	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/domain/service"
	"medreminder/internal/usecase"

	"golang.org/x/sync/singleflight"
)

type channelService struct {
	host    service.NotificationHost
	channel entity.ChannelConfig
	logger  *slog.Logger

	inflight singleflight.Group
}

// NewChannelService creates the manager of the single medication reminder channel
func NewChannelService(
	logger *slog.Logger,
	host service.NotificationHost,
	cfg *config.ReminderConfig,
) usecase.ChannelUsecase {
	return &channelService{
		host:    host,
		channel: channelFromConfig(cfg),
		logger:  logger,
	}
}

// EnsureChannel registers the channel unless the host already has it.
// Callers arriving while a check is in flight share its outcome, so the
// shared call does not inherit the first caller's cancellation.
func (s *channelService) EnsureChannel(ctx context.Context) error {
	shared := context.WithoutCancel(ctx)

	_, err, _ := s.inflight.Do(s.channel.ID, func() (any, error) {
		return nil, s.ensure(shared)
	})

	return err
}

func (s *channelService) ensure(ctx context.Context) error {
	exists, err := s.host.ChannelExists(ctx, s.channel.ID)
	if err != nil {
		s.logger.Error("failed to check channel", slog.String("channel_id", s.channel.ID), slog.Any("error", err))

		return domainerrors.ErrChannelSetupFailed.WithDetails(err.Error())
	}

	if exists {
		s.logger.Debug("channel already exists", slog.String("channel_id", s.channel.ID))

		return nil
	}

	created, err := s.host.CreateChannel(ctx, s.channel)
	if err != nil {
		s.logger.Error("failed to create channel", slog.String("channel_id", s.channel.ID), slog.Any("error", err))

		return domainerrors.ErrChannelSetupFailed.WithDetails(err.Error())
	}

	if !created {
		s.logger.Error("failed to create channel", slog.String("channel_id", s.channel.ID))

		return domainerrors.ErrChannelSetupFailed
	}

	s.logger.Info("channel created", slog.String("channel_id", s.channel.ID), slog.String("channel_name", s.channel.Name))

	return nil
}

func channelFromConfig(cfg *config.ReminderConfig) entity.ChannelConfig {
	if cfg == nil {
		return config.ChannelConfig{}.ToEntity()
	}

	return cfg.Channel.ToEntity()
}
