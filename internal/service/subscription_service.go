package service

import (
	"context"

	"viewtube/internal/middleware"
	"viewtube/internal/models"
	"viewtube/internal/repository"
)

// SubscriptionService flips channel subscriptions and serves both rosters.
type SubscriptionService struct {
	engagementRepo repository.EngagementRepository
	statsRepo      repository.StatsRepository
	userRepo       repository.UserRepository
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(
	engagementRepo repository.EngagementRepository,
	statsRepo repository.StatsRepository,
	userRepo repository.UserRepository,
) *SubscriptionService {
	return &SubscriptionService{
		engagementRepo: engagementRepo,
		statsRepo:      statsRepo,
		userRepo:       userRepo,
	}
}

// Toggle flips the caller's subscription to the channel.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID uint) (*ToggleResult, error) {
	if channelID == 0 {
		return nil, models.NewValidationError("Valid channel ID is required")
	}
	if subscriberID == channelID {
		return nil, models.NewConflictError("You cannot subscribe to your own channel")
	}

	exists, err := s.userRepo.Exists(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Channel", channelID)
	}

	active, err := s.engagementRepo.ToggleSubscription(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}

	middleware.ToggleOperations.WithLabelValues("subscription", stateLabel(active)).Inc()
	return &ToggleResult{IsActive: active}, nil
}

// Subscribers lists the channel's subscribers. A channel with no
// subscribers yields an empty roster, not an error.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelID uint) ([]models.PublicUser, error) {
	exists, err := s.userRepo.Exists(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Channel", channelID)
	}

	users, err := s.statsRepo.ChannelSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.PublicUser{}
	}
	return users, nil
}

// SubscribedChannels lists the channels the user subscribes to.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID uint) ([]models.PublicUser, error) {
	exists, err := s.userRepo.Exists(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", subscriberID)
	}

	users, err := s.statsRepo.SubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.PublicUser{}
	}
	return users, nil
}
