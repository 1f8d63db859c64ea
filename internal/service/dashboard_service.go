package service

import (
	"context"

	"viewtube/internal/models"
	"viewtube/internal/repository"
)

// DashboardService serves a channel owner's aggregated view of their
// channel.
type DashboardService struct {
	statsRepo repository.StatsRepository
	videoRepo repository.VideoRepository
	userRepo  repository.UserRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	statsRepo repository.StatsRepository,
	videoRepo repository.VideoRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		statsRepo: statsRepo,
		videoRepo: videoRepo,
		userRepo:  userRepo,
	}
}

// Stats returns the channel's aggregate counters. A channel with no
// activity gets all-zero counters, not an error.
func (s *DashboardService) Stats(ctx context.Context, userID uint) (*models.ChannelStats, error) {
	return s.statsRepo.ChannelStats(ctx, userID)
}

// Videos returns the channel's published videos, newest first. An empty
// channel is a valid result.
func (s *DashboardService) Videos(ctx context.Context, userID uint) ([]models.ChannelVideo, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", userID)
	}

	videos, err := s.videoRepo.ListPublishedByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []models.ChannelVideo{}
	}
	return videos, nil
}
