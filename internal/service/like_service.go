// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"viewtube/internal/middleware"
	"viewtube/internal/models"
	"viewtube/internal/repository"
)

// ExistsFunc probes whether a like target of a particular kind exists.
type ExistsFunc func(ctx context.Context, id uint) (bool, error)

// ToggleResult reports the relationship state after a toggle.
type ToggleResult struct {
	IsActive bool `json:"isActive"`
}

// LikeService flips like relationships. It is generic over the target
// kind: each kind contributes only an existence probe, the toggle path
// is shared.
type LikeService struct {
	engagementRepo repository.EngagementRepository
	resolvers      map[models.LikeTargetKind]ExistsFunc
}

// NewLikeService creates a LikeService with an existence probe per target kind.
func NewLikeService(
	engagementRepo repository.EngagementRepository,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	tweetRepo repository.TweetRepository,
) *LikeService {
	return &LikeService{
		engagementRepo: engagementRepo,
		resolvers: map[models.LikeTargetKind]ExistsFunc{
			models.LikeTargetVideo:   videoRepo.Exists,
			models.LikeTargetComment: commentRepo.Exists,
			models.LikeTargetTweet:   tweetRepo.Exists,
		},
	}
}

// Toggle flips the caller's like on the target and reports the resulting state.
func (s *LikeService) Toggle(ctx context.Context, userID uint, kind models.LikeTargetKind, targetID uint) (*ToggleResult, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("Invalid like target kind")
	}
	if targetID == 0 {
		return nil, models.NewValidationError("Valid target ID is required")
	}

	exists, err := s.resolvers[kind](ctx, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError(string(kind), targetID)
	}

	active, err := s.engagementRepo.ToggleLike(ctx, userID, kind, targetID)
	if err != nil {
		return nil, err
	}

	middleware.ToggleOperations.WithLabelValues("like_"+string(kind), stateLabel(active)).Inc()
	return &ToggleResult{IsActive: active}, nil
}

func stateLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
