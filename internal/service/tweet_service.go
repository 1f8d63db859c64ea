package service

import (
	"context"
	"strings"

	"viewtube/internal/models"
	"viewtube/internal/repository"
)

const maxTweetLength = 280

// TweetService manages community feed posts.
type TweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
}

// NewTweetService creates a new TweetService.
func NewTweetService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository) *TweetService {
	return &TweetService{tweetRepo: tweetRepo, userRepo: userRepo}
}

// Create posts a tweet on the caller's community feed.
func (s *TweetService) Create(ctx context.Context, userID uint, content string) (*models.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Tweet content is required")
	}
	if len(content) > maxTweetLength {
		return nil, models.NewValidationError("Tweet content is too long")
	}

	tweet := &models.Tweet{
		OwnerID: userID,
		Content: content,
	}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// ListByUser returns the user's tweets, newest first. An empty feed is a
// valid result.
func (s *TweetService) ListByUser(ctx context.Context, userID uint) ([]models.Tweet, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", userID)
	}

	tweets, err := s.tweetRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []models.Tweet{}
	}
	return tweets, nil
}

// Update rewrites the tweet's content. Only the owner may do this.
func (s *TweetService) Update(ctx context.Context, userID, tweetID uint, content string) (*models.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Tweet content is required")
	}
	if len(content) > maxTweetLength {
		return nil, models.NewValidationError("Tweet content is too long")
	}

	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only update your own tweets")
	}

	tweet.Content = content
	if err := s.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// Delete removes the tweet and its likes. Only the owner may do this.
func (s *TweetService) Delete(ctx context.Context, userID, tweetID uint) error {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet.OwnerID != userID {
		return models.NewForbiddenError("You can only delete your own tweets")
	}
	return s.tweetRepo.Delete(ctx, tweetID)
}
