// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"viewtube/internal/models"

	"gorm.io/gorm"
)

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	GetByID(ctx context.Context, id uint) (*models.Tweet, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Tweet, error)
	Update(ctx context.Context, tweet *models.Tweet) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository creates a new tweet repository
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).First(&tweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tweet", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tweet, nil
}

func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tweets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

func (r *tweetRepository) Update(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Save(tweet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tweetRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", models.LikeTargetTweet, id).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tweet{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tweetRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Tweet{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
