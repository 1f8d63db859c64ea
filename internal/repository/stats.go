// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"viewtube/internal/models"

	"gorm.io/gorm"
)

// StatsRepository produces derived read-only views that join across
// collections: the channel dashboard and the subscription rosters.
type StatsRepository interface {
	// ChannelStats computes the full dashboard projection in a single
	// query so every counter reflects one storage snapshot.
	ChannelStats(ctx context.Context, userID uint) (*models.ChannelStats, error)
	// ChannelSubscribers lists the public profiles of everyone
	// subscribed to the channel.
	ChannelSubscribers(ctx context.Context, channelID uint) ([]models.PublicUser, error)
	// SubscribedChannels lists the public profiles of every channel the
	// user subscribes to.
	SubscribedChannels(ctx context.Context, subscriberID uint) ([]models.PublicUser, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) ChannelStats(ctx context.Context, userID uint) (*models.ChannelStats, error) {
	var stats models.ChannelStats
	res := r.db.WithContext(ctx).Raw(`
		SELECT
			users.username                AS username,
			users.avatar                  AS avatar,
			users.cover_image             AS cover_image,
			(SELECT COUNT(*) FROM subscriptions WHERE subscriptions.channel_id = users.id)       AS total_subscribers,
			(SELECT COUNT(*) FROM videos WHERE videos.owner_id = users.id)                       AS total_videos,
			(SELECT COALESCE(SUM(videos.views), 0) FROM videos WHERE videos.owner_id = users.id) AS total_views,
			(SELECT COUNT(*) FROM likes
				WHERE likes.target_kind = 'video'
				  AND likes.target_id IN (SELECT id FROM videos WHERE videos.owner_id = users.id)) AS total_likes,
			(SELECT COUNT(*) FROM tweets WHERE tweets.owner_id = users.id)                       AS total_tweets,
			(SELECT COUNT(*) FROM comments WHERE comments.owner_id = users.id)                   AS total_comments
		FROM users
		WHERE users.id = ?`, userID).Scan(&stats)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("User", userID)
	}
	return &stats, nil
}

func (r *statsRepository) ChannelSubscribers(ctx context.Context, channelID uint) ([]models.PublicUser, error) {
	var users []models.PublicUser
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.username, users.email").
		Joins("JOIN subscriptions s ON users.id = s.subscriber_id").
		Where("s.channel_id = ?", channelID).
		Order("s.id ASC").
		Scan(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *statsRepository) SubscribedChannels(ctx context.Context, subscriberID uint) ([]models.PublicUser, error) {
	var users []models.PublicUser
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.username, users.email").
		Joins("JOIN subscriptions s ON users.id = s.channel_id").
		Where("s.subscriber_id = ?", subscriberID).
		Order("s.id ASC").
		Scan(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
