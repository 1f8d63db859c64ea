// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"viewtube/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementRepository maintains the like and subscription relations.
// Each relation holds at most one row per pair; toggling is built from
// an atomic insert-if-absent so concurrent togglers on the same pair can
// never duplicate a record.
type EngagementRepository interface {
	// ToggleLike flips the like state and reports whether the like is
	// now active.
	ToggleLike(ctx context.Context, userID uint, kind models.LikeTargetKind, targetID uint) (bool, error)
	// ToggleSubscription flips the subscription state and reports
	// whether the subscription is now active.
	ToggleSubscription(ctx context.Context, subscriberID, channelID uint) (bool, error)
	IsLiked(ctx context.Context, userID uint, kind models.LikeTargetKind, targetID uint) (bool, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID uint) (bool, error)
	CountLikes(ctx context.Context, kind models.LikeTargetKind, targetID uint) (int64, error)
	CountSubscribers(ctx context.Context, channelID uint) (int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) ToggleLike(ctx context.Context, userID uint, kind models.LikeTargetKind, targetID uint) (bool, error) {
	// Insert-if-absent keyed by the composite unique index. If the row
	// already exists nothing is inserted and we delete it instead. A
	// concurrent delete between the two statements leaves the pair
	// absent, which is a valid toggle outcome; the unique index rules
	// out ever holding two rows.
	like := models.Like{
		LikedByID:  userID,
		TargetKind: kind,
		TargetID:   targetID,
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "liked_by"},
			{Name: "target_kind"},
			{Name: "target_id"},
		},
		DoNothing: true,
	}).Create(&like)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	if err := r.db.WithContext(ctx).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID).
		Delete(&models.Like{}).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return false, nil
}

func (r *engagementRepository) ToggleSubscription(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	sub := models.Subscription{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "subscriber_id"},
			{Name: "channel_id"},
		},
		DoNothing: true,
	}).Create(&sub)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	if err := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&models.Subscription{}).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return false, nil
}

func (r *engagementRepository) IsLiked(ctx context.Context, userID uint, kind models.LikeTargetKind, targetID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) IsSubscribed(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) CountLikes(ctx context.Context, kind models.LikeTargetKind, targetID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *engagementRepository) CountSubscribers(ctx context.Context, channelID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
