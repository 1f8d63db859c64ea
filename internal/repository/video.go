// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"viewtube/internal/models"

	"gorm.io/gorm"
)

// VideoRepository defines the interface for video data operations
type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id uint) (*models.Video, error)
	Update(ctx context.Context, video *models.Video) error
	// Delete removes the video together with its likes, comments (and
	// their likes) and playlist membership rows in one transaction.
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	SetPublished(ctx context.Context, id uint, published bool) error
	// ListPublishedByOwner returns the owner's published videos, newest
	// first, in the public channel projection.
	ListPublishedByOwner(ctx context.Context, ownerID uint) ([]models.ChannelVideo, error)
}

type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	err := r.db.WithContext(ctx).
		Select("videos.*, (SELECT COUNT(*) FROM likes WHERE likes.target_kind = 'video' AND likes.target_id = videos.id) AS likes_count").
		Preload("Owner").
		First(&video, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Video", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &video, nil
}

func (r *videoRepository) Update(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Save(video).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", models.LikeTargetVideo, id).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		// Likes on this video's comments go with the comments.
		if err := tx.Where("target_kind = ? AND target_id IN (SELECT id FROM comments WHERE video_id = ?)",
			models.LikeTargetComment, id).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Video{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *videoRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *videoRepository) SetPublished(ctx context.Context, id uint, published bool) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", id).
		Update("is_published", published).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *videoRepository) ListPublishedByOwner(ctx context.Context, ownerID uint) ([]models.ChannelVideo, error) {
	var videos []models.ChannelVideo
	// Sorted on the real creation timestamp; recency descending is the
	// listing's contract.
	if err := r.db.WithContext(ctx).
		Table("videos").
		Select("id, video_file, thumbnail, title, description, views, duration, created_at").
		Where("owner_id = ? AND is_published = ?", ownerID, true).
		Order("created_at DESC, id DESC").
		Scan(&videos).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return videos, nil
}
