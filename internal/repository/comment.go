// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"viewtube/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	// ListByVideoPage returns one page of the video's comments joined
	// with each owner's public profile, newest first. An empty page is a
	// valid result, not an error.
	ListByVideoPage(ctx context.Context, videoID uint, limit, offset int) ([]models.CommentFeedItem, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("Owner").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", models.LikeTargetComment, id).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *commentRepository) ListByVideoPage(ctx context.Context, videoID uint, limit, offset int) ([]models.CommentFeedItem, error) {
	var items []models.CommentFeedItem
	// Tie-break on id keeps pagination deterministic for comments that
	// share a timestamp.
	if err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.video_id, comments.content, comments.owner_id, "+
			"users.username AS owner_username, users.avatar AS owner_avatar, comments.created_at").
		Joins("JOIN users ON users.id = comments.owner_id").
		Where("comments.video_id = ?", videoID).
		Order("comments.created_at DESC, comments.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
