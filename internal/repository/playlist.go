// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"viewtube/internal/models"

	"gorm.io/gorm"
)

// PlaylistRepository maintains playlists and their ordered video sets.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *models.Playlist) error
	// GetByID returns the playlist with its videos in insertion order.
	GetByID(ctx context.Context, id uint) (*models.Playlist, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Playlist, error)
	Update(ctx context.Context, playlist *models.Playlist) error
	Delete(ctx context.Context, id uint) error
	// AddVideo appends the video to the set. Adding a member that is
	// already present is a no-op.
	AddVideo(ctx context.Context, playlistID, videoID uint) error
	// RemoveVideo removes every occurrence of the video; absent members
	// are a no-op.
	RemoveVideo(ctx context.Context, playlistID, videoID uint) error
	// RemoveVideoFromAll drops the video from every playlist. Called
	// when a video is deleted so no playlist holds a dangling reference.
	RemoveVideoFromAll(ctx context.Context, tx *gorm.DB, videoID uint) error
}

type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository creates a new playlist repository
func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *models.Playlist) error {
	if err := r.db.WithContext(ctx).Create(playlist).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id uint) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := r.db.WithContext(ctx).First(&playlist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Playlist", id)
		}
		return nil, models.NewInternalError(err)
	}

	var videos []models.Video
	if err := r.db.WithContext(ctx).
		Table("videos").
		Select("videos.*").
		Joins("JOIN playlist_videos pv ON pv.video_id = videos.id").
		Where("pv.playlist_id = ?", id).
		Order("pv.position ASC").
		Find(&videos).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	playlist.Videos = videos

	return &playlist, nil
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return playlists, nil
}

func (r *playlistRepository) Update(ctx context.Context, playlist *models.Playlist) error {
	if err := r.db.WithContext(ctx).Save(playlist).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Playlist{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uint) error {
	// Single-statement set union: position comes from a scalar subquery
	// and the unique index absorbs duplicate adds, so concurrent adds to
	// the same playlist cannot lose updates or create duplicates.
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO playlist_videos (playlist_id, video_id, position)
		 SELECT ?, ?, COALESCE(MAX(position), 0) + 1
		   FROM playlist_videos WHERE playlist_id = ?
		 ON CONFLICT (playlist_id, video_id) DO NOTHING`,
		playlistID, videoID, playlistID,
	).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uint) error {
	if err := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *playlistRepository) RemoveVideoFromAll(ctx context.Context, tx *gorm.DB, videoID uint) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	if err := db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&models.PlaylistVideo{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
