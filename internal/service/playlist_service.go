package service

import (
	"context"
	"strings"

	"viewtube/internal/models"
	"viewtube/internal/repository"
)

// CreatePlaylistInput carries the fields for creating a playlist.
type CreatePlaylistInput struct {
	OwnerID     uint   `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdatePlaylistInput carries the fields for renaming a playlist.
type UpdatePlaylistInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlaylistService manages playlists and their video sets.
type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	userRepo     repository.UserRepository
}

// NewPlaylistService creates a new PlaylistService.
func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	videoRepo repository.VideoRepository,
	userRepo repository.UserRepository,
) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
	}
}

// Create makes a new empty playlist owned by the caller.
func (s *PlaylistService) Create(ctx context.Context, input CreatePlaylistInput) (*models.Playlist, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, models.NewValidationError("Playlist name is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, models.NewValidationError("Playlist description is required")
	}

	playlist := &models.Playlist{
		OwnerID:     input.OwnerID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	playlist.Videos = []models.Video{}
	return playlist, nil
}

// Get returns the playlist with its videos in insertion order.
func (s *PlaylistService) Get(ctx context.Context, playlistID uint) (*models.Playlist, error) {
	return s.playlistRepo.GetByID(ctx, playlistID)
}

// ListByUser returns the user's playlists. An empty list is a valid result.
func (s *PlaylistService) ListByUser(ctx context.Context, userID uint) ([]models.Playlist, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", userID)
	}

	playlists, err := s.playlistRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []models.Playlist{}
	}
	return playlists, nil
}

// Update renames the playlist. Only the owner may do this.
func (s *PlaylistService) Update(ctx context.Context, userID, playlistID uint, input UpdatePlaylistInput) (*models.Playlist, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, models.NewValidationError("Playlist name is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, models.NewValidationError("Playlist description is required")
	}

	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only update your own playlists")
	}

	playlist.Name = strings.TrimSpace(input.Name)
	playlist.Description = strings.TrimSpace(input.Description)
	if err := s.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// Delete removes the playlist and its membership rows. Only the owner
// may do this.
func (s *PlaylistService) Delete(ctx context.Context, userID, playlistID uint) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID != userID {
		return models.NewForbiddenError("You can only delete your own playlists")
	}
	return s.playlistRepo.Delete(ctx, playlistID)
}

// AddVideo adds the video to the playlist's set. Adding a video that is
// already a member leaves the playlist unchanged.
func (s *PlaylistService) AddVideo(ctx context.Context, userID, playlistID, videoID uint) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only modify your own playlists")
	}

	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Video", videoID)
	}

	if err := s.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.playlistRepo.GetByID(ctx, playlistID)
}

// RemoveVideo removes the video from the playlist's set. Removing a
// non-member leaves the playlist unchanged.
func (s *PlaylistService) RemoveVideo(ctx context.Context, userID, playlistID, videoID uint) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only modify your own playlists")
	}

	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Video", videoID)
	}

	if err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.playlistRepo.GetByID(ctx, playlistID)
}
