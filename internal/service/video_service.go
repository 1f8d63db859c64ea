package service

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"viewtube/internal/media"
	"viewtube/internal/middleware"
	"viewtube/internal/models"
	"viewtube/internal/repository"
)

// UploadFile is one file from a multipart publish request.
type UploadFile struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// PublishVideoInput carries the fields and files for publishing a video.
type PublishVideoInput struct {
	OwnerID     uint
	Title       string
	Description string
	Duration    float64
	Video       *UploadFile
	Thumbnail   *UploadFile
}

// UpdateVideoInput carries the fields for editing a video's details.
// Thumbnail is optional; when set the old thumbnail object is replaced.
type UpdateVideoInput struct {
	Title       string
	Description string
	Thumbnail   *UploadFile
}

// VideoService manages video records and their media objects. Publishing
// is two-phase: objects go to the store first, then the record is
// written. A failed record write compensates by removing the uploaded
// objects so the store holds no orphans.
type VideoService struct {
	videoRepo repository.VideoRepository
	store     media.Store
}

// NewVideoService creates a new VideoService.
func NewVideoService(videoRepo repository.VideoRepository, store media.Store) *VideoService {
	return &VideoService{videoRepo: videoRepo, store: store}
}

// Publish uploads the video and thumbnail, then records the video.
func (s *VideoService) Publish(ctx context.Context, input PublishVideoInput) (*models.Video, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, models.NewValidationError("Video title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, models.NewValidationError("Video description is required")
	}
	if input.Video == nil {
		return nil, models.NewValidationError("Video file is required")
	}
	if input.Thumbnail == nil {
		return nil, models.NewValidationError("Thumbnail file is required")
	}

	videoObj, err := s.store.Upload(ctx, input.Video.Reader, input.Video.Size, input.Video.ContentType, "videos")
	if err != nil {
		return nil, models.NewUpstreamError("Failed to upload video file", err)
	}

	thumbObj, err := s.store.Upload(ctx, input.Thumbnail.Reader, input.Thumbnail.Size, input.Thumbnail.ContentType, "thumbnails")
	if err != nil {
		s.discard(ctx, videoObj.Key)
		return nil, models.NewUpstreamError("Failed to upload thumbnail", err)
	}

	video := &models.Video{
		OwnerID:     input.OwnerID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		VideoFile:   videoObj.Key,
		Thumbnail:   thumbObj.Key,
		Duration:    input.Duration,
		IsPublished: true,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		s.discard(ctx, videoObj.Key)
		s.discard(ctx, thumbObj.Key)
		return nil, err
	}
	return video, nil
}

// Get returns the video with its owner and like count.
func (s *VideoService) Get(ctx context.Context, videoID uint) (*models.Video, error) {
	return s.videoRepo.GetByID(ctx, videoID)
}

// Update edits the video's details. Only the owner may do this. When a
// new thumbnail is supplied the old object is removed after the record
// points at the new one.
func (s *VideoService) Update(ctx context.Context, userID, videoID uint, input UpdateVideoInput) (*models.Video, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, models.NewValidationError("Video title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, models.NewValidationError("Video description is required")
	}

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only update your own videos")
	}

	oldThumb := ""
	if input.Thumbnail != nil {
		thumbObj, err := s.store.Upload(ctx, input.Thumbnail.Reader, input.Thumbnail.Size, input.Thumbnail.ContentType, "thumbnails")
		if err != nil {
			return nil, models.NewUpstreamError("Failed to upload thumbnail", err)
		}
		oldThumb = video.Thumbnail
		video.Thumbnail = thumbObj.Key
	}

	video.Title = strings.TrimSpace(input.Title)
	video.Description = strings.TrimSpace(input.Description)
	if err := s.videoRepo.Update(ctx, video); err != nil {
		if input.Thumbnail != nil {
			s.discard(ctx, video.Thumbnail)
		}
		return nil, err
	}

	if oldThumb != "" {
		s.discard(ctx, oldThumb)
	}
	return video, nil
}

// Delete removes the video record with its engagement rows, then its
// media objects. Only the owner may do this.
func (s *VideoService) Delete(ctx context.Context, userID, videoID uint) error {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video.OwnerID != userID {
		return models.NewForbiddenError("You can only delete your own videos")
	}

	if err := s.videoRepo.Delete(ctx, videoID); err != nil {
		return err
	}

	// The record is gone; object removal failures are logged, not
	// surfaced, so the delete stays observable as done.
	s.discard(ctx, video.VideoFile)
	s.discard(ctx, video.Thumbnail)
	return nil
}

// TogglePublish flips the video's publish state. Only the owner may do this.
func (s *VideoService) TogglePublish(ctx context.Context, userID, videoID uint) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only modify your own videos")
	}

	if err := s.videoRepo.SetPublished(ctx, videoID, !video.IsPublished); err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	return video, nil
}

func (s *VideoService) discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Remove(ctx, key); err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to remove media object",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
