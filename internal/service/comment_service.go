package service

import (
	"context"
	"strings"

	"viewtube/internal/models"
	"viewtube/internal/repository"
)

const (
	maxCommentLength = 2000

	defaultPageSize = 10
	maxPageSize     = 100
)

// CommentPage is one page of a video's comment feed, newest first.
type CommentPage struct {
	Comments []models.CommentFeedItem `json:"comments"`
	Page     int                      `json:"page"`
	Limit    int                      `json:"limit"`
}

// CommentService manages comments on videos.
type CommentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, videoRepo repository.VideoRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, videoRepo: videoRepo}
}

// Add posts a comment on the video.
func (s *CommentService) Add(ctx context.Context, userID, videoID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(content) > maxCommentLength {
		return nil, models.NewValidationError("Comment content is too long")
	}

	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Video", videoID)
	}

	comment := &models.Comment{
		VideoID: videoID,
		OwnerID: userID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// Update rewrites the comment's content. Only the owner may do this.
func (s *CommentService) Update(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(content) > maxCommentLength {
		return nil, models.NewValidationError("Comment content is too long")
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only update your own comments")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment and its likes. Only the owner may do this.
func (s *CommentService) Delete(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.OwnerID != userID {
		return models.NewForbiddenError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// ListPage returns one page of the video's comment feed, newest first.
// A page past the end of the feed is an empty page, not an error.
func (s *CommentService) ListPage(ctx context.Context, videoID uint, page, limit int) (*CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Video", videoID)
	}

	items, err := s.commentRepo.ListByVideoPage(ctx, videoID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CommentFeedItem{}
	}
	return &CommentPage{Comments: items, Page: page, Limit: limit}, nil
}
