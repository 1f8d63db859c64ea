package service

import (
	"context"
	"errors"
	"testing"

	"viewtube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appErrorCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestLikeService_Toggle_InvalidKind(t *testing.T) {
	svc := NewLikeService(noopEngagementRepo(), noopVideoRepo(), noopCommentRepo(), noopTweetRepo())

	_, err := svc.Toggle(context.Background(), 1, models.LikeTargetKind("playlist"), 1)

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", appErrorCode(t, err))
}

func TestLikeService_Toggle_ZeroTarget(t *testing.T) {
	svc := NewLikeService(noopEngagementRepo(), noopVideoRepo(), noopCommentRepo(), noopTweetRepo())

	_, err := svc.Toggle(context.Background(), 1, models.LikeTargetVideo, 0)

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", appErrorCode(t, err))
}

func TestLikeService_Toggle_TargetNotFound(t *testing.T) {
	videoRepo := noopVideoRepo()
	videoRepo.existsFn = func(_ context.Context, _ uint) (bool, error) { return false, nil }
	svc := NewLikeService(noopEngagementRepo(), videoRepo, noopCommentRepo(), noopTweetRepo())

	_, err := svc.Toggle(context.Background(), 1, models.LikeTargetVideo, 42)

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrorCode(t, err))
}

func TestLikeService_Toggle_ProbesMatchingKind(t *testing.T) {
	var probedTweet uint
	tweetRepo := noopTweetRepo()
	tweetRepo.existsFn = func(_ context.Context, id uint) (bool, error) {
		probedTweet = id
		return true, nil
	}
	videoRepo := noopVideoRepo()
	videoRepo.existsFn = func(_ context.Context, _ uint) (bool, error) {
		t.Fatal("video probe should not run for a tweet like")
		return false, nil
	}
	svc := NewLikeService(noopEngagementRepo(), videoRepo, noopCommentRepo(), tweetRepo)

	result, err := svc.Toggle(context.Background(), 1, models.LikeTargetTweet, 7)

	require.NoError(t, err)
	assert.True(t, result.IsActive)
	assert.Equal(t, uint(7), probedTweet)
}

func TestLikeService_Toggle_ReportsInactive(t *testing.T) {
	engagementRepo := noopEngagementRepo()
	engagementRepo.toggleLikeFn = func(_ context.Context, _ uint, _ models.LikeTargetKind, _ uint) (bool, error) {
		return false, nil
	}
	svc := NewLikeService(engagementRepo, noopVideoRepo(), noopCommentRepo(), noopTweetRepo())

	result, err := svc.Toggle(context.Background(), 1, models.LikeTargetVideo, 7)

	require.NoError(t, err)
	assert.False(t, result.IsActive)
}

func TestLikeService_Toggle_RepoError(t *testing.T) {
	engagementRepo := noopEngagementRepo()
	engagementRepo.toggleLikeFn = func(_ context.Context, _ uint, _ models.LikeTargetKind, _ uint) (bool, error) {
		return false, models.NewInternalError(errors.New("db down"))
	}
	svc := NewLikeService(engagementRepo, noopVideoRepo(), noopCommentRepo(), noopTweetRepo())

	_, err := svc.Toggle(context.Background(), 1, models.LikeTargetComment, 7)

	require.Error(t, err)
	assert.Equal(t, "INTERNAL_ERROR", appErrorCode(t, err))
}
