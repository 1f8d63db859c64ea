package service

import (
	"context"
	"strings"
	"testing"

	"viewtube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_Add_RequiresContent(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopVideoRepo())

	_, err := svc.Add(context.Background(), 1, 2, "   ")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", appErrorCode(t, err))
}

func TestCommentService_Add_ContentTooLong(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopVideoRepo())

	_, err := svc.Add(context.Background(), 1, 2, strings.Repeat("a", maxCommentLength+1))

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", appErrorCode(t, err))
}

func TestCommentService_Add_VideoNotFound(t *testing.T) {
	videoRepo := noopVideoRepo()
	videoRepo.existsFn = func(_ context.Context, _ uint) (bool, error) { return false, nil }
	svc := NewCommentService(noopCommentRepo(), videoRepo)

	_, err := svc.Add(context.Background(), 1, 99, "nice video")

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrorCode(t, err))
}

func TestCommentService_Update_NotOwner(t *testing.T) {
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, OwnerID: 2, Content: "hi"}, nil
	}
	svc := NewCommentService(commentRepo, noopVideoRepo())

	_, err := svc.Update(context.Background(), 1, 10, "edited")

	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", appErrorCode(t, err))
}

func TestCommentService_Delete_NotOwner(t *testing.T) {
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, OwnerID: 2}, nil
	}
	svc := NewCommentService(commentRepo, noopVideoRepo())

	err := svc.Delete(context.Background(), 1, 10)

	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", appErrorCode(t, err))
}

func TestCommentService_ListPage_ClampsPagination(t *testing.T) {
	commentRepo := noopCommentRepo()
	var gotLimit, gotOffset int
	commentRepo.listByVideoPageFn = func(_ context.Context, _ uint, limit, offset int) ([]models.CommentFeedItem, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}
	svc := NewCommentService(commentRepo, noopVideoRepo())

	page, err := svc.ListPage(context.Background(), 1, -3, 1000)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, maxPageSize, page.Limit)
	assert.Equal(t, maxPageSize, gotLimit)
	assert.Equal(t, 0, gotOffset)
}

func TestCommentService_ListPage_OffsetFromPage(t *testing.T) {
	commentRepo := noopCommentRepo()
	var gotOffset int
	commentRepo.listByVideoPageFn = func(_ context.Context, _ uint, _, offset int) ([]models.CommentFeedItem, error) {
		gotOffset = offset
		return nil, nil
	}
	svc := NewCommentService(commentRepo, noopVideoRepo())

	_, err := svc.ListPage(context.Background(), 1, 3, 10)

	require.NoError(t, err)
	assert.Equal(t, 20, gotOffset)
}

func TestCommentService_ListPage_EmptyPageIsSuccess(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopVideoRepo())

	page, err := svc.ListPage(context.Background(), 1, 50, 10)

	require.NoError(t, err)
	require.NotNil(t, page.Comments)
	assert.Empty(t, page.Comments)
}

func TestCommentService_ListPage_VideoNotFound(t *testing.T) {
	videoRepo := noopVideoRepo()
	videoRepo.existsFn = func(_ context.Context, _ uint) (bool, error) { return false, nil }
	svc := NewCommentService(noopCommentRepo(), videoRepo)

	_, err := svc.ListPage(context.Background(), 99, 1, 10)

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrorCode(t, err))
}
