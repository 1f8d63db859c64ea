package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByVideoPage_NewestFirstStable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	video := createTestVideo(t, db, owner.ID, "clip")
	for i := 1; i <= 10; i++ {
		createTestComment(t, db, video.ID, owner.ID, fmt.Sprintf("comment %d", i))
	}

	page1, err := repo.ListByVideoPage(ctx, video.ID, 4, 0)
	require.NoError(t, err)
	page2, err := repo.ListByVideoPage(ctx, video.ID, 4, 4)
	require.NoError(t, err)
	page3, err := repo.ListByVideoPage(ctx, video.ID, 4, 8)
	require.NoError(t, err)

	require.Len(t, page1, 4)
	require.Len(t, page2, 4)
	require.Len(t, page3, 2)

	// Newest first across the whole feed, no overlap between pages even
	// when creation timestamps tie.
	var contents []string
	for _, item := range append(append(page1, page2...), page3...) {
		contents = append(contents, item.Content)
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, fmt.Sprintf("comment %d", 10-i), contents[i])
	}
}

func TestCommentRepository_ListByVideoPage_JoinsOwnerProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	commenter := createTestUser(t, db, "talker")
	commenter.Avatar = "avatars/talker.png"
	require.NoError(t, db.Save(commenter).Error)

	video := createTestVideo(t, db, owner.ID, "clip")
	createTestComment(t, db, video.ID, commenter.ID, "hello")

	items, err := repo.ListByVideoPage(ctx, video.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "hello", items[0].Content)
	assert.Equal(t, commenter.ID, items[0].OwnerID)
	assert.Equal(t, "talker", items[0].OwnerUsername)
	assert.Equal(t, "avatars/talker.png", items[0].OwnerAvatar)
}

func TestCommentRepository_ListByVideoPage_PastEndIsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	video := createTestVideo(t, db, owner.ID, "clip")
	createTestComment(t, db, video.ID, owner.ID, "only one")

	items, err := repo.ListByVideoPage(ctx, video.ID, 10, 50)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCommentRepository_Delete_RemovesLikes(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	engagement := NewEngagementRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	video := createTestVideo(t, db, owner.ID, "clip")
	comment := createTestComment(t, db, video.ID, owner.ID, "doomed")

	_, err := engagement.ToggleLike(ctx, owner.ID, "comment", comment.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, comment.ID))

	count, err := engagement.CountLikes(ctx, "comment", comment.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
