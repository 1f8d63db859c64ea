package repository

import (
	"fmt"
	"os"
	"testing"

	"viewtube/internal/database"
	"viewtube/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

var testDBSeq int

// newTestDB opens a fresh in-memory database per test so tests stay
// independent. The single connection keeps sqlite from returning busy
// errors under the concurrency tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, ownerID uint, title string) *models.Video {
	t.Helper()
	video := &models.Video{
		OwnerID:     ownerID,
		Title:       title,
		Description: "test video",
		VideoFile:   "videos/" + title,
		Thumbnail:   "thumbnails/" + title,
		IsPublished: true,
	}
	if err := db.Create(video).Error; err != nil {
		t.Fatalf("create test video: %v", err)
	}
	return video
}

func createTestComment(t *testing.T, db *gorm.DB, videoID, ownerID uint, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		VideoID: videoID,
		OwnerID: ownerID,
		Content: content,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("create test comment: %v", err)
	}
	return comment
}

func createTestTweet(t *testing.T, db *gorm.DB, ownerID uint, content string) *models.Tweet {
	t.Helper()
	tweet := &models.Tweet{
		OwnerID: ownerID,
		Content: content,
	}
	if err := db.Create(tweet).Error; err != nil {
		t.Fatalf("create test tweet: %v", err)
	}
	return tweet
}
