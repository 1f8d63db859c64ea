// Package seed populates the database with realistic development data.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"viewtube/internal/models"
	"viewtube/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much data the seeder creates.
type Options struct {
	Users          int
	VideosPerUser  int
	CommentsPerVid int
	Clean          bool
}

// DefaultOptions is a medium-sized development dataset.
var DefaultOptions = Options{
	Users:          20,
	VideosPerUser:  4,
	CommentsPerVid: 6,
	Clean:          true,
}

// Seeder creates fake channels, videos and engagement.
type Seeder struct {
	db         *gorm.DB
	engagement repository.EngagementRepository
	playlists  repository.PlaylistRepository
	faker      *gofakeit.Faker
	rng        *rand.Rand
}

// NewSeeder creates a seeder with a fixed source so runs are reproducible.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:         db,
		engagement: repository.NewEngagementRepository(db),
		playlists:  repository.NewPlaylistRepository(db),
		faker:      gofakeit.New(42),
		rng:        rand.New(rand.NewSource(42)),
	}
}

// Run populates the database according to the options.
func (s *Seeder) Run(opts Options) error {
	if opts.Clean {
		if err := s.clearAll(); err != nil {
			return fmt.Errorf("clean database: %w", err)
		}
	}

	users, err := s.createUsers(opts.Users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	videos, err := s.createVideos(users, opts.VideosPerUser)
	if err != nil {
		return fmt.Errorf("seed videos: %w", err)
	}

	if err := s.createComments(users, videos, opts.CommentsPerVid); err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}

	if err := s.createTweets(users); err != nil {
		return fmt.Errorf("seed tweets: %w", err)
	}

	if err := s.createEngagement(users, videos); err != nil {
		return fmt.Errorf("seed engagement: %w", err)
	}

	if err := s.createPlaylists(users, videos); err != nil {
		return fmt.Errorf("seed playlists: %w", err)
	}

	return nil
}

func (s *Seeder) clearAll() error {
	tables := []string{
		"playlist_videos", "playlists", "likes", "subscriptions",
		"comments", "tweets", "videos", "users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		username := fmt.Sprintf("%s%d", s.faker.Gamertag(), i)
		user := models.User{
			Username:   username,
			Email:      fmt.Sprintf("%s@example.com", username),
			Avatar:     fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username),
			CoverImage: fmt.Sprintf("https://picsum.photos/seed/%s/1280/320", username),
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createVideos(users []models.User, perUser int) ([]models.Video, error) {
	var videos []models.Video
	for _, user := range users {
		n := s.rng.Intn(perUser) + 1
		for i := 0; i < n; i++ {
			video := models.Video{
				OwnerID:     user.ID,
				Title:       s.faker.Sentence(4),
				Description: s.faker.Paragraph(1, 3, 8, " "),
				VideoFile:   fmt.Sprintf("videos/%s", s.faker.UUID()),
				Thumbnail:   fmt.Sprintf("thumbnails/%s", s.faker.UUID()),
				Duration:    float64(s.rng.Intn(1200) + 30),
				Views:       int64(s.rng.Intn(10000)),
				IsPublished: s.rng.Float32() < 0.9,
			}
			if err := s.db.Create(&video).Error; err != nil {
				return nil, err
			}
			videos = append(videos, video)
		}
	}
	return videos, nil
}

func (s *Seeder) createComments(users []models.User, videos []models.Video, perVideo int) error {
	for _, video := range videos {
		n := s.rng.Intn(perVideo + 1)
		for i := 0; i < n; i++ {
			commenter := users[s.rng.Intn(len(users))]
			comment := models.Comment{
				VideoID: video.ID,
				OwnerID: commenter.ID,
				Content: s.faker.Sentence(s.rng.Intn(12) + 3),
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) createTweets(users []models.User) error {
	for _, user := range users {
		n := s.rng.Intn(4)
		for i := 0; i < n; i++ {
			tweet := models.Tweet{
				OwnerID: user.ID,
				Content: s.faker.Sentence(s.rng.Intn(15) + 3),
			}
			if err := s.db.Create(&tweet).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) createEngagement(users []models.User, videos []models.Video) error {
	ctx := context.Background()

	// Likes: each user likes a random third of the videos.
	for _, user := range users {
		for _, video := range videos {
			if s.rng.Float32() < 0.33 {
				if _, err := s.engagement.ToggleLike(ctx, user.ID, models.LikeTargetVideo, video.ID); err != nil {
					return err
				}
			}
		}
	}

	// Subscriptions: each user follows a few other channels.
	for _, user := range users {
		for _, channel := range users {
			if channel.ID == user.ID {
				continue
			}
			if s.rng.Float32() < 0.2 {
				if _, err := s.engagement.ToggleSubscription(ctx, user.ID, channel.ID); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (s *Seeder) createPlaylists(users []models.User, videos []models.Video) error {
	ctx := context.Background()
	for _, user := range users {
		if s.rng.Float32() > 0.5 {
			continue
		}
		playlist := models.Playlist{
			OwnerID:     user.ID,
			Name:        s.faker.HipsterWord() + " mix",
			Description: s.faker.Sentence(6),
		}
		if err := s.db.Create(&playlist).Error; err != nil {
			return err
		}
		for _, video := range videos {
			if s.rng.Float32() < 0.1 {
				if err := s.playlists.AddVideo(ctx, playlist.ID, video.ID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
