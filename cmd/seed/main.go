// Command main runs the database seeder for ViewTube.
package main

import (
	"flag"
	"log"

	"viewtube/internal/config"
	"viewtube/internal/database"
	"viewtube/internal/seed"
)

func main() {
	numUsers := flag.Int("users", seed.DefaultOptions.Users, "Number of users to create")
	videosPerUser := flag.Int("videos", seed.DefaultOptions.VideosPerUser, "Max videos per user")
	commentsPerVid := flag.Int("comments", seed.DefaultOptions.CommentsPerVid, "Max comments per video")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, up to %d videos each, clean=%v\n", *numUsers, *videosPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Run(seed.Options{
		Users:          *numUsers,
		VideosPerUser:  *videosPerUser,
		CommentsPerVid: *commentsPerVid,
		Clean:          *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
