package server

import (
	"viewtube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTweet posts a tweet on the caller's community feed (protected)
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweetService.Create(ctx, userID, req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusCreated, tweet, "Tweet created successfully")
}

// GetUserTweets lists a user's tweets, newest first (public)
func (s *Server) GetUserTweets(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	tweets, err := s.tweetService.ListByUser(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, tweets, "Tweets fetched successfully")
}

// UpdateTweet rewrites a tweet's content (protected, owner only)
func (s *Server) UpdateTweet(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	tweetID, err := s.parseID(c, "tweetId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweetService.Update(ctx, userID, tweetID, req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, tweet, "Tweet updated successfully")
}

// DeleteTweet removes a tweet and its likes (protected, owner only)
func (s *Server) DeleteTweet(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	tweetID, err := s.parseID(c, "tweetId")
	if err != nil {
		return nil
	}

	if err := s.tweetService.Delete(ctx, userID, tweetID); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{"deleted": true}, "Tweet deleted successfully")
}
