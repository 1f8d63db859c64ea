package server

import (
	"viewtube/internal/models"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) toggleLike(c *fiber.Ctx, kind models.LikeTargetKind, param string) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	targetID, err := s.parseID(c, param)
	if err != nil {
		return nil
	}

	result, err := s.likeService.Toggle(ctx, userID, kind, targetID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	message := "Like removed"
	if result.IsActive {
		message = "Liked successfully"
	}
	return models.Respond(c, fiber.StatusOK, result, message)
}

// ToggleVideoLike flips the caller's like on a video (protected)
func (s *Server) ToggleVideoLike(c *fiber.Ctx) error {
	return s.toggleLike(c, models.LikeTargetVideo, "videoId")
}

// ToggleCommentLike flips the caller's like on a comment (protected)
func (s *Server) ToggleCommentLike(c *fiber.Ctx) error {
	return s.toggleLike(c, models.LikeTargetComment, "commentId")
}

// ToggleTweetLike flips the caller's like on a tweet (protected)
func (s *Server) ToggleTweetLike(c *fiber.Ctx) error {
	return s.toggleLike(c, models.LikeTargetTweet, "tweetId")
}
