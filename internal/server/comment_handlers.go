package server

import (
	"viewtube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetVideoComments returns one page of a video's comment feed, newest
// first (public)
func (s *Server) GetVideoComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	feed, err := s.commentService.ListPage(ctx, videoID, page, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, feed, "Comments fetched successfully")
}

// AddComment posts a comment on a video (protected)
func (s *Server) AddComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Add(ctx, userID, videoID, req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusCreated, comment, "Comment added successfully")
}

// UpdateComment rewrites a comment's content (protected, owner only)
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Update(ctx, userID, commentID, req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment removes a comment and its likes (protected, owner only)
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.Delete(ctx, userID, commentID); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{"deleted": true}, "Comment deleted successfully")
}
