package server

import (
	"viewtube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetChannelStats returns the caller's aggregate channel counters (protected)
func (s *Server) GetChannelStats(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	stats, err := s.dashboardService.Stats(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, stats, "Channel stats fetched successfully")
}

// GetChannelVideos lists the caller's published videos, newest first (protected)
func (s *Server) GetChannelVideos(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	videos, err := s.dashboardService.Videos(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, videos, "Channel videos fetched successfully")
}
