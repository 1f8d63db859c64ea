package server

import (
	"viewtube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile returns a user's public profile (public)
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	profile := models.PublicUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	return models.Respond(c, fiber.StatusOK, profile, "User fetched successfully")
}
