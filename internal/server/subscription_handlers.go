package server

import (
	"viewtube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleSubscription flips the caller's subscription to a channel (protected)
func (s *Server) ToggleSubscription(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	channelID, err := s.parseID(c, "channelId")
	if err != nil {
		return nil
	}

	result, err := s.subscriptionService.Toggle(ctx, userID, channelID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	message := "Unsubscribed successfully"
	if result.IsActive {
		message = "Subscribed successfully"
	}
	return models.Respond(c, fiber.StatusOK, result, message)
}

// GetChannelSubscribers lists a channel's subscribers (protected)
func (s *Server) GetChannelSubscribers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	channelID, err := s.parseID(c, "channelId")
	if err != nil {
		return nil
	}

	subscribers, err := s.subscriptionService.Subscribers(ctx, channelID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, subscribers, "Subscribers fetched successfully")
}

// GetSubscribedChannels lists the channels a user subscribes to (protected)
func (s *Server) GetSubscribedChannels(c *fiber.Ctx) error {
	ctx := c.UserContext()

	subscriberID, err := s.parseID(c, "subscriberId")
	if err != nil {
		return nil
	}

	channels, err := s.subscriptionService.SubscribedChannels(ctx, subscriberID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, channels, "Subscribed channels fetched successfully")
}
