package server

import (
	"viewtube/internal/models"
	"viewtube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePlaylist creates a new empty playlist (protected)
func (s *Server) CreatePlaylist(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	playlist, err := s.playlistService.Create(ctx, service.CreatePlaylistInput{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusCreated, playlist, "Playlist created successfully")
}

// GetPlaylist returns a playlist with its videos in insertion order (protected)
func (s *Server) GetPlaylist(c *fiber.Ctx) error {
	ctx := c.UserContext()

	playlistID, err := s.parseID(c, "playlistId")
	if err != nil {
		return nil
	}

	playlist, err := s.playlistService.Get(ctx, playlistID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, playlist, "Playlist fetched successfully")
}

// GetUserPlaylists lists a user's playlists (protected)
func (s *Server) GetUserPlaylists(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	playlists, err := s.playlistService.ListByUser(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, playlists, "Playlists fetched successfully")
}

// UpdatePlaylist renames a playlist (protected, owner only)
func (s *Server) UpdatePlaylist(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	playlistID, err := s.parseID(c, "playlistId")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	playlist, err := s.playlistService.Update(ctx, userID, playlistID, service.UpdatePlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, playlist, "Playlist updated successfully")
}

// DeletePlaylist removes a playlist (protected, owner only)
func (s *Server) DeletePlaylist(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	playlistID, err := s.parseID(c, "playlistId")
	if err != nil {
		return nil
	}

	if err := s.playlistService.Delete(ctx, userID, playlistID); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{"deleted": true}, "Playlist deleted successfully")
}

// AddVideoToPlaylist adds a video to a playlist's set (protected, owner only)
func (s *Server) AddVideoToPlaylist(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}
	playlistID, err := s.parseID(c, "playlistId")
	if err != nil {
		return nil
	}

	playlist, err := s.playlistService.AddVideo(ctx, userID, playlistID, videoID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, playlist, "Video added to playlist successfully")
}

// RemoveVideoFromPlaylist removes a video from a playlist's set (protected, owner only)
func (s *Server) RemoveVideoFromPlaylist(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}
	playlistID, err := s.parseID(c, "playlistId")
	if err != nil {
		return nil
	}

	playlist, err := s.playlistService.RemoveVideo(ctx, userID, playlistID, videoID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, playlist, "Video removed from playlist successfully")
}
