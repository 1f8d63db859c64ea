package server

import (
	"mime/multipart"
	"strconv"

	"viewtube/internal/models"
	"viewtube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// openUpload converts a multipart file header into the service upload shape.
// The returned closer must be closed by the caller.
func openUpload(header *multipart.FileHeader) (*service.UploadFile, multipart.File, error) {
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &service.UploadFile{
		Reader:      f,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, f, nil
}

// PublishVideo uploads a video with its thumbnail and records it (protected)
func (s *Server) PublishVideo(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	videoHeader, err := c.FormFile("videoFile")
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Video file is required"))
	}
	thumbHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Thumbnail file is required"))
	}

	videoFile, videoCloser, err := openUpload(videoHeader)
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Could not read video file"))
	}
	defer videoCloser.Close()

	thumbFile, thumbCloser, err := openUpload(thumbHeader)
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Could not read thumbnail file"))
	}
	defer thumbCloser.Close()

	// Duration comes from the uploader's metadata; the object store does
	// not probe media.
	duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)

	video, err := s.videoService.Publish(ctx, service.PublishVideoInput{
		OwnerID:     userID,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Duration:    duration,
		Video:       videoFile,
		Thumbnail:   thumbFile,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusCreated, video, "Video published successfully")
}

// GetVideo returns a video with its owner and like count (public)
func (s *Server) GetVideo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	video, err := s.videoService.Get(ctx, videoID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, video, "Video fetched successfully")
}

// UpdateVideo edits a video's details with an optional new thumbnail
// (protected, owner only)
func (s *Server) UpdateVideo(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	input := service.UpdateVideoInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	if thumbHeader, fileErr := c.FormFile("thumbnail"); fileErr == nil {
		thumbFile, thumbCloser, openErr := openUpload(thumbHeader)
		if openErr != nil {
			return models.RespondWithError(c, models.NewValidationError("Could not read thumbnail file"))
		}
		defer thumbCloser.Close()
		input.Thumbnail = thumbFile
	}

	video, err := s.videoService.Update(ctx, userID, videoID, input)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, video, "Video updated successfully")
}

// DeleteVideo removes a video, its engagement rows and its media objects
// (protected, owner only)
func (s *Server) DeleteVideo(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	if err := s.videoService.Delete(ctx, userID, videoID); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{"deleted": true}, "Video deleted successfully")
}

// ToggleVideoPublish flips a video's publish state (protected, owner only)
func (s *Server) ToggleVideoPublish(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	video, err := s.videoService.TogglePublish(ctx, userID, videoID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	message := "Video unpublished successfully"
	if video.IsPublished {
		message = "Video published successfully"
	}
	return models.Respond(c, fiber.StatusOK, video, message)
}
