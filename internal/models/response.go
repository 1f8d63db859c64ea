package models

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Response is the uniform success envelope returned by every endpoint.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ErrorBody is the uniform error envelope.
type ErrorBody struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	Success    bool     `json:"success"`
}

// Respond writes the success envelope. A legitimately empty result is
// still a success; callers pass the empty slice rather than an error.
func Respond(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}

// RespondWithError writes the error envelope, deriving the status code
// from the error's taxonomy code.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := StatusForError(err)

	var details []string
	var appErr *AppError
	message := err.Error()
	if errors.As(err, &appErr) {
		message = appErr.Message
		if appErr.Err != nil {
			details = append(details, appErr.Err.Error())
		}
	}

	return c.Status(status).JSON(ErrorBody{
		StatusCode: status,
		Message:    message,
		Errors:     details,
		Success:    false,
	})
}
