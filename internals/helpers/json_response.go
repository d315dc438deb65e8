package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// JsonError: uniform failure shape. Persistence failures all land here with
// their message passed through for diagnostics; clients only branch on status.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// JsonMessage: confirmation body for deletes.
func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
	})
}
