package utils

import (
	"folio/internal/errmsg"

	"github.com/gofiber/fiber/v3"
)

func StatusError(c fiber.Ctx, se errmsg.StatusError) error {
	return c.Status(se.StatusCode).JSON(map[string]string{
		"message": se.Message,
	})
}

// Unauthorized renders the {"success":false,"message":...} envelope.
func Unauthorized(c fiber.Ctx, se errmsg.StatusError) error {
	return c.Status(se.StatusCode).JSON(fiber.Map{
		"success": false,
		"message": se.Message,
	})
}

// ErrorField renders {"error": message} merged with any extra fields.
func ErrorField(c fiber.Ctx, se errmsg.StatusError, extra ...fiber.Map) error {
	body := fiber.Map{"error": se.Message}
	for _, fields := range extra {
		for k, v := range fields {
			body[k] = v
		}
	}

	return c.Status(se.StatusCode).JSON(body)
}

// Failure renders {"success":false,"error": message}.
func Failure(c fiber.Ctx, se errmsg.StatusError) error {
	return c.Status(se.StatusCode).JSON(fiber.Map{
		"success": false,
		"error":   se.Message,
	})
}

func Success(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}
