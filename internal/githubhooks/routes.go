// Package githubhooks receives repository webhooks, records push deliveries
// and revalidates the cached pages they touch.
package githubhooks

import "github.com/gofiber/fiber/v3"

// Routes wires the webhook endpoint under /api.
func Routes(app fiber.Router, h *Handler) {
	// POST /api/webhook ingests deliveries from GitHub.
	app.Post("/webhook", h.Handle)
}
