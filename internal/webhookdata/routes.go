package webhookdata

import (
	"context"

	"folio/internal/errmsg"
	"folio/internal/events"
	"folio/internal/logger"
	"folio/internal/models"
	"folio/internal/operators"
	"folio/internal/utils"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// Handlers serves the stored webhook history. Reads always go to the
// key-value store so every process sees the same history.
type Handlers struct {
	Store  *Store
	Events *events.Emitter
}

type webhookDataResponse struct {
	WebhookData []models.WebhookRecord `json:"webhookData"`
}

// Routes wires /webhook/data; guard protects the destructive route.
func Routes(app fiber.Router, h *Handlers, guard fiber.Handler) {
	// GET /api/webhook/data returns the history, newest first.
	app.Get("/webhook/data", h.get)

	// DELETE /api/webhook/data wipes the history (operator only).
	app.Delete("/webhook/data", guard, h.clear)
}

// get godoc
// @Summary Webhook history
// @Description Returns the stored webhook deliveries, newest first.
// @Tags Webhook
// @Produce json
// @Success 200 {object} webhookDataResponse
// @Failure 400 {object} errmsg._WebhookGetError
// @Failure 404 {object} errmsg._WebhookDataNotFound
// @Router /api/webhook/data [get]
func (h *Handlers) get(c fiber.Ctx) error {
	history, err := h.Store.List(context.Background())
	if err != nil {
		if IsNotFound(err) {
			return utils.ErrorField(c, errmsg.WebhookDataNotFound, fiber.Map{"webhookData": nil})
		}

		logger.Lg.Error("webhook_get_error", zap.Error(err))
		return utils.ErrorField(c, errmsg.WebhookGetError, fiber.Map{"webhookData": nil})
	}

	return c.Status(fiber.StatusOK).JSON(webhookDataResponse{WebhookData: history})
}

// clear godoc
// @Summary Clear webhook history
// @Tags Webhook
// @Security OperatorAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} errmsg._WebhookClearError
// @Failure 401 {object} errmsg._OperatorInvalidToken
// @Router /api/webhook/data [delete]
func (h *Handlers) clear(c fiber.Ctx) error {
	ctx := context.Background()

	if err := h.Store.Clear(ctx); err != nil {
		logger.Lg.Error("webhook_clear_error", zap.Error(err))
		return utils.ErrorField(c, errmsg.WebhookClearError)
	}

	op, _ := operators.FromContext(c)
	h.Events.WebhookHistoryCleared(op.Name)

	return utils.Success(c, "Webhook data cleared!")
}
