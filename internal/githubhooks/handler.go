package githubhooks

import (
	"context"
	"strings"
	"time"

	"folio/internal/errmsg"
	"folio/internal/events"
	"folio/internal/logger"
	"folio/internal/models"
	"folio/internal/utils"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// GitHub header keys and the event types the handler distinguishes.
const (
	signatureHeader = "X-Hub-Signature-256"
	eventHeader     = "X-GitHub-Event"
	deliveryHeader  = "X-GitHub-Delivery"

	pingEvent    = "ping"
	unknownEvent = "unknown"
)

// timestampLayout renders UTC times as ISO-8601 with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Records is where accepted deliveries are persisted.
type Records interface {
	Push(ctx context.Context, record models.WebhookRecord) error
}

// Revalidator drops cached renders by tag.
type Revalidator interface {
	RevalidateTag(ctx context.Context, tag string) error
}

// Handler ingests webhook deliveries. Each request runs the same gated
// pipeline: intake, parse, authenticate, classify, persist, invalidate.
type Handler struct {
	Secret  string
	Records Records
	Cache   Revalidator
	Events  *events.Emitter

	// Now and Log default to time.Now and logger.Lg.
	Now func() time.Time
	Log *zap.Logger
}

// Handle godoc
// @Summary Receive a repository webhook
// @Description Verifies the X-Hub-Signature-256 HMAC, stores push deliveries in the webhook history and revalidates the affected cache tags.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-Hub-Signature-256 header string true "sha256=<hex digest>"
// @Param X-GitHub-Event header string true "event type"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errmsg._WebhookPostError
// @Failure 401 {object} errmsg._WebhookUnauthorized
// @Router /api/webhook [post]
func (h *Handler) Handle(c fiber.Ctx) (err error) {
	log := h.logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error("webhook_post_error", zap.Any("panic", r))
			err = utils.ErrorField(c, errmsg.WebhookPostError)
		}
	}()

	raw := readBody(c)
	if len(raw) == 0 {
		return h.reject(c, "empty body")
	}

	fields, ok := parseObject(raw)
	if !ok {
		return h.reject(c, "unparseable body")
	}

	if !VerifySignature(h.Secret, c.Get(signatureHeader), raw) || !populated(fields) {
		return h.reject(c, "signature or payload")
	}

	deliveryID := strings.TrimSpace(c.Get(deliveryHeader))

	eventType := c.Get(eventHeader)
	if eventType == "" {
		eventType = unknownEvent
	}

	switch eventType {
	case pingEvent:
		h.Events.WebhookPing(deliveryID)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Pong!"})
	case unknownEvent:
		return h.reject(c, "unknown event type")
	}

	payload, err := decodePayload(fields)
	if err != nil {
		log.Error("webhook_post_error", zap.String("stage", "decode"), zap.Error(err))
		return utils.ErrorField(c, errmsg.WebhookPostError)
	}

	record := models.WebhookRecord{
		Timestamp: h.now().UTC().Format(timestampLayout),
		EventType: eventType,
		Payload:   payload,
	}

	ctx := context.Background()

	if err := h.Records.Push(ctx, record); err != nil {
		log.Error("webhook_post_error", zap.String("stage", "store"), zap.Error(err))
		return utils.ErrorField(c, errmsg.WebhookPostError)
	}

	paths := ChangedPaths(payload)
	h.Events.WebhookPushStored(deliveryID, record, paths)

	h.invalidate(ctx, PlanRevalidation(payload), deliveryID)

	return utils.Success(c, "Github webhook received!")
}

// invalidate revalidates every tag; failures are logged and never change
// the response.
func (h *Handler) invalidate(ctx context.Context, tags []string, deliveryID string) {
	if h.Cache == nil {
		return
	}

	for _, tag := range tags {
		if err := h.Cache.RevalidateTag(ctx, tag); err != nil {
			h.logger().Warn("revalidate_failed", zap.String("tag", tag), zap.Error(err))
			continue
		}
		h.Events.CacheRevalidated(events.ActorWebhook, deliveryID, tag)
	}
}

func (h *Handler) reject(c fiber.Ctx, reason string) error {
	h.logger().Info("webhook_rejected",
		zap.String("reason", reason),
		zap.String("ip", c.IP()),
	)
	return utils.Unauthorized(c, errmsg.WebhookUnauthorized)
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) logger() *zap.Logger {
	if h.Log != nil {
		return h.Log
	}
	return logger.Lg
}
