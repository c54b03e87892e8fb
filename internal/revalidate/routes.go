package revalidate

import (
	"context"
	"encoding/json"
	"strings"

	"folio/internal/errmsg"
	"folio/internal/events"
	"folio/internal/logger"
	"folio/internal/operators"
	"folio/internal/utils"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type revalidateRequest struct {
	Tag string `json:"tag"`
}

// Handlers exposes manual revalidation to operators.
type Handlers struct {
	Cache  *TagCache
	Events *events.Emitter
}

// Routes wires POST /revalidate behind guard.
func Routes(app fiber.Router, h *Handlers, guard fiber.Handler) {
	// POST /api/revalidate drops one cache tag (operator only).
	app.Post("/revalidate", guard, h.revalidate)
}

// revalidate godoc
// @Summary Revalidate a cache tag
// @Description Drops the cached render for the given tag; defaults to the blog listing.
// @Tags Cache
// @Security OperatorAuth
// @Accept json
// @Produce json
// @Param payload body revalidateRequest false "tag to revalidate"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errmsg._RevalidateInvalidRequest
// @Failure 401 {object} errmsg._OperatorInvalidToken
// @Failure 500 {object} errmsg._RevalidateFailed
// @Router /api/revalidate [post]
func (h *Handlers) revalidate(c fiber.Ctx) error {
	var req revalidateRequest
	if body := c.Body(); len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return utils.StatusError(c, errmsg.RevalidateInvalidRequest)
		}
	}

	tag := strings.TrimSpace(req.Tag)
	if tag == "" {
		tag = TagBlogs
	}

	if err := h.Cache.RevalidateTag(context.Background(), tag); err != nil {
		logger.Lg.Error("revalidate_failed", zap.String("tag", tag), zap.Error(err))
		return utils.Failure(c, errmsg.RevalidateFailed)
	}

	op, _ := operators.FromContext(c)
	h.Events.CacheRevalidated(events.ActorOperator, op.Name, tag)

	return utils.Success(c, "Revalidation successful. Tag: "+tag)
}
