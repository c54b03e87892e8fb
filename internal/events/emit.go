package events

import (
	"context"
	"time"

	"folio/internal/models"

	"github.com/google/uuid"
)

const (
	ActorOperator = "operator"
	ActorWebhook  = "webhook"
)

const (
	TargetWebhookHistory = "webhook_history"
	TargetCacheTag       = "cache_tag"
)

// Emit stamps evt and queues it. When the buffer is full the event is
// written synchronously instead of being dropped.
func (e *Emitter) Emit(evt models.Event) {
	if e == nil {
		return
	}

	evt.TimeStamp = time.Now().UTC()
	if evt.Key == "" {
		evt.Key = uuid.NewString()
	}

	select {
	case e.buf <- evt:
	default:
		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)
		defer cancel()

		_ = e.sink.InsertOne(ctx, evt)
	}
}
