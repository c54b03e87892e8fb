package events

import "folio/internal/models"

// WebhookPing records a connectivity test delivery.
func (e *Emitter) WebhookPing(deliveryID string) {
	if e == nil {
		return
	}

	e.Emit(models.Event{
		Action: "webhook.ping",

		ActorRole: ActorWebhook,
		ActorID:   deliveryID,

		TargetType: TargetWebhookHistory,
		TargetID:   deliveryID,

		Props: map[string]any{},
	})
}

// WebhookPushStored records an accepted delivery after it was persisted.
func (e *Emitter) WebhookPushStored(deliveryID string, record models.WebhookRecord, paths []string) {
	if e == nil {
		return
	}

	e.Emit(models.Event{
		Action: "webhook.push.stored",

		ActorRole: ActorWebhook,
		ActorID:   deliveryID,

		TargetType: TargetWebhookHistory,
		TargetID:   record.Payload.HeadCommitID(),

		Props: map[string]any{
			"eventType": record.EventType,
			"commits":   len(record.Payload.Commits),
			"paths":     paths,
		},
	})
}

// WebhookHistoryCleared records an operator wiping the stored history.
func (e *Emitter) WebhookHistoryCleared(operator string) {
	if e == nil {
		return
	}

	e.Emit(models.Event{
		Action: "webhook.history.cleared",

		ActorRole: ActorOperator,
		ActorID:   operator,

		TargetType: TargetWebhookHistory,
		TargetID:   "webhookData",

		Props: map[string]any{},
	})
}
