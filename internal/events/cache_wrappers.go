package events

import "folio/internal/models"

// CacheRevalidated records one revalidated cache tag.
func (e *Emitter) CacheRevalidated(actorRole, actorID, tag string) {
	if e == nil {
		return
	}

	e.Emit(models.Event{
		Action: "cache.revalidated",

		ActorRole: actorRole,
		ActorID:   actorID,

		TargetType: TargetCacheTag,
		TargetID:   tag,

		Props: map[string]any{},
	})
}
