package githubhooks

import (
	"bytes"
	"encoding/json"

	"folio/internal/models"

	"github.com/gofiber/fiber/v3"
)

// readBody returns the exact bytes the sender signed.
func readBody(c fiber.Ctx) []byte {
	return c.BodyRaw()
}

// parseObject decodes raw as a JSON object. Anything else (invalid JSON,
// arrays, scalars, null) reports ok=false.
func parseObject(raw []byte) (fields map[string]json.RawMessage, ok bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, false
	}

	return fields, fields != nil
}

// populated reports whether the object has at least one field.
func populated(fields map[string]json.RawMessage) bool {
	return len(fields) > 0
}

// decodePayload extracts the commit data kept in the history. Absent or null
// commit fields decode to an empty list and a nil head commit.
func decodePayload(fields map[string]json.RawMessage) (models.WebhookPayload, error) {
	payload := models.WebhookPayload{Commits: []models.Commit{}}

	if raw, ok := fields["commits"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &payload.Commits); err != nil {
			return models.WebhookPayload{}, err
		}
		if payload.Commits == nil {
			payload.Commits = []models.Commit{}
		}
	}

	if raw, ok := fields["head_commit"]; ok && !isNull(raw) {
		var head models.Commit
		if err := json.Unmarshal(raw, &head); err != nil {
			return models.WebhookPayload{}, err
		}
		payload.HeadCommit = &head
	}

	return payload, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
