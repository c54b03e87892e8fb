package models

// WebhookRecord is the normalized form of one accepted delivery, as stored
// in the webhook history.
type WebhookRecord struct {
	Timestamp string         `json:"timestamp"`
	EventType string         `json:"eventType"`
	Payload   WebhookPayload `json:"payload"`
}

// WebhookPayload keeps the commit data of a delivery.
type WebhookPayload struct {
	Commits    []Commit `json:"commits"`
	HeadCommit *Commit  `json:"head_commit"`
}

// HeadCommitID returns the head commit id, or "" when there is none.
func (p WebhookPayload) HeadCommitID() string {
	if p.HeadCommit == nil {
		return ""
	}
	return p.HeadCommit.ID
}
