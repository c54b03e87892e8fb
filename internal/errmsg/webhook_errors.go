package errmsg

import "net/http"

// Webhook outcomes. Every authentication failure shares one message so the
// sender cannot tell which gate rejected it.
var (
	WebhookUnauthorized = NewStatusError(http.StatusUnauthorized, "Unauthorized!")
	WebhookPostError    = NewStatusError(http.StatusBadRequest, "Webhook POST error!")
	WebhookDataNotFound = NewStatusError(http.StatusNotFound, "Webhook data not found!")
	WebhookGetError     = NewStatusError(http.StatusBadRequest, "Webhook GET error!")
	WebhookClearError   = NewStatusError(http.StatusBadRequest, "Webhook DELETE error!")
)

type _WebhookUnauthorized struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Unauthorized!"`
}

type _WebhookPostError struct {
	Error string `json:"error" example:"Webhook POST error!"`
}

type _WebhookDataNotFound struct {
	Error       string `json:"error" example:"Webhook data not found!"`
	WebhookData any    `json:"webhookData"`
}

type _WebhookGetError struct {
	Error       string `json:"error" example:"Webhook GET error!"`
	WebhookData any    `json:"webhookData"`
}

type _WebhookClearError struct {
	Error string `json:"error" example:"Webhook DELETE error!"`
}
