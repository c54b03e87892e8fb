package helpers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"folio/internal/models"
	"folio/internal/operators"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

// Sign renders the X-Hub-Signature-256 value GitHub sends for body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func API_PostWebhook(
	t *testing.T,
	app *fiber.App,
	event string,
	body []byte,
	signature string,
) (bodyBytes []byte, statusCode int) {
	req, err := http.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if event != "" {
		req.Header.Set("X-GitHub-Event", event)
	}
	if signature != "" {
		req.Header.Set("X-Hub-Signature-256", signature)
	}

	res, err := app.Test(req, fiber.TestConfig{Timeout: 0, FailOnTimeout: false})
	require.NoError(t, err)
	defer res.Body.Close()

	bodyBytes, err = io.ReadAll(res.Body)
	require.NoError(t, err)

	return bodyBytes, res.StatusCode
}

func API_GetWebhookData(
	t *testing.T,
	app *fiber.App,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"GET",
		"/api/webhook/data",
		nil,
		nil,
	)
}

func API_ClearWebhookData(
	t *testing.T,
	app *fiber.App,
	token string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"DELETE",
		"/api/webhook/data",
		nil,
		&token,
	)
}

func API_Revalidate(
	t *testing.T,
	app *fiber.App,
	token string,
	tag string,
) (bodyBytes []byte, statusCode int) {
	sendBytes, err := json.Marshal(map[string]string{"tag": tag})
	require.NoError(t, err)

	return RequestRunner(t, app,
		"POST",
		"/api/revalidate",
		sendBytes,
		&token,
	)
}

// OperatorToken signs a short-lived operator token with secret.
func OperatorToken(t *testing.T, secret []byte) string {
	token, err := operators.GenToken(secret, models.Operator{Name: "tester"}, time.Minute)
	require.NoError(t, err)
	return token
}

// DecodeHistory unmarshals a GET /api/webhook/data response.
func DecodeHistory(t *testing.T, bodyBytes []byte) []models.WebhookRecord {
	var body struct {
		WebhookData []models.WebhookRecord `json:"webhookData"`
	}
	require.NoError(t, json.Unmarshal(bodyBytes, &body))
	return body.WebhookData
}
