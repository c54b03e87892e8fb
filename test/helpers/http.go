package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"folio/internal/errmsg"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

// RequestRunner sends a JSON request to app, with an operator bearer token
// when token is set.
func RequestRunner(
	t *testing.T,
	app *fiber.App,
	method string,
	path string,
	sendBytes []byte,
	token *string,
) (bodyBytes []byte, statusCode int) {
	req, err := http.NewRequest(method, path, bytes.NewReader(sendBytes))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", "Bearer "+*token)
	}

	res, err := app.Test(req, fiber.TestConfig{Timeout: 0, FailOnTimeout: false})
	require.NoError(t, err)
	defer res.Body.Close()

	bodyBytes, err = io.ReadAll(res.Body)
	require.NoError(t, err)

	return bodyBytes, res.StatusCode
}

// ResponseErrorCheck asserts a `{"message"}` error body for serr.
func ResponseErrorCheck(t *testing.T, serr errmsg.StatusError, bodyBytes []byte, statusCode int) {
	require.Equal(t, serr.StatusCode, statusCode)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(bodyBytes, &body))
	require.Equal(t, serr.Message, body.Message)
}
