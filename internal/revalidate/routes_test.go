package revalidate

import (
	"bytes"
	"context"
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

var operatorSecret = []byte("operator-secret")

func newRevalidateApp(t *testing.T) (*fiber.App, *TagCache) {
	t.Helper()

	cache := newTestTagCache(t)

	app := fiber.New()
	Routes(app.Group("/api"), &Handlers{Cache: cache}, operators.Middleware(operatorSecret))

	return app, cache
}

func operatorToken(t *testing.T) string {
	t.Helper()

	token, err := operators.GenToken(operatorSecret, models.Operator{Name: "owner"}, time.Minute)
	require.NoError(t, err)
	return token
}

func post(t *testing.T, app *fiber.App, body []byte, token string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/api/revalidate", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	return res.StatusCode, decoded
}

func TestRevalidateRouteDefaultsToBlogListing(t *testing.T) {
	app, cache := newRevalidateApp(t)
	ctx := context.Background()

	calls := 0
	fetch := func(context.Context) (string, error) {
		calls++
		return "listing", nil
	}
	_, err := Remember(ctx, cache, TagBlogs, fetch)
	require.NoError(t, err)

	status, body := post(t, app, nil, operatorToken(t))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Revalidation successful. Tag: github-blogs", body["message"])

	_, err = Remember(ctx, cache, TagBlogs, fetch)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestRevalidateRouteNamedTag(t *testing.T) {
	app, _ := newRevalidateApp(t)

	status, body := post(t, app, []byte(`{"tag":"github-blog-post-posts/a.md"}`), operatorToken(t))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Revalidation successful. Tag: github-blog-post-posts/a.md", body["message"])
}

func TestRevalidateRouteRejectsMalformedBody(t *testing.T) {
	app, _ := newRevalidateApp(t)

	status, body := post(t, app, []byte(`{"tag":`), operatorToken(t))
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid revalidation payload", body["message"])
}

func TestRevalidateRouteRequiresOperator(t *testing.T) {
	app, _ := newRevalidateApp(t)

	status, body := post(t, app, []byte(`{"tag":"github-blogs"}`), "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "no token has been provided", body["message"])
}
