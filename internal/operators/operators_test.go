package operators

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"folio/internal/models"

	sj "github.com/brianvoe/sjwt"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("operator-secret")

func TestGenTokenRoundTrip(t *testing.T) {
	token, err := GenToken(testSecret, models.Operator{Name: "owner"}, time.Minute)
	require.NoError(t, err)

	op, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	require.Equal(t, "owner", op.Name)
}

func TestGenTokenRequiresSecretAndName(t *testing.T) {
	_, err := GenToken(nil, models.Operator{Name: "owner"}, time.Minute)
	require.ErrorIs(t, err, ErrNoSecret)

	_, err = GenToken(testSecret, models.Operator{Name: "  "}, time.Minute)
	require.Error(t, err)
}

func TestParseTokenRejects(t *testing.T) {
	token, err := GenToken(testSecret, models.Operator{Name: "owner"}, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(testSecret, "not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(nil, token)
	require.ErrorIs(t, err, ErrNoSecret)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	claims := sj.New()
	claims.Set("name", "owner")
	claims.SetExpiresAt(time.Now().Add(-time.Minute))
	token := claims.Generate(testSecret)

	_, err := ParseToken(testSecret, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsNamelessClaims(t *testing.T) {
	claims := sj.New()
	claims.SetExpiresAt(time.Now().Add(time.Minute))
	token := claims.Generate(testSecret)

	_, err := ParseToken(testSecret, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func newGuardedApp(secret []byte) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", Middleware(secret), func(c fiber.Ctx) error {
		op, ok := FromContext(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(op.Name)
	})
	return app
}

func call(t *testing.T, app *fiber.App, authorization string) (int, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, "/guarded", nil)
	require.NoError(t, err)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, string(body)
}

func messageOf(t *testing.T, body string) string {
	t.Helper()

	var decoded struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	return decoded.Message
}

func TestMiddleware(t *testing.T) {
	app := newGuardedApp(testSecret)

	token, err := GenToken(testSecret, models.Operator{Name: "owner"}, time.Minute)
	require.NoError(t, err)

	status, body := call(t, app, "Bearer "+token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "owner", body)

	status, body = call(t, app, "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "no token has been provided", messageOf(t, body))

	status, body = call(t, app, "Token "+token)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "no token has been provided", messageOf(t, body))

	status, body = call(t, app, "Bearer garbage")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "invalid or expired token", messageOf(t, body))
}

func TestMiddlewareWithoutSecretRejectsEverything(t *testing.T) {
	app := newGuardedApp(nil)

	token, err := GenToken(testSecret, models.Operator{Name: "owner"}, time.Minute)
	require.NoError(t, err)

	status, _ := call(t, app, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, status)
}
