package middleware

import (
	"net/http"
	"testing"

	"folio/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerWritesAccessLine(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := logger.Lg
	logger.Lg = zap.New(core)
	t.Cleanup(func() { logger.Lg = prev })

	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/api/meta/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	req, err := http.NewRequest(http.MethodGet, "/api/meta/ping", nil)
	require.NoError(t, err)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/api/meta/ping", fields["path"])
	require.EqualValues(t, http.StatusOK, fields["status"])
}
