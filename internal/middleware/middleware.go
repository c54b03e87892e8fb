package middleware

import (
	"time"

	"folio/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// RequestLogger writes one access log line per request.
func RequestLogger() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		logger.Lg.Info("http_request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", latency),
		)
		return err
	}
}
