// Package logging builds the process logger and the per-request log
// middleware plugged into the Fiber pipeline.
package logging

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns the process-wide logger. Production gets sampled JSON output,
// everything else a human-readable console encoder.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// RequestLogger logs one structured line per request, after the handler
// chain has run. Errors returned by handlers are rendered through the app's
// error handler first so the logged status is the one sent to the client.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		latency := time.Since(start)
		status := c.Response().StatusCode()

		requestID, _ := c.Locals("requestid").(string)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.Int("status", status),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Duration("latency", latency),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("Server error", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warn("Client error", fields...)
		default:
			log.Info("Request completed", fields...)
		}

		return nil
	}
}
