package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"team-notes-be/internal/pkg/logger"
)

// RequestIDMiddleware tags every request with an id (honoring an
// incoming X-Request-ID) and logs method, path, status and latency once
// the handler chain finishes.
func RequestIDMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestID := ctx.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx.Locals("request_id", requestID)
		ctx.Set("X-Request-ID", requestID)

		start := time.Now()
		err := ctx.Next()

		details := map[string]interface{}{
			"request_id": requestID,
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     ctx.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
		}
		if ctx.Response().StatusCode() >= 500 {
			log.Error("http", "request completed", details)
		} else {
			log.Info("http", "request completed", details)
		}
		return err
	}
}
