package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger logs one entry per request. Errors returned by later handlers
// are passed to the app's error handler first so the logged status is final.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		// Fields may be retained by the core after the request buffer is reused.
		method := utils.CopyString(c.Method())
		path := utils.CopyString(c.Path())

		if err := c.Next(); err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			log.Error("request error", zap.String("path", path), zap.Error(err))
		}

		status := c.Response().StatusCode()
		fields := []zapcore.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", utils.CopyString(c.IP())),
		}
		if requestID, ok := c.Locals("requestid").(string); ok {
			fields = append(fields, zap.String("request_id", requestID))
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("HTTP request failed", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warn("HTTP request rejected", fields...)
		default:
			log.Info("HTTP request completed", fields...)
		}

		return nil
	}
}
