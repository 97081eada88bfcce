package serverutils

import (
	"errors"

	"notely-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts any error escaping a handler into the
// uniform {"message": string} body. Expected conditions (HttpError) keep
// their status and message; everything else is logged with full detail and
// sanitized to a generic 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var httpErr *HttpError
		if errors.As(err, &httpErr) {
			return ctx.Status(httpErr.Status).JSON(fiber.Map{"message": httpErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"error":  err.Error(),
			"method": ctx.Method(),
			"path":   ctx.Path(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
}
