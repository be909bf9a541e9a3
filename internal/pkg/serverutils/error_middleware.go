package serverutils

import (
	"errors"

	"ai-course-assistant-be/internal/pkg/logger"
	"ai-course-assistant-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts returned errors into the response envelope.
// Failures travel the error channel, never the answer payload.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		} else if errors.Is(err, llm.ErrUnknownProvider) {
			status = fiber.StatusBadRequest
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("http", "request failed", map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(status).JSON(ErrorResponse(err.Error()))
	}
}
