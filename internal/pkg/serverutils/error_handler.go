package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"askaprilai-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware converts service errors into JSON responses.
// Typed apperror values map to their status codes; anything else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			body := fiber.Map{
				"success":    false,
				"code":       appErr.HTTPStatus(),
				"message":    appErr.Message,
				"error_type": string(appErr.Kind),
			}
			if len(appErr.Fields) > 0 {
				body["required"] = appErr.Fields
			}
			for k, v := range appErr.Details {
				body[k] = v
			}
			return ctx.Status(appErr.HTTPStatus()).JSON(body)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, err.Error()))
	}
}
