// FILE: internal/pkg/serverutils/error_middleware.go
package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"talent-search-be/internal/pkg/logger"
	"talent-search-be/pkg/apperror"
)

// ErrorHandlerMiddleware translates errors bubbling out of handlers into the
// JSON error envelope. Unclassified errors are logged server-side and
// reported as a generic INTERNAL so internals never leak to clients.
func ErrorHandlerMiddleware(sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperror.As(err); ok {
			body := ErrorEnvelope{
				Error: ErrorBody{
					Code:    appErr.Code,
					Message: appErr.Message,
				},
			}
			if appErr.Details != nil {
				body.Error.Details = appErr.Details
			}
			return ctx.Status(appErr.HTTPStatus).JSON(body)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse("INTERNAL", fiberErr.Message))
		}

		sysLogger.Error("http", "Unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("INTERNAL", "Internal server error."))
	}
}
