package handler

import (
	"errors"

	autherror "github.com/angusyg/mean-stack/internal/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler converts typed errors to the wire format {name, code,
// message} with the status mirrored in the HTTP code. Untyped errors are
// logged server-side and rendered as an opaque 500: no internals, hash
// values or stack traces ever reach the client.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *autherror.ApiError
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode >= fiber.StatusInternalServerError {
				log.Error("api error", zap.String("code", apiErr.Code), zap.Error(apiErr))
			}
			return c.Status(apiErr.StatusCode).JSON(apiErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return c.Status(fiberErr.Code).JSON(&autherror.ApiError{
				Name:    "ApiError",
				Code:    autherror.CodeInvalidInput,
				Message: fiberErr.Message,
			})
		}

		log.Error("unhandled error", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(&autherror.ApiError{
			Name:    "ApiError",
			Code:    autherror.CodeInternalError,
			Message: "Internal server error",
		})
	}
}
