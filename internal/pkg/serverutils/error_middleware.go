package serverutils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware is the outer boundary of every operation:
// typed AppErrors map to their status, anything else (including a
// panic) becomes a generic internal error carrying the underlying
// message for diagnostics.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = writeError(ctx, &AppError{
					Status:  fiber.StatusInternalServerError,
					Message: "Internal error",
					Details: fmt.Sprintf("%v", r),
				})
			}
		}()

		err = ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return writeError(ctx, appErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return writeError(ctx, &AppError{Status: fiberErr.Code, Message: fiberErr.Message})
		}

		return writeError(ctx, &AppError{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal error",
			Details: err.Error(),
		})
	}
}

func writeError(ctx *fiber.Ctx, appErr *AppError) error {
	return ctx.Status(appErr.Status).JSON(appErr)
}
