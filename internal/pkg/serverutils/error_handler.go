package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"naeilum-be/internal/apperr"
)

// ErrorHandlerMiddleware converts core errors into the structured failure
// envelope. Recoverable input errors become 400s with their own codes; an
// insufficient corpus is a server fault and is not echoed to the caller.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch {
		case errors.Is(err, apperr.ErrInvalidSeed):
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse("INVALID_NAME", apperr.ErrInvalidSeed.Error()))
		case errors.Is(err, apperr.ErrOutOfRange):
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse("INVALID_SELECTION", apperr.ErrOutOfRange.Error()))
		case errors.Is(err, apperr.ErrNoSelection):
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse("NO_SELECTION", apperr.ErrNoSelection.Error()))
		case errors.Is(err, apperr.ErrInsufficientCorpus):
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse("NAME_GENERATION_FAILED", "could not generate names"))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse("", fe.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse("INTERNAL", "internal server error"))
	}
}
