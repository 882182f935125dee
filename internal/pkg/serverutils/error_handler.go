package serverutils

import (
	"errors"

	"ai-mockinterview-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates service errors into JSON responses.
// Client errors keep their message; unexpected errors are masked.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		var upstream *dto.UpstreamError
		switch {
		case errors.Is(err, dto.ErrDocumentsMissing),
			errors.Is(err, dto.ErrInvalidDocumentType),
			errors.Is(err, dto.ErrEmptyDocument):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		case errors.Is(err, dto.ErrSessionNotFound),
			errors.Is(err, dto.ErrDocumentNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
		case errors.As(err, &upstream):
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(fiber.StatusBadGateway, "AI provider request failed"))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
		}
	}
}
