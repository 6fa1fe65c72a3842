package serverutils

import (
	"ai-policyintel-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates typed application errors into HTTP
// responses. Dependency failures keep their underlying message so a caller
// can tell "your input was invalid" from "a dependency is down".
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		if kind, ok := apperror.KindOf(err); ok {
			switch kind {
			case apperror.KindValidation:
				status = fiber.StatusBadRequest
			case apperror.KindExtraction:
				status = fiber.StatusUnprocessableEntity
			case apperror.KindEmbedding, apperror.KindGeneration, apperror.KindStore:
				status = fiber.StatusBadGateway
			case apperror.KindConfiguration:
				status = fiber.StatusInternalServerError
			}
		} else if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}
