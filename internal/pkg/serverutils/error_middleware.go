package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"team-notes-be/internal/dto"
	"team-notes-be/internal/pkg/logger"
	"team-notes-be/internal/service"
)

// ErrorHandlerMiddleware maps service error kinds onto HTTP statuses and
// the uniform {success:false, message} body. Unexpected errors (including
// an undecodable stored collection) come back as 500 and get logged.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var quotaErr *dto.QuotaExceededError
		var fiberErr *fiber.Error

		switch {
		case errors.Is(err, service.ErrTenantNotFound),
			errors.Is(err, service.ErrMembershipNotFound),
			errors.Is(err, service.ErrNoteNotFound),
			errors.Is(err, service.ErrUserNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidInviteCode):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(err.Error()))
		case errors.As(err, &quotaErr):
			return ctx.Status(fiber.StatusPaymentRequired).JSON(ErrorResponse(quotaErr.Error()))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		default:
			log.Error("http", "unhandled error", map[string]interface{}{
				"error": err.Error(),
				"path":  ctx.Path(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
		}
	}
}
