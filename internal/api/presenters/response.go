package presenters

import (
	"errors"

	"recipe-catalog/domain"

	"github.com/gofiber/fiber/v2"
)

type ErrorBody struct {
	Detail any `json:"detail"`
}

// SuccessResponse writes data as the bare JSON body.
func SuccessResponse(c *fiber.Ctx, data any, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse writes {"detail": detail}.
func ErrorResponse(c *fiber.Ctx, statusCode int, detail any) error {
	return c.Status(statusCode).JSON(ErrorBody{Detail: detail})
}

func ValidationErrorResponse(c *fiber.Ctx, verr *domain.ValidationError) error {
	return ErrorResponse(c, fiber.StatusUnprocessableEntity, verr.Fields)
}

// ErrorHandler renders errors that escape handlers (unknown routes, limiter,
// recovered panics) in the same shape as handler errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		detail := fe.Message
		if fe.Code == fiber.StatusNotFound {
			detail = domain.MessageRouteNotFound
		}
		return ErrorResponse(c, fe.Code, detail)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError)
}
