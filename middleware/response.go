package middleware

import (
	"school/services"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// StatusFor maps a service error kind to the HTTP status returned to clients.
func StatusFor(kind services.Kind) int {
	switch kind {
	case services.KindNotFound:
		return fiber.StatusNotFound
	case services.KindConflict:
		return fiber.StatusConflict
	case services.KindInvalidInput:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ServiceErrorResponse writes err in the standard envelope. Internal details
// stay in the server log.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	kind := services.KindOf(err)
	message := err.Error()
	if kind == services.KindInternal {
		message = "Internal server error!"
	}
	return JsonResponse(c, StatusFor(kind), false, message, nil)
}

// ErrorHandler is the fiber error handler; it keeps the envelope for routing
// errors and recovered panics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return JsonResponse(c, e.Code, false, e.Message, nil)
	}
	return ServiceErrorResponse(c, err)
}
