package middleware

import (
	"errors"

	"scholarhub/apperror"

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

// ErrorResponse writes err using the status code for its kind. Internal errors never leak their message.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	switch appErr.Kind {
	case apperror.ValidationError:
		if len(appErr.Fields) > 0 {
			return ValidationErrorResponse(c, appErr.Fields)
		}
		return JsonResponse(c, fiber.StatusUnprocessableEntity, false, appErr.Message, nil)
	case apperror.ExtractionFailure:
		return JsonResponse(c, fiber.StatusUnprocessableEntity, false, appErr.Message, fiber.Map{
			"kind":              appErr.Kind,
			"formatUnsupported": appErr.FormatUnsupported,
		})
	case apperror.Internal:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
	return JsonResponse(c, statusFor(appErr.Kind), false, appErr.Message, fiber.Map{"kind": appErr.Kind})
}

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.NotFound:
		return fiber.StatusNotFound
	case apperror.Forbidden:
		return fiber.StatusForbidden
	case apperror.Unauthorized:
		return fiber.StatusUnauthorized
	case apperror.InvalidState, apperror.Conflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
