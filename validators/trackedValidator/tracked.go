package trackedValidator

import (
	"strings"

	"scholarhub/middleware"
	"scholarhub/validators"

	"github.com/gofiber/fiber/v2"
)

type TrackRequest struct {
	ScholarshipID string `json:"scholarshipId" validate:"required,max=64"`
}

type ToggleChecklistItemRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

func Track() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TrackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.ScholarshipID = strings.TrimSpace(reqData.ScholarshipID)

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrack", reqData)
		return c.Next()
	}
}

func ToggleChecklistItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Params("itemId")) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Checklist item ID is required!", nil)
		}
		reqData := new(ToggleChecklistItemRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChecklistToggle", reqData)
		return c.Next()
	}
}
