package scholarshipValidator

import (
	"scholarhub/middleware"
	"scholarhub/validators"

	"github.com/gofiber/fiber/v2"
)

type ListScholarshipsRequest struct {
	Page  int `query:"page" json:"page" validate:"omitempty,gte=1"`
	Limit int `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
}

func ListScholarships() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListScholarshipsRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedScholarshipList", reqData)
		return c.Next()
	}
}
