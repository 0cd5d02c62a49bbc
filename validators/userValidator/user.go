package userValidator

import (
	"scholarhub/middleware"
	"scholarhub/validators"

	"github.com/gofiber/fiber/v2"
)

type UpdateGradesRequest struct {
	GPA    *float64           `json:"gpa" validate:"omitempty,gte=0,lte=10"`
	Grades map[string]float64 `json:"grades" validate:"omitempty,dive,keys,required,max=64,endkeys,gte=0,lte=100"`
}

type AdvanceOnboardingRequest struct {
	Step *int `json:"step" validate:"required,gte=0,lte=4"`
}

type ToggleAdminModeRequest struct {
	Enable *bool `json:"enable" validate:"required"`
}

func UpdateGrades() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateGradesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validators.Struct(reqData)
		if errors == nil {
			errors = map[string]string{}
		}
		if reqData.GPA == nil && len(reqData.Grades) == 0 {
			errors["grades"] = "Provide a GPA or at least one subject grade!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrades", reqData)
		return c.Next()
	}
}

func AdvanceOnboarding() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AdvanceOnboardingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOnboarding", reqData)
		return c.Next()
	}
}

func ToggleAdminMode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ToggleAdminModeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminMode", reqData)
		return c.Next()
	}
}
