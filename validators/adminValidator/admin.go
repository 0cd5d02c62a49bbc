package adminValidator

import (
	"strings"
	"time"

	"scholarhub/middleware"
	"scholarhub/validators"

	"github.com/gofiber/fiber/v2"
)

type ApproveStageRequest struct {
	Passed *bool   `json:"passed" validate:"required"`
	Notes  *string `json:"notes" validate:"omitempty,max=2000"`
}

type ScheduleInterviewRequest struct {
	Interviewer string     `json:"interviewer" validate:"required,max=200"`
	ScheduledAt *time.Time `json:"scheduledAt" validate:"required"`
}

func ApproveStage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ApproveStageRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApproveStage", reqData)
		return c.Next()
	}
}

func ScheduleInterview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ScheduleInterviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Interviewer = strings.TrimSpace(reqData.Interviewer)

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedScheduleInterview", reqData)
		return c.Next()
	}
}
