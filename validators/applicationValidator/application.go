package applicationValidator

import (
	"strings"

	"scholarhub/middleware"
	"scholarhub/models"
	"scholarhub/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StartApplicationRequest struct {
	ScholarshipID string `json:"scholarshipId" validate:"required,max=64"`
}

type SaveEssayDraftRequest struct {
	Draft string `json:"draft" validate:"required,max=20000"`
}

type CompleteInterviewRequest struct {
	ReflectionNotes string `json:"reflectionNotes" validate:"max=5000"`
}

type RecordAIAssistanceRequest struct {
	Stage    models.Stage `json:"stage" validate:"required,oneof=essay group interview"`
	Prompt   string       `json:"prompt" validate:"required,max=4000"`
	Response string       `json:"response" validate:"required,max=20000"`
}

// ApplicationID checks the :id path parameter and stores it as "applicationId"
func ApplicationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("id"))
		if id == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Application ID is required!", nil)
		}
		if _, err := uuid.Parse(id); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Application ID!", nil)
		}
		c.Locals("applicationId", id)
		return c.Next()
	}
}

func StartApplication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StartApplicationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.ScholarshipID = strings.TrimSpace(reqData.ScholarshipID)

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStartApplication", reqData)
		return c.Next()
	}
}

func SaveEssayDraft() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SaveEssayDraftRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEssayDraft", reqData)
		return c.Next()
	}
}

func CompleteInterview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteInterviewRequest)
		// The body is optional here.
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompleteInterview", reqData)
		return c.Next()
	}
}

func RecordAIAssistance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RecordAIAssistanceRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Stage = models.Stage(strings.ToLower(strings.TrimSpace(string(reqData.Stage))))

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAIAssistance", reqData)
		return c.Next()
	}
}
