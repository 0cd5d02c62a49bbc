package applicationController

import (
	"scholarhub/middleware"
	"scholarhub/services"
	"scholarhub/validators/applicationValidator"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	applications *services.ApplicationService
}

func New(applications *services.ApplicationService) *Controller {
	return &Controller{applications: applications}
}

func (h *Controller) StartApplication(c *fiber.Ctx) error {
	reqData := c.Locals("validatedStartApplication").(*applicationValidator.StartApplicationRequest)

	res, err := h.applications.StartApplication(c.UserContext(), middleware.CurrentUserID(c), reqData.ScholarshipID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if res.AlreadyExists {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Application already exists.", res)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application started successfully.", res)
}

func (h *Controller) ListMine(c *fiber.Ctx) error {
	apps, err := h.applications.ListMine(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully.", apps)
}

func (h *Controller) GetMine(c *fiber.Ctx) error {
	app, err := h.applications.GetMine(c.UserContext(), middleware.CurrentUserID(c), c.Locals("applicationId").(string))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application fetched successfully.", app)
}

func (h *Controller) SaveEssayDraft(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEssayDraft").(*applicationValidator.SaveEssayDraftRequest)

	app, err := h.applications.SaveEssayDraft(c.UserContext(), middleware.CurrentUserID(c), c.Locals("applicationId").(string), reqData.Draft)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft saved.", app)
}

func (h *Controller) SubmitEssay(c *fiber.Ctx) error {
	app, err := h.applications.SubmitEssay(c.UserContext(), middleware.CurrentUserID(c), c.Locals("applicationId").(string))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Essay submitted for review.", app)
}

func (h *Controller) CompleteGroupTask(c *fiber.Ctx) error {
	app, err := h.applications.CompleteGroupTask(c.UserContext(), middleware.CurrentUserID(c), c.Locals("applicationId").(string))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Group task completed.", app)
}

func (h *Controller) CompleteInterview(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCompleteInterview").(*applicationValidator.CompleteInterviewRequest)

	app, err := h.applications.CompleteInterview(c.UserContext(), middleware.CurrentUserID(c), c.Locals("applicationId").(string), reqData.ReflectionNotes)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interview marked as completed.", app)
}

func (h *Controller) RecordAIAssistance(c *fiber.Ctx) error {
	reqData := c.Locals("validatedAIAssistance").(*applicationValidator.RecordAIAssistanceRequest)

	app, err := h.applications.RecordAIAssistance(c.UserContext(), middleware.CurrentUserID(c), c.Locals("applicationId").(string),
		reqData.Stage, reqData.Prompt, reqData.Response)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "AI assistance recorded.", app)
}
