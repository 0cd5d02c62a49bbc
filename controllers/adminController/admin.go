package adminController

import (
	"scholarhub/middleware"
	"scholarhub/services"
	"scholarhub/validators/adminValidator"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	admin *services.AdminService
}

func New(admin *services.AdminService) *Controller {
	return &Controller{admin: admin}
}

func (h *Controller) ListPendingReviews(c *fiber.Ctx) error {
	apps, err := h.admin.ListPendingReviews(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending reviews fetched successfully.", apps)
}

func (h *Controller) GetApplication(c *fiber.Ctx) error {
	view, err := h.admin.GetApplicationForAdmin(c.UserContext(), middleware.CurrentUserID(c), c.Locals("applicationId").(string))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application fetched successfully.", view)
}

func (h *Controller) ApproveStage(c *fiber.Ctx) error {
	reqData := c.Locals("validatedApproveStage").(*adminValidator.ApproveStageRequest)

	res, err := h.admin.ApproveStage(c.UserContext(), middleware.CurrentUserID(c), c.Locals("applicationId").(string), *reqData.Passed, reqData.Notes)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	message := "Stage approved."
	if !*reqData.Passed {
		message = "Stage rejected."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, res)
}

func (h *Controller) ScheduleInterview(c *fiber.Ctx) error {
	reqData := c.Locals("validatedScheduleInterview").(*adminValidator.ScheduleInterviewRequest)

	app, err := h.admin.ScheduleInterview(c.UserContext(), middleware.CurrentUserID(c), c.Locals("applicationId").(string), reqData.Interviewer, *reqData.ScheduledAt)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interview scheduled.", app)
}
