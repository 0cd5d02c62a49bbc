package scholarshipController

import (
	"scholarhub/middleware"
	"scholarhub/services"
	"scholarhub/validators/scholarshipValidator"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	scholarships *services.ScholarshipService
}

func New(scholarships *services.ScholarshipService) *Controller {
	return &Controller{scholarships: scholarships}
}

func (h *Controller) List(c *fiber.Ctx) error {
	reqData := c.Locals("validatedScholarshipList").(*scholarshipValidator.ListScholarshipsRequest)

	page, err := h.scholarships.List(c.UserContext(), reqData.Page, reqData.Limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarships fetched successfully.", page)
}

func (h *Controller) Get(c *fiber.Ctx) error {
	s, err := h.scholarships.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarship fetched successfully.", s)
}
