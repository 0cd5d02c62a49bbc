package profileController

import (
	"scholarhub/middleware"
	"scholarhub/services"
	"scholarhub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	users *services.UserService
}

func New(users *services.UserService) *Controller {
	return &Controller{users: users}
}

func (h *Controller) GetProfile(c *fiber.Ctx) error {
	user, err := h.users.GetProfile(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", user)
}

func (h *Controller) UpdateGrades(c *fiber.Ctx) error {
	reqData := c.Locals("validatedGrades").(*userValidator.UpdateGradesRequest)

	user, err := h.users.UpdateGrades(c.UserContext(), middleware.CurrentUserID(c), reqData.GPA, reqData.Grades)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Grades updated successfully.", user)
}

func (h *Controller) AdvanceOnboarding(c *fiber.Ctx) error {
	reqData := c.Locals("validatedOnboarding").(*userValidator.AdvanceOnboardingRequest)

	user, err := h.users.AdvanceOnboarding(c.UserContext(), middleware.CurrentUserID(c), *reqData.Step)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Onboarding updated.", user)
}

func (h *Controller) ToggleAdminMode(c *fiber.Ctx) error {
	reqData := c.Locals("validatedAdminMode").(*userValidator.ToggleAdminModeRequest)

	user, err := h.users.ToggleAdminMode(c.UserContext(), middleware.CurrentUserID(c), *reqData.Enable)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	message := "Admin mode disabled."
	if user.IsAdmin() {
		message = "Admin mode enabled."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, user)
}
