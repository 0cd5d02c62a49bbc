package trackedController

import (
	"scholarhub/middleware"
	"scholarhub/services"
	"scholarhub/validators/trackedValidator"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	tracked *services.TrackedService
}

func New(tracked *services.TrackedService) *Controller {
	return &Controller{tracked: tracked}
}

func (h *Controller) Track(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTrack").(*trackedValidator.TrackRequest)

	res, err := h.tracked.Track(c.UserContext(), middleware.CurrentUserID(c), reqData.ScholarshipID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if res.AlreadyExists {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarship already tracked.", res)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Scholarship tracked.", res)
}

func (h *Controller) List(c *fiber.Ctx) error {
	items, err := h.tracked.List(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tracked applications fetched successfully.", items)
}

func (h *Controller) ToggleChecklistItem(c *fiber.Ctx) error {
	reqData := c.Locals("validatedChecklistToggle").(*trackedValidator.ToggleChecklistItemRequest)

	t, err := h.tracked.ToggleChecklistItem(c.UserContext(), middleware.CurrentUserID(c), c.Params("id"), c.Params("itemId"), *reqData.Completed)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checklist updated.", t)
}

func (h *Controller) Untrack(c *fiber.Ctx) error {
	if err := h.tracked.Untrack(c.UserContext(), middleware.CurrentUserID(c), c.Params("id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scholarship untracked.", nil)
}

func (h *Controller) GetReminders(c *fiber.Ctx) error {
	reminders, err := h.tracked.GetReminders(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reminders fetched successfully.", reminders)
}
