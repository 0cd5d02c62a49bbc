package trackedRoutes

import (
	"scholarhub/controllers/trackedController"
	"scholarhub/validators/trackedValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupTrackedRoutes(router fiber.Router, auth fiber.Handler, h *trackedController.Controller) {
	group := router.Group("/tracked", auth)

	group.Post("/", trackedValidator.Track(), h.Track)
	group.Get("/", h.List)
	group.Get("/reminders", h.GetReminders)
	group.Put("/:id/checklist/:itemId", trackedValidator.ToggleChecklistItem(), h.ToggleChecklistItem)
	group.Delete("/:id", h.Untrack)
}
