package adminRoutes

import (
	"scholarhub/controllers/adminController"
	"scholarhub/validators/adminValidator"
	"scholarhub/validators/applicationValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(router fiber.Router, auth, requireAdmin fiber.Handler, h *adminController.Controller) {
	group := router.Group("/admin", auth, requireAdmin)

	group.Get("/applications/pending", h.ListPendingReviews)
	group.Get("/applications/:id", applicationValidator.ApplicationID(), h.GetApplication)
	group.Post("/applications/:id/approve", applicationValidator.ApplicationID(), adminValidator.ApproveStage(), h.ApproveStage)
	group.Post("/applications/:id/interview", applicationValidator.ApplicationID(), adminValidator.ScheduleInterview(), h.ScheduleInterview)
}
