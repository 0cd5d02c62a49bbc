package profileRoutes

import (
	"scholarhub/controllers/profileController"
	"scholarhub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(router fiber.Router, auth fiber.Handler, h *profileController.Controller) {
	group := router.Group("/user", auth)

	group.Get("/profile", h.GetProfile)
	group.Put("/grades", userValidator.UpdateGrades(), h.UpdateGrades)
	group.Put("/onboarding", userValidator.AdvanceOnboarding(), h.AdvanceOnboarding)
	group.Post("/admin-mode", userValidator.ToggleAdminMode(), h.ToggleAdminMode)
}
