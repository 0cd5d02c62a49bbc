package scholarshipRoutes

import (
	"scholarhub/controllers/scholarshipController"
	"scholarhub/validators/scholarshipValidator"

	"github.com/gofiber/fiber/v2"
)

// Scholarships are public; no auth.
func SetupScholarshipRoutes(router fiber.Router, h *scholarshipController.Controller) {
	group := router.Group("/scholarships")

	group.Get("/", scholarshipValidator.ListScholarships(), h.List)
	group.Get("/:id", h.Get)
}
