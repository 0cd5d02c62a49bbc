package documentRoutes

import (
	"scholarhub/controllers/documentController"
	"scholarhub/validators/documentValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupDocumentRoutes(router fiber.Router, auth fiber.Handler, h *documentController.Controller) {
	group := router.Group("/documents", auth)

	group.Post("/", documentValidator.UploadDocument(), h.Upload)
	group.Get("/", h.List)
}
