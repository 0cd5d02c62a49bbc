package applicationRoutes

import (
	"scholarhub/controllers/applicationController"
	"scholarhub/validators/applicationValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupApplicationRoutes(router fiber.Router, auth fiber.Handler, h *applicationController.Controller) {
	group := router.Group("/applications", auth)

	group.Post("/", applicationValidator.StartApplication(), h.StartApplication)
	group.Get("/", h.ListMine)
	group.Get("/:id", applicationValidator.ApplicationID(), h.GetMine)
	group.Put("/:id/essay/draft", applicationValidator.ApplicationID(), applicationValidator.SaveEssayDraft(), h.SaveEssayDraft)
	group.Post("/:id/essay/submit", applicationValidator.ApplicationID(), h.SubmitEssay)
	group.Post("/:id/group/complete", applicationValidator.ApplicationID(), h.CompleteGroupTask)
	group.Post("/:id/interview/complete", applicationValidator.ApplicationID(), applicationValidator.CompleteInterview(), h.CompleteInterview)
	group.Post("/:id/ai-history", applicationValidator.ApplicationID(), applicationValidator.RecordAIAssistance(), h.RecordAIAssistance)
}
