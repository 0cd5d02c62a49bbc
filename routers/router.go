package routers

import (
	"scholarhub/controllers/adminController"
	"scholarhub/controllers/applicationController"
	"scholarhub/controllers/documentController"
	"scholarhub/controllers/profileController"
	"scholarhub/controllers/scholarshipController"
	"scholarhub/controllers/trackedController"
	"scholarhub/middleware"
	"scholarhub/routers/adminRoutes"
	"scholarhub/routers/applicationRoutes"
	"scholarhub/routers/documentRoutes"
	"scholarhub/routers/profileRoutes"
	"scholarhub/routers/scholarshipRoutes"
	"scholarhub/routers/trackedRoutes"
	"scholarhub/services"

	"github.com/gofiber/fiber/v2"
)

// Services is everything the HTTP layer calls into
type Services struct {
	Gate         *services.RoleGate
	Applications *services.ApplicationService
	Admin        *services.AdminService
	Users        *services.UserService
	Tracked      *services.TrackedService
	Documents    *services.DocumentService
	Scholarships *services.ScholarshipService
}

// Setup mounts every route under /api/v1
func Setup(app *fiber.App, verifier *middleware.JWTVerifier, svc Services) {
	auth := middleware.JWTMiddleware(verifier, svc.Users)
	api := app.Group("/api/v1")

	app.Get("/health", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})

	scholarshipRoutes.SetupScholarshipRoutes(api, scholarshipController.New(svc.Scholarships))
	profileRoutes.SetupProfileRoutes(api, auth, profileController.New(svc.Users))
	applicationRoutes.SetupApplicationRoutes(api, auth, applicationController.New(svc.Applications))
	adminRoutes.SetupAdminRoutes(api, auth, middleware.RequireAdmin(svc.Gate), adminController.New(svc.Admin))
	trackedRoutes.SetupTrackedRoutes(api, auth, trackedController.New(svc.Tracked))
	documentRoutes.SetupDocumentRoutes(api, auth, documentController.New(svc.Documents))
}
