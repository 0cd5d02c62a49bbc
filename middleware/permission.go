package middleware

import (
	"context"

	"scholarhub/models"

	"github.com/gofiber/fiber/v2"
)

// AdminChecker is satisfied by the role gate
type AdminChecker interface {
	RequireAdmin(ctx context.Context, uid string) (*models.User, error)
}

// RequireAdmin rejects callers that are not in admin mode. Must run after JWTMiddleware.
func RequireAdmin(gate AdminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid := CurrentUserID(c)
		if uid == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}
		if _, err := gate.RequireAdmin(c.UserContext(), uid); err != nil {
			return ErrorResponse(c, err)
		}
		return c.Next()
	}
}
