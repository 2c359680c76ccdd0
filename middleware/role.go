package middleware

import (
	"talyouth/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that restricts a route to the given roles.
// Identity must already be resolved by JWTMiddleware.
func RequireRole(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: role not resolved", nil)
		}

		// Exhaustive over the closed role set; anything else is rejected.
		switch role {
		case models.RoleParticipant, models.RoleMentor, models.RoleOther:
			for _, a := range allowed {
				if role == a {
					return c.Next()
				}
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied. This section is restricted.", nil)
	}
}
