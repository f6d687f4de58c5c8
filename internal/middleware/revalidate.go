package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ngenohkevin/maishamaua/internal/utils"
)

// RevalidateAuth validates the bearer JWT the CMS webhook presents when
// requesting a cache invalidation.
func RevalidateAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		if err := utils.ParseRevalidateToken(secret, parts[1]); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		return c.Next()
	}
}
