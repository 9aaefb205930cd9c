package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"wordlife_backend/internals/configs"
)

// AdminOnly guards maintenance routes with a HS256 bearer token carrying
// role=admin. The tracker has no end-user accounts, so this is the only auth
// surface in the service.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := configs.AdminJWTSecret
		if secret == "" {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Admin auth is not configured")
		}

		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing bearer token")
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		if role, _ := claims["role"].(string); role != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Admin role required")
		}

		c.Locals("admin", true)
		return c.Next()
	}
}
