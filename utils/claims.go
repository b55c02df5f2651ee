package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Actor resolves the authenticated user's id and role from the JWT the
// Protected middleware stored on the context. Identity is always threaded
// explicitly into services from here, never read ambiently.
func Actor(c *fiber.Ctx) (uuid.UUID, string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, "", fiber.NewError(fiber.StatusUnauthorized, "Missing authentication token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	rawID, _ := claims["user_id"].(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}

	role, _ := claims["role"].(string)
	return id, role, nil
}
