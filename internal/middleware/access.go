package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const CallerIDKey = "caller_id"

// AccessChecker answers allow-list membership questions.
type AccessChecker interface {
	IsDeveloper(ctx context.Context, userID string) (bool, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// DeveloperAccess gates the developer console. The caller identifies itself
// through the :userId path segment; access is a flat allow-list lookup.
func DeveloperAccess(access AccessChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		ok, err := access.IsDeveloper(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Не удалось проверить доступ",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Доступ запрещён",
			})
		}

		c.Locals(CallerIDKey, userID)
		return c.Next()
	}
}

// AdminAccess gates the admin console. The caller passes its id as the
// userId query parameter; blank ids are rejected before the lookup.
func AdminAccess(access AccessChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Query("userId")

		ok, err := access.IsAdmin(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Не удалось проверить доступ",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Доступ запрещён",
			})
		}

		c.Locals(CallerIDKey, userID)
		return c.Next()
	}
}

// GetCallerID returns the id the access middleware verified.
func GetCallerID(c *fiber.Ctx) string {
	id, ok := c.Locals(CallerIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
