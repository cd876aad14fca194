package middlewares

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"
)

// AdminKey rejects administrative requests whose body `key` field does not
// match the configured shared secret. No handler runs, and nothing mutates,
// on a mismatch.
func AdminKey(key string) fiber.Handler {
	return func(c fiber.Ctx) error {
		var body struct {
			Key string `json:"key"`
		}

		if err := c.Bind().Body(&body); err != nil {
			return fiber.NewError(fiber.StatusForbidden, "You are not authorized. Wrong key.")
		}

		if subtle.ConstantTimeCompare([]byte(body.Key), []byte(key)) != 1 {
			return fiber.NewError(fiber.StatusForbidden, "You are not authorized. Wrong key.")
		}

		return c.Next()
	}
}
