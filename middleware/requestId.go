package middleware

import (
	"foodapi/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID reuses the caller's X-Request-ID or generates one, echoes it back
// and stores it in the user context for log lines.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("requestId", id)
		c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}
