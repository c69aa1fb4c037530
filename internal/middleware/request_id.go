package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
)

const RequestIDHeader = "X-Request-ID"

// RequestID attaches a ULID to every request that arrives without one. ULIDs
// sort by time, which makes chasing a request through the logs pleasant.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}
		c.Locals(RequestIDHeader, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// GetRequestID extracts the request ID from Fiber context
func GetRequestID(c *fiber.Ctx) string {
	id, ok := c.Locals(RequestIDHeader).(string)
	if !ok {
		return ""
	}
	return id
}
