package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Idempotency replays cached responses for repeated mutating requests that
// carry the same X-Correlation-ID. Mobile clients retry workout submissions on
// flaky connections; without this a retry would double-log the workout.
func Idempotency(redisClient *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		default:
			return c.Next()
		}

		correlationID := c.Get("X-Correlation-ID")
		if correlationID == "" {
			return c.Next()
		}

		key := "idempotency:" + correlationID

		cached, err := redisClient.Get(c.Context(), key).Bytes()
		if err == nil && len(cached) > 0 {
			c.Set("X-Idempotent-Replay", "true")
			c.Set("Content-Type", "application/json")
			return c.Send(cached)
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Only successful responses are replayable; errors should be retried
		// for real
		statusCode := c.Response().StatusCode()
		if statusCode >= 200 && statusCode < 300 {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())
			if len(body) > 0 {
				go func() {
					bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
					defer cancel()
					redisClient.Set(bgCtx, key, body, ttl)
				}()
			}
		}

		return nil
	}
}
