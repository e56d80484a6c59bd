package middleware

import (
	"github.com/VorteXproCR/Expense-Tracker/internal/constants"
	"github.com/gofiber/fiber/v2"
)

const IdempotencyKeyHeader = "X-Idempotency-Key"

const idempotencyKeyLocal = "idempotencyKey"

// RequireIdempotencyKey rejects create requests that carry no idempotency
// key before any body parsing or business validation runs. Retrying
// clients must reuse the same key for every attempt of one logical action.
func RequireIdempotencyKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(IdempotencyKeyHeader)
		if key == "" {
			return c.Status(fiber.StatusBadRequest).JSON(Response{
				Success: false,
				Error:   constants.GetErrorMessage(constants.ErrCodeIdempotencyKeyRequired),
				Code:    constants.ErrCodeIdempotencyKeyRequired,
			})
		}

		c.Locals(idempotencyKeyLocal, key)
		return c.Next()
	}
}

// IdempotencyKey returns the key stored by RequireIdempotencyKey.
func IdempotencyKey(c *fiber.Ctx) string {
	key, _ := c.Locals(idempotencyKeyLocal).(string)
	return key
}
