package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/repforge/repforge/internal/domain"
)

// respondError maps domain errors onto HTTP statuses. Contract violations in
// the stored snapshot are the server's data problem, not the caller's, but
// they still surface as 422 so operators see the bad record id in the payload.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsContractViolation(err):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case err == domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not allowed"})
	case err == domain.ErrNotFound, err == domain.ErrWorkoutNotFound,
		err == domain.ErrExerciseNotFound, err == domain.ErrInvalidID:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
