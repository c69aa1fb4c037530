package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/repforge/repforge/internal/service"
)

// ExerciseHandler serves the reference exercise library
type ExerciseHandler struct {
	exerciseService *service.ExerciseService
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(exerciseService *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
	}
}

// ListExercises handles GET /v1/exercises (public)
func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	exercises, err := h.exerciseService.ListExercises(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exercises)
}
