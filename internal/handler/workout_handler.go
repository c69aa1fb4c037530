package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/repforge/repforge/internal/domain"
	"github.com/repforge/repforge/internal/middleware"
	"github.com/repforge/repforge/internal/service"
)

// WorkoutHandler handles workout record endpoints
type WorkoutHandler struct {
	workoutService *service.WorkoutService
}

// NewWorkoutHandler creates a new workout handler
func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
	}
}

// CreateWorkout handles POST /v1/workouts
func (h *WorkoutHandler) CreateWorkout(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req struct {
		Name            string                 `json:"name"`
		Date            time.Time              `json:"date"`
		Exercises       []domain.ExerciseEntry `json:"exercises"`
		DurationMinutes int                    `json:"duration_minutes"`
		Notes           string                 `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	record, err := h.workoutService.CreateWorkout(c.Context(), service.CreateWorkoutRequest{
		UserID:          userID,
		Name:            req.Name,
		Date:            req.Date,
		Exercises:       req.Exercises,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// ListWorkouts handles GET /v1/workouts
func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	records, err := h.workoutService.ListWorkouts(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	if records == nil {
		records = []*domain.WorkoutRecord{}
	}
	return c.JSON(records)
}

// DeleteWorkout handles DELETE /v1/workouts/:id
func (h *WorkoutHandler) DeleteWorkout(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	workoutID := c.Params("id")

	if err := h.workoutService.DeleteWorkout(c.Context(), userID, workoutID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
