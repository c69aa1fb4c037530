package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/repforge/repforge/internal/middleware"
	"github.com/repforge/repforge/internal/service"
)

// ProgressHandler handles the per-user progress summary endpoint
type ProgressHandler struct {
	progressService *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// GetProgress handles GET /v1/progress
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	summary, err := h.progressService.GetProgress(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
