package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/repforge/repforge/internal/domain"
	"github.com/repforge/repforge/internal/middleware"
)

// UserHandler serves the caller's own profile
type UserHandler struct {
	userRepo domain.UserRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo domain.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// GetMe handles GET /v1/me
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user, err := h.userRepo.GetByID(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateMe handles PUT /v1/me
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req struct {
		Name string `json:"name"`
		Goal string `json:"goal"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	if err := h.userRepo.UpdateProfile(c.Context(), userID, req.Name, req.Goal); err != nil {
		return respondError(c, err)
	}

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
