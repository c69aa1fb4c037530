package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/repforge/repforge/internal/middleware"
	"github.com/repforge/repforge/internal/service"
	"github.com/repforge/repforge/internal/telemetry"
)

// LeaderboardHandler handles the ranked leaderboard endpoint
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetLeaderboard handles GET /v1/leaderboard
func (h *LeaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	viewerID := middleware.GetUserID(c)

	board, err := h.leaderboardService.GetLeaderboard(c.Context(), viewerID)
	if err != nil {
		return respondError(c, err)
	}

	telemetry.SetSpanAttribute(c, "leaderboard.total_users", strconv.Itoa(board.TotalUsers))
	return c.JSON(board)
}
