package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bragboard/internal/service"
)

// LeaderboardHandler serves the shoutouts-received ranking.
type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(leaderboardService service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Top godoc
// @Summary Top users by shoutouts received
// @Tags leaderboard
// @Produce json
// @Success 200 {array} model.LeaderboardEntry
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Top(c echo.Context) error {
	entries, err := h.leaderboardService.Top(c.Request().Context(), service.DefaultLeaderboardSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
