package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/letterquest/reader_api/shared"
)

type LeaderboardHandler struct {
	playerSvc PlayerServiceInterface
	jwtSvc    JWTServiceInterface
}

func NewLeaderboardHandler(playerSvc PlayerServiceInterface, jwtSvc JWTServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		playerSvc: playerSvc,
		jwtSvc:    jwtSvc,
	}
}

// Leaderboards are public. The bearer token is optional and only used to
// position the current user in the ranking.
func (h *LeaderboardHandler) optionalUserID(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token, err := h.jwtSvc.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return ""
	}

	userID, err := h.jwtSvc.VerifyJWTToken(token)
	if err != nil {
		return ""
	}
	return userID
}

func parseLimit(c *fiber.Ctx) int {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	return limit
}

// @Summary Get Weekly Leaderboard
// @Description Get weekly leaderboard rankings
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param limit query int false "Limit results (default 50)"
// @Success 200 {object} shared.Response{data=dto.LeaderboardResponse}
// @Router /api/v1/leaderboard/weekly [get]
func (h *LeaderboardHandler) GetWeeklyLeaderboard(c *fiber.Ctx) error {
	leaderboard, err := h.playerSvc.GetWeeklyLeaderboard(parseLimit(c), h.optionalUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", leaderboard)
}

// @Summary Get Monthly Leaderboard
// @Description Get monthly leaderboard rankings
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param limit query int false "Limit results (default 50)"
// @Success 200 {object} shared.Response{data=dto.LeaderboardResponse}
// @Router /api/v1/leaderboard/monthly [get]
func (h *LeaderboardHandler) GetMonthlyLeaderboard(c *fiber.Ctx) error {
	leaderboard, err := h.playerSvc.GetMonthlyLeaderboard(parseLimit(c), h.optionalUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", leaderboard)
}

// @Summary Get All Time Leaderboard
// @Description Get all-time leaderboard rankings
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param limit query int false "Limit results (default 50)"
// @Success 200 {object} shared.Response{data=dto.LeaderboardResponse}
// @Router /api/v1/leaderboard/all-time [get]
func (h *LeaderboardHandler) GetAllTimeLeaderboard(c *fiber.Ctx) error {
	leaderboard, err := h.playerSvc.GetAllTimeLeaderboard(parseLimit(c), h.optionalUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", leaderboard)
}
