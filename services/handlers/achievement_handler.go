package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/letterquest/reader_api/shared"
)

type AchievementHandler struct {
	achSvc AchievementServiceInterface
}

func NewAchievementHandler(achSvc AchievementServiceInterface) *AchievementHandler {
	return &AchievementHandler{
		achSvc: achSvc,
	}
}

// @Summary Get trophy case
// @Description Full achievement catalog with unlock state and progress per badge
// @Tags achievement
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TrophyCaseResponse}
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) GetTrophyCase(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	trophies, err := h.achSvc.GetTrophyCase(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", trophies)
}
