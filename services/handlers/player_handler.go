package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/letterquest/reader_api/dto"
	"github.com/letterquest/reader_api/shared"
)

type PlayerHandler struct {
	playerSvc PlayerServiceInterface
}

func NewPlayerHandler(playerSvc PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerSvc: playerSvc,
	}
}

// @Summary List quests
// @Description List the active quest catalog, optionally filtered by type and Wilson step
// @Tags player
// @Accept json
// @Produce json
// @Param type query string false "Quest type filter"
// @Param step query int false "Wilson step filter"
// @Success 200 {object} shared.Response{data=[]dto.QuestResponse}
// @Router /api/v1/quests [get]
func (h *PlayerHandler) GetQuests(c *fiber.Ctx) error {
	step := 0
	if s := c.Query("step"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 0 {
			return shared.NewBadRequestError(err, "Invalid step filter")
		}
		step = parsed
	}

	quests, err := h.playerSvc.GetQuests(c.Query("type"), step)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", quests)
}

// @Summary Get player progress
// @Description Get the player's XP, level, streak and collection state
// @Tags player
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.PlayerProgressResponse}
// @Router /api/v1/player/progress [get]
func (h *PlayerHandler) GetPlayerProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	progress, err := h.playerSvc.GetPlayerProgress(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", progress)
}

// @Summary Complete a quest
// @Description Record a quest completion and return XP, streak, milestone, treasure and achievement results
// @Tags player
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param completeRequest body dto.CompleteQuestRequest true "Quest result"
// @Success 200 {object} shared.Response{data=dto.CompleteQuestResponse}
// @Router /api/v1/player/quest/complete [post]
func (h *PlayerHandler) CompleteQuest(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CompleteQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.playerSvc.CompleteQuest(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Record app open
// @Description Touch the streak for today without completing a quest
// @Tags player
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.StreakResponse}
// @Router /api/v1/player/app-open [post]
func (h *PlayerHandler) RecordAppOpen(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	streak, err := h.playerSvc.RecordAppOpen(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", streak)
}

// @Summary Get parent summary
// @Description Weekly activity summary for the parent dashboard
// @Tags player
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param userId query string false "Child user ID"
// @Success 200 {object} shared.Response{data=dto.ParentSummaryResponse}
// @Router /api/v1/player/parent-summary [get]
func (h *PlayerHandler) GetParentSummary(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		userID = c.Locals(shared.UserID).(string)
	}

	summary, err := h.playerSvc.GetParentSummary(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", summary)
}
