package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/letterquest/reader_api/dto"
	"github.com/letterquest/reader_api/shared"
)

type RewardHandler struct {
	rewardSvc RewardServiceInterface
}

func NewRewardHandler(rewardSvc RewardServiceInterface) *RewardHandler {
	return &RewardHandler{
		rewardSvc: rewardSvc,
	}
}

// @Summary Get daily reward status
// @Description Return today's reward, claim eligibility and the full 7-day cycle
// @Tags reward
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.DailyRewardStatusResponse}
// @Router /api/v1/rewards/daily [get]
func (h *RewardHandler) GetDailyRewardStatus(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	status, err := h.rewardSvc.GetDailyRewardStatus(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", status)
}

// @Summary Claim daily reward
// @Description Claim today's login reward, granting XP and a freeze token on week completion
// @Tags reward
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.ClaimDailyRewardResponse}
// @Router /api/v1/rewards/daily/claim [post]
func (h *RewardHandler) ClaimDailyReward(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.rewardSvc.ClaimDailyReward(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary List store items
// @Description List purchasable items with ownership flags
// @Tags store
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]dto.StoreItemResponse}
// @Router /api/v1/store [get]
func (h *RewardHandler) GetStore(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	items, err := h.rewardSvc.GetStore(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", items)
}

// @Summary Purchase store item
// @Description Spend earned XP on a store item
// @Tags store
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param purchaseRequest body dto.PurchaseItemRequest true "Item to purchase"
// @Success 200 {object} shared.Response{data=dto.PurchaseItemResponse}
// @Router /api/v1/store/purchase [post]
func (h *RewardHandler) PurchaseItem(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.PurchaseItemRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.rewardSvc.PurchaseItem(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}
