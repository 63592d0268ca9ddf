package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/letterquest/reader_api/model"
	"github.com/letterquest/reader_api/services/handlers"
	"github.com/letterquest/reader_api/shared"
)

type HttpService struct {
	context.DefaultService

	jwtSvc        *JWTService
	authSvc       *AuthService
	playerSvc     *PlayerService
	rewardSvc     *RewardService
	achSvc        *AchievementService
	monitoringSvc *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

// The auth middleware registers itself under this id. It lives in its own
// package, so it is resolved through the service context rather than imported.
const authMiddlewareID = "auth"

type authProvider interface {
	RequiredAuth() fiber.Handler
	RequireRole(role string) fiber.Handler
}

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.playerSvc = svc.Service(PLAYER_SVC).(*PlayerService)
	svc.rewardSvc = svc.Service(REWARD_SVC).(*RewardService)
	svc.achSvc = svc.Service(ACHIEVEMENT_SVC).(*AchievementService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	auth := svc.Service(authMiddlewareID).(authProvider)

	app := fiber.New(fiber.Config{
		AppName:      "LetterQuest API",
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Length",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	authHandler := handlers.NewAuthHandler(svc.authSvc, svc.jwtSvc)
	playerHandler := handlers.NewPlayerHandler(svc.playerSvc)
	rewardHandler := handlers.NewRewardHandler(svc.rewardSvc)
	achHandler := handlers.NewAchievementHandler(svc.achSvc)
	leaderboardHandler := handlers.NewLeaderboardHandler(svc.playerSvc, svc.jwtSvc)

	app.Get("/ping", svc.ping)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	v1.Post("/register", authHandler.Register)
	v1.Post("/login", authHandler.Login)

	v1.Get("/quests", playerHandler.GetQuests)

	v1.Get("/leaderboard/weekly", leaderboardHandler.GetWeeklyLeaderboard)
	v1.Get("/leaderboard/monthly", leaderboardHandler.GetMonthlyLeaderboard)
	v1.Get("/leaderboard/all-time", leaderboardHandler.GetAllTimeLeaderboard)

	player := v1.Group("/player", auth.RequiredAuth())
	player.Get("/progress", playerHandler.GetPlayerProgress)
	player.Post("/quest/complete", playerHandler.CompleteQuest)
	player.Post("/app-open", playerHandler.RecordAppOpen)
	player.Get("/parent-summary", auth.RequireRole(model.RoleParent), playerHandler.GetParentSummary)

	rewards := v1.Group("/rewards", auth.RequiredAuth())
	rewards.Get("/daily", rewardHandler.GetDailyRewardStatus)
	rewards.Post("/daily/claim", rewardHandler.ClaimDailyReward)

	store := v1.Group("/store", auth.RequiredAuth())
	store.Get("/", rewardHandler.GetStore)
	store.Post("/purchase", rewardHandler.PurchaseItem)

	v1.Get("/achievements", auth.RequiredAuth(), achHandler.GetTrophyCase)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.server = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
