package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/letterquest/reader_api/middleware"
	"github.com/letterquest/reader_api/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.MonitoringService{},
		&services.JWTService{},
		&services.SqliteService{},
		&services.RedisService{},
		&middleware.AuthMiddleware{},

		&services.AchievementService{},
		&services.PlayerService{},
		&services.RewardService{},
		&services.AuthService{},
		&services.JobsService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
