package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/letterquest/reader_api/dto"
)

// RedisService caches read-heavy views, currently leaderboard snapshots.
// The service degrades to pass-through when Redis is unreachable.
type RedisService struct {
	appContext.DefaultService
	redis *redis.Client

	available bool
}

const REDIS_SVC = "redis_svc"

const leaderboardTTL = 5 * time.Minute

func (svc RedisService) Id() string {
	return REDIS_SVC
}

func (svc *RedisService) Configure(ctx *appContext.Context) error {
	svc.initRedisClient()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RedisService) Start() error {
	if svc.redis != nil {
		ctx := context.Background()
		if _, err := svc.redis.Ping(ctx).Result(); err != nil {
			log.WithError(err).Warn("Redis unreachable, leaderboard caching disabled")
			svc.available = false
			return nil
		}
		svc.available = true
	}
	return nil
}

func (svc *RedisService) Shutdown() {
	if svc.redis != nil {
		_ = svc.redis.Close()
	}
}

func (svc *RedisService) initRedisClient() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}

	svc.redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
}

func (svc *RedisService) GetClient() *redis.Client {
	return svc.redis
}

func leaderboardKey(period string) string {
	return fmt.Sprintf("leaderboard:%s", period)
}

func (svc *RedisService) GetLeaderboard(period string) (*dto.LeaderboardResponse, bool) {
	if !svc.available {
		return nil, false
	}

	data, err := svc.redis.Get(context.Background(), leaderboardKey(period)).Bytes()
	if err != nil {
		return nil, false
	}

	var resp dto.LeaderboardResponse
	if err := sonic.Unmarshal(data, &resp); err != nil {
		log.WithError(err).Warn("Corrupt cached leaderboard, dropping")
		_ = svc.redis.Del(context.Background(), leaderboardKey(period)).Err()
		return nil, false
	}
	return &resp, true
}

func (svc *RedisService) SetLeaderboard(period string, resp *dto.LeaderboardResponse) {
	if !svc.available {
		return
	}

	data, err := sonic.Marshal(resp)
	if err != nil {
		log.WithError(err).Error("Failed to encode leaderboard for cache")
		return
	}
	if err := svc.redis.Set(context.Background(), leaderboardKey(period), data, leaderboardTTL).Err(); err != nil {
		log.WithError(err).Warn("Failed to cache leaderboard")
	}
}

func (svc *RedisService) InvalidateLeaderboards() {
	if !svc.available {
		return
	}
	for _, period := range []string{"weekly", "monthly", "all_time"} {
		_ = svc.redis.Del(context.Background(), leaderboardKey(period)).Err()
	}
}
