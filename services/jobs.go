// services/jobs.go
package services

import (
	"time"

	"github.com/alphabatem/common/context"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/letterquest/reader_api/progression"
)

// JobsService runs scheduled maintenance: the nightly streak-at-risk scan
// and the periodic leaderboard cache refresh.
type JobsService struct {
	context.DefaultService

	sqlSvc    *SqliteService
	playerSvc *PlayerService
	redisSvc  *RedisService

	cron *cron.Cron
}

const JOBS_SVC = "jobs_svc"

func (svc JobsService) Id() string {
	return JOBS_SVC
}

func (svc *JobsService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.playerSvc = svc.Service(PLAYER_SVC).(*PlayerService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)

	svc.cron = cron.New()

	// 20:00 local: flag players whose streak lapses at midnight.
	if _, err := svc.cron.AddFunc("0 20 * * *", svc.streakAtRiskScan); err != nil {
		return err
	}

	// Hourly: drop stale leaderboard snapshots and rebuild the weekly one.
	if _, err := svc.cron.AddFunc("0 * * * *", svc.refreshLeaderboards); err != nil {
		return err
	}

	svc.cron.Start()
	log.Info("Job scheduler started")
	return nil
}

func (svc *JobsService) Shutdown() {
	if svc.cron != nil {
		<-svc.cron.Stop().Done()
	}
}

// streakAtRiskScan finds players who were active yesterday but not yet today.
// Their streak survives only if they play before midnight, so they are the
// audience for a reminder push.
func (svc *JobsService) streakAtRiskScan() {
	now := time.Now()
	today := progression.Today(now)
	yesterday := progression.Today(now.AddDate(0, 0, -1))

	players, err := svc.sqlSvc.GetPlayersLastActiveOn(string(yesterday))
	if err != nil {
		log.WithError(err).Error("streak-at-risk scan failed")
		return
	}

	for _, p := range players {
		log.WithFields(log.Fields{
			"user_id": p.UserID,
			"streak":  p.CurrentStreak,
			"day":     today,
		}).Info("streak at risk")
	}
	log.WithField("count", len(players)).Info("streak-at-risk scan complete")
}

func (svc *JobsService) refreshLeaderboards() {
	svc.redisSvc.InvalidateLeaderboards()
	if _, err := svc.playerSvc.GetWeeklyLeaderboard(10, ""); err != nil {
		log.WithError(err).Error("leaderboard warm failed")
	}
}
