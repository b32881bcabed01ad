package jobs

import (
	"context"
	"time"

	repo "msistore/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// StaleOrderJobは期限切れの未払い注文を定期的に無効化する
type StaleOrderJob struct {
	orders repo.OrderRepository
	cron   *cron.Cron
	days   int
	log    zerolog.Logger
}

func NewStaleOrderJob(orders repo.OrderRepository, days int, log zerolog.Logger) *StaleOrderJob {
	return &StaleOrderJob{
		orders: orders,
		cron:   cron.New(),
		days:   days,
		log:    log.With().Str("component", "stale_order_job").Logger(),
	}
}

// Startは毎時0分に実行するジョブを登録する
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info().Int("days", j.days).Msg("stale order job started")
	return nil
}

func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.log.Info().Msg("stale order job stopped")
}

func (j *StaleOrderJob) run() {
	ctx := context.Background()
	before := time.Now().AddDate(0, 0, -j.days)

	n, err := j.orders.DeactivateStaleUnpaid(ctx, before)
	if err != nil {
		j.log.Error().Err(err).Msg("stale order sweep failed")
		return
	}
	if n > 0 {
		j.log.Info().Int64("deactivated", n).Msg("stale orders deactivated")
	}
}
