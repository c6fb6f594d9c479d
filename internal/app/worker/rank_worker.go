package worker

import (
	"context"

	"dsaquest/internal/app/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RankWorker periodically re-runs the full rank recompute. Completions already
// recompute eagerly; the sweep bounds how long ranks can stay inconsistent
// after racing recomputes or a failed write-back.
type RankWorker struct {
	leaderboard *service.LeaderboardService
	schedule    string
	cron        *cron.Cron
}

func NewRankWorker(leaderboard *service.LeaderboardService, schedule string) *RankWorker {
	return &RankWorker{
		leaderboard: leaderboard,
		schedule:    schedule,
		cron:        cron.New(),
	}
}

func (w *RankWorker) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.schedule, func() {
		if err := w.leaderboard.RecomputeRanks(ctx); err != nil {
			zap.L().Error("scheduled rank sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	w.cron.Start()
	zap.L().Info("rank sweep scheduled", zap.String("schedule", w.schedule))
	return nil
}

func (w *RankWorker) Stop() {
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
}
