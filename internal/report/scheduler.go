package report

import (
	"context"
	"strings"
	"time"

	"github.com/aushadhi/pos/internal/clock"
	"github.com/aushadhi/pos/internal/config"
	reportdomain "github.com/aushadhi/pos/internal/report/domain"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Scheduler rolls up the previous day's sales summary on a cron
// schedule so report queries read a precomputed row.
type Scheduler struct {
	log   *zap.Logger
	clk   clock.Clock
	svc   reportdomain.Service
	sched *cron.Cron
	spec  string
}

type SchedulerParam struct {
	fx.In

	Log    *zap.Logger
	Clock  clock.Clock
	Config config.Config
	Svc    reportdomain.Service
}

func NewScheduler(p SchedulerParam) *Scheduler {
	spec := strings.TrimSpace(p.Config.Reports.RollupSchedule)
	if spec == "" {
		spec = "5 0 * * *"
	}
	return &Scheduler{
		log:   p.Log.Named("report.scheduler"),
		clk:   p.Clock,
		svc:   p.Svc,
		sched: cron.New(),
		spec:  spec,
	}
}

// Start registers the rollup job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.sched.AddFunc(s.spec, func() {
		s.RunOnce()
	})
	if err != nil {
		return err
	}
	s.sched.Start()
	s.log.Info("report scheduler started", zap.String("schedule", s.spec))
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.sched.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce rolls up yesterday relative to the scheduler's clock.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	day := s.clk.Now().AddDate(0, 0, -1)
	if _, err := s.svc.RollupDay(ctx, day); err != nil {
		s.log.Warn("daily rollup failed", zap.Error(err))
	}
}
