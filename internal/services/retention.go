package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/taskgram/bot/internal/infrastructure/journal"
)

// SweeperConfig controls how frequently the journal is pruned and how
// long records are kept.
type SweeperConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// RetentionSweeper prunes old records from the update journal on a
// cron schedule.
type RetentionSweeper struct {
	store  *journal.Store
	logger *zap.Logger
	cron   *cron.Cron
	cfg    SweeperConfig
}

func NewRetentionSweeper(store *journal.Store, logger *zap.Logger, cfg SweeperConfig) *RetentionSweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 72 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rs := &RetentionSweeper{
		store:  store,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = rs.cron.AddFunc(schedule, func() {
		if err := rs.Sweep(); err != nil {
			rs.logger.Error("journal sweep failed", zap.Error(err))
		}
	})

	return rs
}

// Start launches the cron scheduler.
func (rs *RetentionSweeper) Start() {
	if rs == nil || rs.cron == nil {
		return
	}
	rs.cron.Start()
	rs.logger.Info("retention sweeper started",
		zap.Duration("interval", rs.cfg.Interval),
		zap.Duration("retention", rs.cfg.Retention))
}

// Stop gracefully stops the scheduler, waiting for a running sweep.
func (rs *RetentionSweeper) Stop() {
	if rs == nil || rs.cron == nil {
		return
	}
	<-rs.cron.Stop().Done()
	rs.logger.Info("retention sweeper stopped")
}

// Sweep removes journal records past the retention window.
func (rs *RetentionSweeper) Sweep() error {
	if rs == nil || rs.store == nil {
		return nil
	}
	cutoff := time.Now().Add(-rs.cfg.Retention)
	removed, err := rs.store.Cleanup(cutoff)
	if err != nil {
		return err
	}
	if removed > 0 {
		rs.logger.Info("journal records pruned", zap.Int("removed", removed))
	}
	return nil
}
