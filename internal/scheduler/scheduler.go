// Package scheduler recalculates a BoM on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/zulandar/hwrel/internal/hardware"
	"github.com/zulandar/hwrel/internal/milhdbk217f"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// nextCronDuration parses a 5-field cron expression and returns the duration
// until the next fire time. Returns 0 on parse error.
func nextCronDuration(expr string) time.Duration {
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return 0
	}
	d := time.Until(sched.Next(time.Now()))
	if d < 0 {
		return 0
	}
	return d
}

// Opts holds configuration for the scheduler.
type Opts struct {
	DB           *gorm.DB
	Logger       *zap.Logger
	Cron         string
	RootID       uint
	HRMultiplier float64
	Workers      int
	Limits       milhdbk217f.StressLimitTable
	// CalcLock is held during each recalculation.
	CalcLock sync.Locker
}

// Scheduler fires a recalculation of one root each time its cron
// expression comes due.
type Scheduler struct {
	opts Opts
	// recalc is replaced in tests.
	recalc func() (*hardware.RecalcResult, error)
}

// New validates opts and returns a Scheduler.
func New(opts Opts) (*Scheduler, error) {
	if opts.DB == nil {
		return nil, fmt.Errorf("scheduler: db is required")
	}
	if _, err := cronParser.Parse(opts.Cron); err != nil {
		return nil, fmt.Errorf("scheduler: parse %q: %w", opts.Cron, err)
	}
	if opts.RootID == 0 {
		return nil, fmt.Errorf("scheduler: root id is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CalcLock == nil {
		opts.CalcLock = &sync.Mutex{}
	}
	s := &Scheduler{opts: opts}
	s.recalc = func() (*hardware.RecalcResult, error) {
		return hardware.Recalculate(opts.DB, hardware.RecalcOpts{
			RootID:       opts.RootID,
			HRMultiplier: opts.HRMultiplier,
			Workers:      opts.Workers,
			Limits:       opts.Limits,
			Trigger:      "schedule",
		})
	}
	return s, nil
}

// Fire runs one recalculation immediately.
func (s *Scheduler) Fire() (*hardware.RecalcResult, error) {
	s.opts.CalcLock.Lock()
	defer s.opts.CalcLock.Unlock()

	res, err := s.recalc()
	if err != nil {
		s.opts.Logger.Error("scheduled recalculation failed",
			zap.Uint("root_id", s.opts.RootID), zap.Error(err))
		return nil, err
	}
	s.opts.Logger.Info("scheduled recalculation",
		zap.Uint("root_id", s.opts.RootID),
		zap.String("run_id", res.Run.ID),
		zap.Float64("hazard_rate_active", res.Totals[0]),
		zap.Int("overstressed", res.Run.Overstressed),
		zap.Int64("duration_ms", res.Run.DurationMS),
	)
	return res, nil
}

// Run blocks until ctx is cancelled, firing on every cron tick.
func (s *Scheduler) Run(ctx context.Context) {
	d := nextCronDuration(s.opts.Cron)
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	s.opts.Logger.Info("recalculation scheduled",
		zap.String("cron", s.opts.Cron), zap.Uint("root_id", s.opts.RootID), zap.Duration("next", d))

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.Fire()
			if d := nextCronDuration(s.opts.Cron); d > 0 {
				timer.Reset(d)
			}
		}
	}
}
