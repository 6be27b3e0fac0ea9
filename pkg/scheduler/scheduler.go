package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/inventory-alert-service/pkg/alerts"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

const (
	DefaultInterval = 24 * time.Hour
	DefaultScanHour = 2
)

// Scheduler runs an emitting reconciliation pass every Interval, first
// aligned to ScanHour:00 local time (negative ScanHour disables alignment),
// and whenever Trigger is called.
type Scheduler struct {
	Reconciler alerts.IReconciler
	Interval   time.Duration
	ScanHour   int
	Clock      common.Clock

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	trigger chan models.SyncSource
}

func NewScheduler(reconciler alerts.IReconciler, interval time.Duration, scanHour int) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		Reconciler: reconciler,
		Interval:   interval,
		ScanHour:   scanHour,
		Clock:      common.RealClock{},
		trigger:    make(chan models.SyncSource, 1),
	}
}

// NextRunAt returns the first hour:00 strictly after now, in now's location.
func NextRunAt(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *Scheduler) firstDelay() time.Duration {
	if s.ScanHour < 0 || s.ScanHour > 23 {
		return s.Interval
	}
	now := s.Clock.Now()
	return NextRunAt(now, s.ScanHour).Sub(now)
}

// nextDelay re-aligns to ScanHour:00 after every cron pass when Interval is a
// whole number of days, so local clock shifts do not accumulate.
func (s *Scheduler) nextDelay() time.Duration {
	const day = 24 * time.Hour
	if s.ScanHour < 0 || s.ScanHour > 23 || s.Interval < day || s.Interval%day != 0 {
		return s.Interval
	}
	now := s.Clock.Now()
	days := int(s.Interval / day)
	return NextRunAt(now, s.ScanHour).AddDate(0, 0, days-1).Sub(now)
}

func (s *Scheduler) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	go func() {
		defer close(done)
		s.loop(ctx)
	}()
}

// Stop halts the loop and waits for an in-flight pass to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Trigger queues a pass without waiting for it. While one is already queued
// further triggers are coalesced into it and Trigger returns false.
func (s *Scheduler) Trigger(source models.SyncSource) bool {
	select {
	case s.trigger <- source:
		return true
	default:
		return false
	}
}

func (s *Scheduler) loop(ctx context.Context) {
	logger := common.GetLoggerWith(common.LoggerNameScheduler)

	delay := s.firstDelay()
	logger.Info("Scheduler started", zap.Duration("first_run_in", delay), zap.Duration("interval", s.Interval))

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Scheduler stopped")
			return
		case <-timer.C:
			s.run(ctx, models.SyncSourceCron)
			timer.Reset(s.nextDelay())
		case source := <-s.trigger:
			s.run(ctx, source)
		}
	}
}

// run never propagates failures; the next tick or trigger re-derives state.
func (s *Scheduler) run(ctx context.Context, source models.SyncSource) {
	logger := common.GetLoggerWith(common.LoggerNameScheduler)

	// a started pass is not cancelled mid-way by Stop
	passCtx := context.WithoutCancel(ctx)

	if _, err := s.Reconciler.SyncAllAlerts(passCtx, models.SyncOptions{Source: source, Emit: true}); err != nil {
		logger.Error("Scheduled alerts sync failed", zap.String("source", string(source)), zap.Error(err))
	}
}
