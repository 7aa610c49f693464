// Package sweep expires members whose membership has lapsed.
package sweep

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"pilates-club/pkg/config"
	"pilates-club/pkg/logger"
)

var ErrInProgress = errors.New("expiration sweep is already running")

// Expirer flips overdue active members to expired and reports how many.
type Expirer interface {
	ExpireOverdue(ctx context.Context) (int64, error)
}

type Result struct {
	Expired  int64         `json:"expired"`
	Duration time.Duration `json:"duration_ns"`
}

// Scheduler runs the sweep after an initial delay and then on every
// interval. Overlapping triggers are skipped.
type Scheduler struct {
	expirer Expirer
	config  config.SweepConfig
	metrics *Metrics
	logger  *logger.Logger

	running  atomic.Bool
	mu       sync.Mutex
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewScheduler(expirer Expirer, cfg config.SweepConfig, metrics *Metrics, log *logger.Logger) *Scheduler {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &Scheduler{
		expirer: expirer,
		config:  cfg,
		metrics: metrics,
		logger:  log.With("sweep"),
		stopCh:  make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	if !s.config.Enabled {
		s.logger.Info("Expiration sweep is disabled")
		return
	}

	s.wg.Add(1)
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	s.logger.Info("Expiration sweep starting in %s", s.config.InitialDelay)

	select {
	case <-time.After(s.config.InitialDelay):
		s.execute(ctx)
	case <-s.stopCh:
		return
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.logger.Info("Expiration sweep running every %s", s.config.Interval)

	for {
		select {
		case <-ticker.C:
			s.execute(ctx)
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) execute(ctx context.Context) {
	if _, err := s.TryRun(ctx); errors.Is(err, ErrInProgress) {
		s.logger.Warn("Expiration sweep already running, skipping this tick")
	}
}

// TryRun sweeps immediately, or returns ErrInProgress when another sweep
// holds the lock.
func (s *Scheduler) TryRun(ctx context.Context) (*Result, error) {
	if !s.mu.TryLock() {
		return nil, ErrInProgress
	}
	defer s.mu.Unlock()

	s.running.Store(true)
	defer s.running.Store(false)

	start := time.Now()
	expired, err := s.expirer.ExpireOverdue(ctx)
	duration := time.Since(start)
	s.metrics.Duration.Observe(duration.Seconds())

	if err != nil {
		s.metrics.Errors.Inc()
		s.logger.Error("Expiration sweep failed: %v", err)
		return nil, err
	}

	s.metrics.Expired.Add(float64(expired))
	if expired > 0 {
		s.logger.Info("Expiration sweep expired %d members in %s", expired, duration)
	} else {
		s.logger.Debug("Expiration sweep found nothing to expire")
	}

	return &Result{Expired: expired, Duration: duration}, nil
}

func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

// Stop ends the loop and waits for an in-flight sweep to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
	s.logger.Info("Expiration sweep stopped")
}
