package service

import (
	"context"
	"sync"
	"time"

	"github.com/calebmori/opsdesk/internal/domain"
	"go.uber.org/zap"
)

const defaultReportInterval = 15 * time.Minute

// Reporter snapshots the registry counters into the metrics table on a fixed
// cadence. There is no jitter, no backoff and no persisted schedule: a
// restart simply starts the clock over. A failed insert is logged and the
// loop keeps ticking.
type Reporter struct {
	registry *Registry
	store    domain.MetricsStore
	logger   *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewReporter(registry *Registry, store domain.MetricsStore, logger *zap.Logger) *Reporter {
	return &Reporter{
		registry: registry,
		store:    store,
		logger:   logger,
		interval: defaultReportInterval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Reporter) SetInterval(d time.Duration) {
	s.interval = d
}

// Start runs the reporter on a periodic schedule in a background goroutine.
func (s *Reporter) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("metrics reporter started", zap.Duration("interval", s.interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				s.run(ctx)
				cancel()
			case <-s.stopCh:
				s.logger.Info("metrics reporter stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the reporter.
func (s *Reporter) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

func (s *Reporter) run(ctx context.Context) {
	snap := s.registry.MetricsSnapshot()
	if err := s.store.Insert(ctx, &snap); err != nil {
		s.logger.Error("failed to persist metrics snapshot", zap.Error(err))
		return
	}
	s.logger.Debug("metrics snapshot persisted",
		zap.Int64("total_operations", snap.TotalOperations),
		zap.Int("active_agents", snap.ActiveAgents))
}
