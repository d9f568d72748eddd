package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/finbase/pointledger/internal/metrics"
)

// HealthChecker exposes the storage probe required by the monitor.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthMonitor periodically probes storage health and reflects the
// result in logs and metrics.
type HealthMonitor struct {
	checker  HealthChecker
	interval time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex

	healthy bool
	probed  bool
}

// NewHealthMonitor constructs the storage health monitor.
func NewHealthMonitor(checker HealthChecker, interval time.Duration, logger *slog.Logger, m *metrics.Metrics) *HealthMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &HealthMonitor{
		checker:  checker,
		interval: interval,
		logger:   logger,
		metrics:  m,
	}
}

// Start launches background probing.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	m.wg.Add(1)
	go m.run(runCtx)
}

// Stop waits for the probe loop to finish.
func (m *HealthMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *HealthMonitor) run(ctx context.Context) {
	defer m.wg.Done()

	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *HealthMonitor) probe(ctx context.Context) {
	err := m.checker.HealthCheck(ctx)
	if ctx.Err() != nil {
		return
	}

	up := err == nil
	m.metrics.SetStorageUp(up)

	m.mu.Lock()
	transition := !m.probed || m.healthy != up
	m.healthy = up
	m.probed = true
	m.mu.Unlock()

	if !transition {
		return
	}
	if up {
		m.logger.Info("storage is healthy")
		return
	}
	m.logger.Warn("storage health check failed", slog.String("error", err.Error()))
}

// Healthy reports the result of the last probe.
func (m *HealthMonitor) Healthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.probed && m.healthy
}
