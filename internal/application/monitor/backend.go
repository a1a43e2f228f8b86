package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger checks backend reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// Gauge receives probe results
type Gauge interface {
	SetBackendUp(up bool)
}

// Status represents the result of the latest backend probe
type Status struct {
	Up        bool
	LastError string
	CheckedAt time.Time
}

// BackendMonitor periodically probes the cheque backend
type BackendMonitor struct {
	pinger   Pinger
	gauge    Gauge
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	status  Status
	checked bool
}

// NewBackendMonitor creates a new backend monitor. A zero timeout
// bounds each probe by the interval.
func NewBackendMonitor(pinger Pinger, gauge Gauge, interval, timeout time.Duration, logger *zap.Logger) *BackendMonitor {
	if timeout <= 0 || timeout > interval {
		timeout = interval
	}
	return &BackendMonitor{
		pinger:   pinger,
		gauge:    gauge,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Start starts the monitor loop. Calling Start on a running monitor is a no-op.
func (m *BackendMonitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.stopCh = make(chan struct{})
	m.doneCh = make(chan struct{})
	stopCh, doneCh := m.stopCh, m.doneCh
	m.mu.Unlock()

	m.logger.Info("starting backend monitor", zap.Duration("interval", m.interval))
	go m.run(stopCh, doneCh)
}

// Stop stops the monitor and waits for the loop to exit
func (m *BackendMonitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	stopCh, doneCh := m.stopCh, m.doneCh
	m.mu.Unlock()

	close(stopCh)
	<-doneCh
	m.logger.Info("backend monitor stopped")
}

// run is the main monitoring loop
func (m *BackendMonitor) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Check()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			m.Check()
		}
	}
}

// Check probes the backend once and records the result
func (m *BackendMonitor) Check() Status {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	err := m.pinger.Ping(ctx)
	next := Status{Up: err == nil, CheckedAt: time.Now()}
	if err != nil {
		next.LastError = err.Error()
	}

	m.mu.Lock()
	prev, seen := m.status, m.checked
	m.status = next
	m.checked = true
	m.mu.Unlock()

	if m.gauge != nil {
		m.gauge.SetBackendUp(next.Up)
	}

	switch {
	case !next.Up && (!seen || prev.Up):
		m.logger.Warn("cheque backend is unreachable", zap.Error(err))
	case next.Up && seen && !prev.Up:
		m.logger.Info("cheque backend recovered")
	default:
		m.logger.Debug("backend probe", zap.Bool("up", next.Up))
	}

	return next
}

// GetStatus returns the latest probe result
func (m *BackendMonitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}
