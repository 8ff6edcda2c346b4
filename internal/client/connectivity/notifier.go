package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	httpClient "github.com/iudanet/dailywins/internal/client/api"
)

//go:generate moq -out notifier_mock.go . Notifier

// Notifier reports backend reachability. Implementations push state
// changes to registered callbacks and accept best-effort deferred-sync
// registrations from the write coordinator.
type Notifier interface {
	// IsOnline returns the last observed connectivity state.
	IsOnline() bool

	// OnChange registers a callback invoked on every state transition.
	OnChange(fn func(online bool))

	// RegisterDeferredSync asks the platform to run a sync once
	// connectivity returns. Best effort.
	RegisterDeferredSync() error
}

// DefaultProbeInterval is how often the HTTP probe re-checks the backend.
const DefaultProbeInterval = 30 * time.Second

// HTTPProbe derives connectivity from the backend health endpoint.
// There is no portable OS-level online signal, and reaching the backend
// is the state the sync engine actually cares about.
type HTTPProbe struct {
	apiClient httpClient.ClientAPI
	logger    *slog.Logger
	interval  time.Duration

	online    atomic.Bool
	mu        sync.Mutex
	callbacks []func(online bool)
}

var _ Notifier = (*HTTPProbe)(nil)

// NewHTTPProbe creates a probe polling the backend every interval.
// A non-positive interval falls back to DefaultProbeInterval.
func NewHTTPProbe(apiClient httpClient.ClientAPI, interval time.Duration, logger *slog.Logger) *HTTPProbe {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &HTTPProbe{
		apiClient: apiClient,
		interval:  interval,
		logger:    logger,
	}
}

// Run probes immediately, then on every interval tick, until ctx ends.
func (p *HTTPProbe) Run(ctx context.Context) error {
	p.Probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}

// Probe checks the health endpoint once and fires callbacks on a state
// transition.
func (p *HTTPProbe) Probe(ctx context.Context) {
	online := p.apiClient.Health(ctx) == nil

	if p.online.Swap(online) == online {
		return
	}

	if online {
		p.logger.Info("backend reachable")
	} else {
		p.logger.Warn("backend unreachable")
	}

	p.mu.Lock()
	callbacks := make([]func(bool), len(p.callbacks))
	copy(callbacks, p.callbacks)
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn(online)
	}
}

// IsOnline returns the last observed connectivity state.
func (p *HTTPProbe) IsOnline() bool {
	return p.online.Load()
}

// OnChange registers a callback invoked on every state transition.
func (p *HTTPProbe) OnChange(fn func(online bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callbacks = append(p.callbacks, fn)
}

// RegisterDeferredSync is a no-op for the probe: the controller already
// syncs on the offline to online transition, which is the deferred sync.
func (p *HTTPProbe) RegisterDeferredSync() error {
	p.logger.Debug("deferred sync registered")
	return nil
}
