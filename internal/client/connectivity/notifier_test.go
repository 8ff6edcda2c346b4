package connectivity

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/dailywins/internal/client/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPProbe_Transitions(t *testing.T) {
	ctx := context.Background()

	var healthy atomic.Bool
	apiMock := &httpClient.ClientAPIMock{
		HealthFunc: func(ctx context.Context) error {
			if healthy.Load() {
				return nil
			}
			return fmt.Errorf("health request failed: connection refused")
		},
	}

	probe := NewHTTPProbe(apiMock, time.Minute, testLogger())

	var transitions []bool
	probe.OnChange(func(online bool) {
		transitions = append(transitions, online)
	})

	// Initial state is offline; the first failing probe is not a
	// transition.
	assert.False(t, probe.IsOnline())
	probe.Probe(ctx)
	assert.False(t, probe.IsOnline())
	assert.Empty(t, transitions)

	// Server comes up: one transition.
	healthy.Store(true)
	probe.Probe(ctx)
	assert.True(t, probe.IsOnline())
	require.Len(t, transitions, 1)
	assert.True(t, transitions[0])

	// Steady state: no further callbacks.
	probe.Probe(ctx)
	assert.Len(t, transitions, 1)

	// Server goes down: second transition.
	healthy.Store(false)
	probe.Probe(ctx)
	assert.False(t, probe.IsOnline())
	require.Len(t, transitions, 2)
	assert.False(t, transitions[1])
}

func TestHTTPProbe_RegisterDeferredSync(t *testing.T) {
	probe := NewHTTPProbe(&httpClient.ClientAPIMock{}, time.Minute, testLogger())
	assert.NoError(t, probe.RegisterDeferredSync())
}

func TestNewHTTPProbe_DefaultInterval(t *testing.T) {
	probe := NewHTTPProbe(&httpClient.ClientAPIMock{}, 0, testLogger())
	assert.Equal(t, DefaultProbeInterval, probe.interval)
}
