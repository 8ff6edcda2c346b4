package connectivity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/dailywins/internal/client/data"
	syncSvc "github.com/iudanet/dailywins/internal/client/sync"
)

// notifierHarness is a NotifierMock wired to deliver transitions by hand.
func notifierHarness(initialOnline bool) (*NotifierMock, func(online bool)) {
	var callback func(online bool)
	mock := &NotifierMock{
		IsOnlineFunc: func() bool { return initialOnline },
		OnChangeFunc: func(fn func(online bool)) { callback = fn },
	}
	fire := func(online bool) {
		if callback != nil {
			callback(online)
		}
	}
	return mock, fire
}

func TestController_ReconnectSyncsOnce(t *testing.T) {
	notifier, fire := notifierHarness(false)

	syncMock := &syncSvc.ServiceMock{
		SyncPendingOperationsFunc: func(ctx context.Context) (*syncSvc.SyncResult, error) {
			return &syncSvc.SyncResult{SyncedCreates: 2}, nil
		},
		GetSyncStatusFunc: func(ctx context.Context) (*syncSvc.SyncStatus, error) {
			return &syncSvc.SyncStatus{PendingCount: 0}, nil
		},
	}
	dataMock := &data.ServiceMock{
		RefreshCacheFunc: func(ctx context.Context) error { return nil },
	}

	ctrl := NewController(notifier, syncMock, dataMock, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = ctrl.Run(ctx)
		close(done)
	}()

	// Wait for the controller to subscribe.
	require.Eventually(t, func() bool {
		return len(notifier.OnChangeCalls()) == 1
	}, time.Second, time.Millisecond)

	assert.False(t, ctrl.Status().Online)

	// Offline to online: exactly one sync and one cache reload.
	fire(true)
	assert.Len(t, syncMock.SyncPendingOperationsCalls(), 1)
	assert.Len(t, dataMock.RefreshCacheCalls(), 1)
	assert.True(t, ctrl.Status().Online)

	// Repeated online notification is not a transition.
	fire(true)
	assert.Len(t, syncMock.SyncPendingOperationsCalls(), 1)

	// Online to offline only flips routing.
	fire(false)
	assert.Len(t, syncMock.SyncPendingOperationsCalls(), 1)
	assert.Len(t, dataMock.RefreshCacheCalls(), 1)
	assert.False(t, ctrl.Status().Online)

	// The next reconnect syncs again.
	fire(true)
	assert.Len(t, syncMock.SyncPendingOperationsCalls(), 2)
	assert.Len(t, dataMock.RefreshCacheCalls(), 2)

	cancel()
	<-done
}

func TestController_PendingCountTick(t *testing.T) {
	notifier, _ := notifierHarness(true)

	syncMock := &syncSvc.ServiceMock{
		GetSyncStatusFunc: func(ctx context.Context) (*syncSvc.SyncStatus, error) {
			return &syncSvc.SyncStatus{PendingCount: 7}, nil
		},
	}
	dataMock := &data.ServiceMock{}

	ctrl := NewController(notifier, syncMock, dataMock, 5*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = ctrl.Run(ctx) }()

	// The initial refresh plus ticker refreshes expose the queue depth.
	require.Eventually(t, func() bool {
		return ctrl.Status().PendingCount == 7
	}, time.Second, time.Millisecond)
	assert.True(t, ctrl.Status().Online)
}

func TestController_ReconnectErrorsAreSwallowed(t *testing.T) {
	notifier, fire := notifierHarness(false)

	syncMock := &syncSvc.ServiceMock{
		SyncPendingOperationsFunc: func(ctx context.Context) (*syncSvc.SyncResult, error) {
			return nil, context.DeadlineExceeded
		},
		GetSyncStatusFunc: func(ctx context.Context) (*syncSvc.SyncStatus, error) {
			return &syncSvc.SyncStatus{PendingCount: 3}, nil
		},
	}
	dataMock := &data.ServiceMock{
		RefreshCacheFunc: func(ctx context.Context) error { return context.DeadlineExceeded },
	}

	ctrl := NewController(notifier, syncMock, dataMock, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = ctrl.Run(ctx) }()

	require.Eventually(t, func() bool {
		return len(notifier.OnChangeCalls()) == 1
	}, time.Second, time.Millisecond)

	// Failures during reconnect do not crash the controller; the state
	// still flips and the pending count still refreshes.
	fire(true)
	assert.True(t, ctrl.Status().Online)
	assert.Equal(t, 3, ctrl.Status().PendingCount)
}
