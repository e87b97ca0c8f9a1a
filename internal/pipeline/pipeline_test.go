package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/couchcryptid/climate-report-service/internal/domain"
	"github.com/couchcryptid/climate-report-service/internal/observability"
	"github.com/couchcryptid/climate-report-service/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockLoader struct {
	mu       sync.Mutex
	batches  [][]domain.Report
	failures int
	calls    int
	loaded   chan struct{}
}

func newMockLoader(failures int) *mockLoader {
	return &mockLoader{failures: failures, loaded: make(chan struct{}, 16)}
}

func (m *mockLoader) LoadBatch(_ context.Context, reports []domain.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.calls <= m.failures {
		return errors.New("broker unavailable")
	}
	m.batches = append(m.batches, append([]domain.Report(nil), reports...))
	m.loaded <- struct{}{}
	return nil
}

func (m *mockLoader) snapshot() ([][]domain.Report, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]domain.Report(nil), m.batches...), m.calls
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func report(id string) domain.Report {
	return domain.Report{ID: id, Status: domain.StatusSubmitted}
}

func startDispatcher(t *testing.T, d *pipeline.Dispatcher) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()
	require.Eventually(t, func() bool { return d.CheckReadiness(context.Background()) == nil },
		time.Second, 5*time.Millisecond)
	return cancel, done
}

func waitLoaded(t *testing.T, l *mockLoader) {
	t.Helper()
	select {
	case <-l.loaded:
	case <-time.After(2 * time.Second):
		t.Fatal("batch was not loaded")
	}
}

// --- tests ---

func TestDispatcher_BatchesUpToSize(t *testing.T) {
	ldr := newMockLoader(0)
	metrics := observability.NewMetricsForTesting()
	d := pipeline.New(ldr, discardLogger(), metrics, pipeline.Options{BatchSize: 2, FlushInterval: time.Minute, QueueSize: 8})

	for _, id := range []string{"RPT-1", "RPT-2", "RPT-3"} {
		require.NoError(t, d.Enqueue(report(id)))
	}

	cancel, done := startDispatcher(t, d)
	waitLoaded(t, ldr)

	batches, _ := ldr.snapshot()
	require.Len(t, batches, 1)
	assert.Equal(t, "RPT-1", batches[0][0].ID)
	assert.Equal(t, "RPT-2", batches[0][1].ID)

	cancel()
	require.NoError(t, <-done)

	// The third report is flushed while draining at shutdown.
	batches, _ = ldr.snapshot()
	require.Len(t, batches, 2)
	assert.Equal(t, "RPT-3", batches[1][0].ID)
	assert.InDelta(t, 3, testutil.ToFloat64(metrics.ReportsPublished), 0)
}

func TestDispatcher_FlushesPartialBatchOnInterval(t *testing.T) {
	ldr := newMockLoader(0)
	d := pipeline.New(ldr, discardLogger(), observability.NewMetricsForTesting(),
		pipeline.Options{BatchSize: 50, FlushInterval: 20 * time.Millisecond})

	cancel, done := startDispatcher(t, d)
	defer func() {
		cancel()
		<-done
	}()

	require.NoError(t, d.Enqueue(report("RPT-A")))
	waitLoaded(t, ldr)

	batches, _ := ldr.snapshot()
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 1)
}

func TestDispatcher_RetriesWithBackoff(t *testing.T) {
	ldr := newMockLoader(2)
	metrics := observability.NewMetricsForTesting()
	d := pipeline.New(ldr, discardLogger(), metrics, pipeline.Options{BatchSize: 1, FlushInterval: 10 * time.Millisecond})

	require.NoError(t, d.Enqueue(report("RPT-R")))

	start := time.Now()
	cancel, done := startDispatcher(t, d)
	waitLoaded(t, ldr)
	elapsed := time.Since(start)

	cancel()
	require.NoError(t, <-done)

	batches, calls := ldr.snapshot()
	assert.Equal(t, 3, calls)
	require.Len(t, batches, 1)
	assert.Equal(t, "RPT-R", batches[0][0].ID)
	// 200ms then 400ms of backoff before the third attempt.
	assert.GreaterOrEqual(t, elapsed, 600*time.Millisecond)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.PublishErrors), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ReportsPublished), 0)
}

func TestDispatcher_EnqueueQueueFull(t *testing.T) {
	d := pipeline.New(newMockLoader(0), discardLogger(), observability.NewMetricsForTesting(),
		pipeline.Options{QueueSize: 1})

	require.NoError(t, d.Enqueue(report("RPT-1")))
	require.ErrorIs(t, d.Enqueue(report("RPT-2")), pipeline.ErrQueueFull)
	assert.Equal(t, 1, d.Pending())
}

func TestDispatcher_DrainsQueueOnShutdown(t *testing.T) {
	ldr := newMockLoader(0)
	metrics := observability.NewMetricsForTesting()
	d := pipeline.New(ldr, discardLogger(), metrics, pipeline.Options{BatchSize: 50, FlushInterval: time.Minute})

	for _, id := range []string{"RPT-1", "RPT-2", "RPT-3"} {
		require.NoError(t, d.Enqueue(report(id)))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx))

	batches, _ := ldr.snapshot()
	var ids []string
	for _, b := range batches {
		for _, r := range b {
			ids = append(ids, r.ID)
		}
	}
	assert.Equal(t, []string{"RPT-1", "RPT-2", "RPT-3"}, ids)
	assert.Zero(t, d.Pending())
	assert.InDelta(t, 3, testutil.ToFloat64(metrics.ReportsPublished), 0)
}

func TestDispatcher_EnqueueAfterStopIsRejected(t *testing.T) {
	ldr := newMockLoader(0)
	d := pipeline.New(ldr, discardLogger(), observability.NewMetricsForTesting(), pipeline.Options{})

	cancel, done := startDispatcher(t, d)
	cancel()
	require.NoError(t, <-done)

	require.ErrorIs(t, d.Enqueue(report("RPT-LATE")), pipeline.ErrDispatcherStopped)
	assert.Zero(t, d.Pending())
	batches, _ := ldr.snapshot()
	assert.Empty(t, batches)
}

func TestDispatcher_Readiness(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	d := pipeline.New(newMockLoader(0), discardLogger(), metrics, pipeline.Options{})
	require.Error(t, d.CheckReadiness(context.Background()))

	cancel, done := startDispatcher(t, d)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.DispatcherRunning), 0)

	cancel()
	require.NoError(t, <-done)
	require.Error(t, d.CheckReadiness(context.Background()))
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.DispatcherRunning), 0)
}

func TestDispatcher_ContextCancelledBeforeStart(t *testing.T) {
	ldr := newMockLoader(0)
	d := pipeline.New(ldr, discardLogger(), observability.NewMetricsForTesting(), pipeline.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, d.Run(ctx))
	_, calls := ldr.snapshot()
	assert.Zero(t, calls)
}

func TestLogSink_LoadBatch(t *testing.T) {
	sink := pipeline.NewLogSink(discardLogger())
	err := sink.LoadBatch(context.Background(), domain.MockReports())
	require.NoError(t, err)
}
