package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/climate-report-service/internal/domain"
	"github.com/couchcryptid/climate-report-service/internal/observability"
)

var (
	// ErrQueueFull is returned by Enqueue when the dispatcher cannot accept more reports.
	ErrQueueFull = errors.New("report queue is full")
	// ErrDispatcherStopped is returned by Enqueue once Run has begun shutting down.
	ErrDispatcherStopped = errors.New("report dispatcher has stopped")
)

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
	drainTimeout   = 5 * time.Second
)

// BatchLoader writes multiple reports to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, reports []domain.Report) error
}

// Options controls batching and queue capacity.
type Options struct {
	BatchSize     int
	FlushInterval time.Duration
	QueueSize     int
}

// Dispatcher forwards submitted reports to a BatchLoader in batches.
type Dispatcher struct {
	queue         chan domain.Report
	loader        BatchLoader
	logger        *slog.Logger
	metrics       *observability.Metrics
	ready         atomic.Bool
	mu            sync.RWMutex // guards stopped against in-flight Enqueue calls
	stopped       bool
	batchSize     int
	flushInterval time.Duration
}

// New creates a Dispatcher. Zero option values fall back to a batch size of 1,
// a 500ms flush interval, and a queue of 256 reports.
func New(l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Dispatcher {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 1
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = 500 * time.Millisecond
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	return &Dispatcher{
		queue:         make(chan domain.Report, opts.QueueSize),
		loader:        l,
		logger:        logger,
		metrics:       metrics,
		batchSize:     opts.BatchSize,
		flushInterval: opts.FlushInterval,
	}
}

// Enqueue hands a report to the dispatcher without blocking. Reports may be
// queued before Run starts; after Run stops, Enqueue returns ErrDispatcherStopped.
func (d *Dispatcher) Enqueue(r domain.Report) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrDispatcherStopped
	}
	select {
	case d.queue <- r:
		return nil
	default:
		return ErrQueueFull
	}
}

// Pending reports how many reports are waiting in the queue.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// CheckReadiness returns nil once Run has started and until it returns.
func (d *Dispatcher) CheckReadiness(_ context.Context) error {
	if !d.ready.Load() {
		return errors.New("report dispatcher is not running")
	}
	return nil
}

// Run executes the dispatch loop until the context is cancelled. Reports still
// queued at shutdown get one final delivery attempt bounded by drainTimeout.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("dispatcher started", "batch_size", d.batchSize, "flush_interval", d.flushInterval)
	d.metrics.DispatcherRunning.Set(1)
	d.ready.Store(true)
	defer func() {
		d.ready.Store(false)
		d.metrics.DispatcherRunning.Set(0)
	}()

	backoff := initialBackoff
	for {
		batch := d.collectBatch(ctx)
		if ctx.Err() != nil {
			d.drain(ctx, batch)
			d.logger.Info("dispatcher stopping", "reason", ctx.Err())
			return nil
		}
		if len(batch) == 0 {
			continue
		}

		d.metrics.BatchSize.Observe(float64(len(batch)))
		for !d.load(ctx, batch) {
			if !sleepWithContext(ctx, backoff) {
				d.drain(ctx, batch)
				d.logger.Info("dispatcher stopping", "reason", ctx.Err())
				return nil
			}
			backoff = nextBackoff(backoff, maxBackoff)
		}
		backoff = initialBackoff
	}
}

// collectBatch blocks for the first report, then gathers more until the batch
// is full or the flush interval elapses.
func (d *Dispatcher) collectBatch(ctx context.Context) []domain.Report {
	var batch []domain.Report

	select {
	case <-ctx.Done():
		return nil
	case r := <-d.queue:
		batch = append(batch, r)
	}

	timer := time.NewTimer(d.flushInterval)
	defer timer.Stop()

	for len(batch) < d.batchSize {
		select {
		case <-ctx.Done():
			return batch
		case <-timer.C:
			return batch
		case r := <-d.queue:
			batch = append(batch, r)
		}
	}
	return batch
}

// load sends one batch and records the outcome. Returns false on failure.
func (d *Dispatcher) load(ctx context.Context, batch []domain.Report) bool {
	if err := d.loader.LoadBatch(ctx, batch); err != nil {
		d.logger.Error("load batch failed", "error", err, "batch_size", len(batch))
		d.metrics.PublishErrors.Inc()
		return false
	}
	d.metrics.ReportsPublished.Add(float64(len(batch)))
	return true
}

// drain closes the dispatcher to new reports, then makes a last attempt to
// deliver the in-flight batch plus anything left in the queue.
func (d *Dispatcher) drain(ctx context.Context, batch []domain.Report) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

loop:
	for {
		select {
		case r := <-d.queue:
			batch = append(batch, r)
		default:
			break loop
		}
	}
	if len(batch) == 0 {
		return
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()
	if !d.load(drainCtx, batch) {
		d.logger.Warn("reports dropped at shutdown", "count", len(batch))
	}
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
