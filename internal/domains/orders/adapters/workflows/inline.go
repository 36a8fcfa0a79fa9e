package workflows

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/orders/ports"
	"github.com/Apurer/delish-express/internal/platform/scheduler"
)

var _ ports.Tracker = (*InlineTracker)(nil)

// InlineTracker runs one in-process status machine per order. It is the
// fallback when Temporal is unavailable and the driver used in tests.
type InlineTracker struct {
	mu        sync.Mutex
	sched     scheduler.Scheduler
	delay     time.Duration
	publisher ports.StatusPublisher
	now       func() time.Time
	logger    *slog.Logger
	machines  map[string]*domain.Machine
}

// InlineOption configures the inline tracker.
type InlineOption func(*InlineTracker)

func WithInlineClock(now func() time.Time) InlineOption {
	return func(t *InlineTracker) {
		if now != nil {
			t.now = now
		}
	}
}

func WithInlineLogger(logger *slog.Logger) InlineOption {
	return func(t *InlineTracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

func NewInlineTracker(sched scheduler.Scheduler, delay time.Duration, publisher ports.StatusPublisher, opts ...InlineOption) *InlineTracker {
	t := &InlineTracker{
		sched:     sched,
		delay:     delay,
		publisher: publisher,
		now:       time.Now,
		logger:    slog.Default(),
		machines:  map[string]*domain.Machine{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start creates and arms a machine for the order. Starting an order that is
// already tracked returns its current progress.
func (t *InlineTracker) Start(ctx context.Context, orderID string) (domain.Progress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if m, ok := t.machines[orderID]; ok {
		return m.Progress(), nil
	}
	publishCtx := context.WithoutCancel(ctx)
	var m *domain.Machine
	m = domain.NewMachine(t.sched, t.delay, func(p domain.Progress) {
		t.publish(publishCtx, domain.StatusChange{OrderID: orderID, Progress: p, OccurredAt: t.now()})
		if p.Done() {
			t.forget(orderID, m)
		}
	})
	t.machines[orderID] = m
	m.Start()
	return m.Progress(), nil
}

func (t *InlineTracker) Progress(_ context.Context, orderID string) (domain.Progress, error) {
	t.mu.Lock()
	m, ok := t.machines[orderID]
	t.mu.Unlock()
	if !ok {
		return domain.Progress{}, ports.ErrNotTracked
	}
	return m.Progress(), nil
}

// Stop cancels the order's pending transition and forgets the machine.
func (t *InlineTracker) Stop(_ context.Context, orderID string) error {
	t.mu.Lock()
	m, ok := t.machines[orderID]
	delete(t.machines, orderID)
	t.mu.Unlock()
	if !ok {
		return ports.ErrNotTracked
	}
	m.Stop()
	return nil
}

// forget drops a delivered machine so finished orders do not accumulate.
// Callers read the final status from the order repository afterwards.
func (t *InlineTracker) forget(orderID string, m *domain.Machine) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.machines[orderID] == m {
		delete(t.machines, orderID)
	}
}

// StopAll cancels every pending transition, used on shutdown.
func (t *InlineTracker) StopAll() {
	t.mu.Lock()
	machines := t.machines
	t.machines = map[string]*domain.Machine{}
	t.mu.Unlock()
	for _, m := range machines {
		m.Stop()
	}
}

func (t *InlineTracker) publish(ctx context.Context, change domain.StatusChange) {
	if t.publisher == nil {
		return
	}
	if err := t.publisher.Publish(ctx, change); err != nil {
		t.logger.WarnContext(ctx, "failed to publish order status",
			slog.String("order_id", change.OrderID),
			slog.String("status", string(change.Progress.Status)),
			slog.String("error", err.Error()),
		)
	}
}
