package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/orders/ports"
	orderworkflows "github.com/Apurer/delish-express/internal/platform/temporal/workflows/orders"
)

var _ ports.Tracker = (*TemporalTracker)(nil)

// TemporalTracker runs each order's progression as a durable workflow and
// reads progress back through a workflow query.
type TemporalTracker struct {
	client    client.Client
	taskQueue string
	delay     time.Duration
}

func NewTemporalTracker(c client.Client, delay time.Duration) *TemporalTracker {
	if delay <= 0 {
		delay = domain.DefaultStageDelay
	}
	return &TemporalTracker{client: c, taskQueue: orderworkflows.OrderTrackingTaskQueue, delay: delay}
}

func (t *TemporalTracker) Start(ctx context.Context, orderID string) (domain.Progress, error) {
	if t == nil || t.client == nil {
		return domain.Progress{}, errors.New("temporal order tracker not configured")
	}
	options := client.StartWorkflowOptions{
		ID:        TrackingWorkflowID(orderID),
		TaskQueue: t.taskQueue,
	}
	input := orderworkflows.OrderTrackingWorkflowInput{
		OrderID:    orderID,
		StageDelay: t.delay,
		TraceID:    workflowTraceID(ctx),
	}
	_, err := t.client.ExecuteWorkflow(ctx, options, orderworkflows.OrderTrackingWorkflowName, input)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return t.Progress(ctx, orderID)
		}
		return domain.Progress{}, err
	}
	return domain.ProgressOf(domain.StatusOrderPlaced), nil
}

func (t *TemporalTracker) Progress(ctx context.Context, orderID string) (domain.Progress, error) {
	if t == nil || t.client == nil {
		return domain.Progress{}, errors.New("temporal order tracker not configured")
	}
	value, err := t.client.QueryWorkflow(ctx, TrackingWorkflowID(orderID), "", orderworkflows.ProgressQuery)
	if err != nil {
		return domain.Progress{}, mapNotFound(err)
	}
	var progress domain.Progress
	if err := value.Get(&progress); err != nil {
		return domain.Progress{}, err
	}
	return progress, nil
}

func (t *TemporalTracker) Stop(ctx context.Context, orderID string) error {
	if t == nil || t.client == nil {
		return errors.New("temporal order tracker not configured")
	}
	return mapNotFound(t.client.CancelWorkflow(ctx, TrackingWorkflowID(orderID), ""))
}

// TrackingWorkflowID is deterministic so every process addresses the same run.
func TrackingWorkflowID(orderID string) string {
	return fmt.Sprintf("order-tracking-%s", orderID)
}

func mapNotFound(err error) error {
	var notFound *serviceerror.NotFound
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %w", ports.ErrNotTracked, err)
	}
	return err
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
