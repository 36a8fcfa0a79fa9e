package orders

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	orderactivities "github.com/Apurer/delish-express/internal/platform/temporal/activities/orders"
)

const (
	// OrderTrackingWorkflowName is the public identifier for registering the workflow.
	OrderTrackingWorkflowName = "orders.workflows.Tracking"
	// OrderTrackingTaskQueue is the queue consumed by the worker running tracking workflows.
	OrderTrackingTaskQueue = "ORDER_TRACKING"
	// ProgressQuery returns the current domain.Progress.
	ProgressQuery = "tracking-progress"
)

// OrderTrackingWorkflowInput identifies the order and how long each stage lasts.
type OrderTrackingWorkflowInput struct {
	OrderID    string
	StageDelay time.Duration
	TraceID    string
}

// OrderTrackingWorkflow sleeps one stage delay per stage until the order is
// delivered, recording each transition through an activity. Cancelling the
// workflow stops the progression where it is.
func OrderTrackingWorkflow(ctx workflow.Context, input OrderTrackingWorkflowInput) (domain.Progress, error) {
	logger := workflow.GetLogger(ctx)
	delay := input.StageDelay
	if delay <= 0 {
		delay = domain.DefaultStageDelay
	}
	status := domain.StatusOrderPlaced
	if err := workflow.SetQueryHandler(ctx, ProgressQuery, func() (domain.Progress, error) {
		return domain.ProgressOf(status), nil
	}); err != nil {
		return domain.ProgressOf(status), err
	}
	logger.Info("OrderTrackingWorkflow started", withTraceID(input.TraceID, "orderId", input.OrderID)...)

	recordOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	}
	actx := workflow.WithActivityOptions(ctx, recordOptions)

	for {
		next, ok := status.Next()
		if !ok {
			break
		}
		if err := workflow.Sleep(ctx, delay); err != nil {
			logger.Info("OrderTrackingWorkflow stopped", withTraceID(input.TraceID, "orderId", input.OrderID, "status", string(status))...)
			return domain.ProgressOf(status), err
		}
		status = next
		change := domain.StatusChange{
			OrderID:    input.OrderID,
			Progress:   domain.ProgressOf(status),
			OccurredAt: workflow.Now(ctx),
		}
		if err := workflow.ExecuteActivity(actx, orderactivities.RecordStatusActivityName, change).Get(ctx, nil); err != nil {
			logger.Warn("OrderTrackingWorkflow could not record status", withTraceID(input.TraceID, "orderId", input.OrderID, "status", string(status), "error", err)...)
		}
	}
	logger.Info("OrderTrackingWorkflow completed", withTraceID(input.TraceID, "orderId", input.OrderID)...)
	return domain.ProgressOf(status), nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
