package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/orders/ports"
)

const (
	// RecordStatusActivityName hands a status transition to the configured publishers.
	RecordStatusActivityName = "orders.activities.RecordStatus"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	publisher ports.StatusPublisher
}

func NewActivities(publisher ports.StatusPublisher) *Activities {
	return &Activities{publisher: publisher}
}

// RecordStatus publishes one transition.
func (a *Activities) RecordStatus(ctx context.Context, change domain.StatusChange) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.publisher == nil {
		logger.Error("record status activity not initialized", "orderId", change.OrderID)
		return errors.New("record status activity not initialized")
	}
	if err := a.publisher.Publish(ctx, change); err != nil {
		logger.Error("RecordStatus activity failed", "orderId", change.OrderID, "status", string(change.Progress.Status), "error", err)
		return err
	}
	logger.Info("RecordStatus activity completed", "orderId", change.OrderID, "status", string(change.Progress.Status))
	return nil
}
