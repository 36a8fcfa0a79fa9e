package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/orders/ports"
)

// StatusMetrics counts status transitions by target stage.
type StatusMetrics struct {
	transitions metric.Int64Counter
}

func NewStatusMetrics(m metric.Meter) *StatusMetrics {
	if m == nil {
		return &StatusMetrics{}
	}
	transitions, _ := m.Int64Counter("orders.tracking.transitions", metric.WithDescription("Order status transitions"))
	return &StatusMetrics{transitions: transitions}
}

func (s *StatusMetrics) Publish(ctx context.Context, change domain.StatusChange) error {
	if s.transitions != nil {
		s.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(change.Progress.Status))))
	}
	return nil
}

var _ ports.StatusPublisher = (*StatusMetrics)(nil)
