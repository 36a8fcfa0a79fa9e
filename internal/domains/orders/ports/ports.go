package ports

import (
	"context"
	"errors"
	"time"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
)

var (
	ErrNotFound   = errors.New("order not found")
	ErrNotTracked = errors.New("order is not being tracked")
)

// Repository stores placed orders for the lifetime of the process.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
}

// Tracker drives an order through its stages.
type Tracker interface {
	Start(ctx context.Context, orderID string) (domain.Progress, error)
	Progress(ctx context.Context, orderID string) (domain.Progress, error)
	Stop(ctx context.Context, orderID string) error
}

// StatusPublisher receives every status transition.
type StatusPublisher interface {
	Publish(ctx context.Context, change domain.StatusChange) error
}

// PlaceOrderInput is everything needed to place an order.
type PlaceOrderInput struct {
	Restaurant string
	Lines      []domain.Line
	Delivery   domain.DeliveryDetails
}

// Service is the orders use-case surface.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	Track(ctx context.Context, id string) (domain.Progress, error)
	StopTracking(ctx context.Context, id string) error
	History(ctx context.Context) ([]*domain.Order, error)
	Quote(lines []domain.Line) domain.Summary
	StageDelay() time.Duration
}
