package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/orders/ports"
	"github.com/Apurer/delish-express/internal/shared/money"
)

const (
	DefaultDeliveryFee       money.Amount = 500
	DefaultEstimatedDelivery              = 30 * time.Minute
)

// Service orchestrates order placement and tracking.
type Service struct {
	repo        ports.Repository
	tracker     ports.Tracker
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
	deliveryFee money.Amount
	eta         time.Duration
	stageDelay  time.Duration
}

// Option configures the service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

func WithDeliveryFee(fee money.Amount) Option {
	return func(s *Service) {
		if fee >= 0 {
			s.deliveryFee = fee
		}
	}
}

func WithEstimatedDelivery(eta time.Duration) Option {
	return func(s *Service) {
		if eta > 0 {
			s.eta = eta
		}
	}
}

// WithStageDelay records the delay the tracker uses so pages can poll at the same pace.
func WithStageDelay(delay time.Duration) Option {
	return func(s *Service) {
		if delay > 0 {
			s.stageDelay = delay
		}
	}
}

func NewService(repo ports.Repository, tracker ports.Tracker, opts ...Option) *Service {
	s := &Service{
		repo:        repo,
		tracker:     tracker,
		logger:      slog.Default(),
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
		deliveryFee: DefaultDeliveryFee,
		eta:         DefaultEstimatedDelivery,
		stageDelay:  domain.DefaultStageDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder stores the order and starts tracking it. A tracker failure is
// logged; the order stays placed and reports its stored status.
func (s *Service) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	order, err := domain.NewOrder(s.newID(), input.Lines, s.deliveryFee, input.Delivery, s.now(), s.eta)
	if err != nil {
		return nil, mapError(err)
	}
	order.Restaurant = input.Restaurant
	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}
	if _, err := s.tracker.Start(ctx, order.ID); err != nil {
		s.logger.WarnContext(ctx, "order tracking did not start",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.Get(ctx, id)
}

// Track reads live progress from the tracker and folds it into the stored
// order. Orders the tracker no longer knows report their stored status.
func (s *Service) Track(ctx context.Context, id string) (domain.Progress, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Progress{}, err
	}
	progress, err := s.tracker.Progress(ctx, id)
	if errors.Is(err, ports.ErrNotTracked) {
		return order.Progress(), nil
	}
	if err != nil {
		return domain.Progress{}, err
	}
	if order.Status.Before(progress.Status) {
		if err := s.repo.UpdateStatus(ctx, id, progress.Status); err != nil && !errors.Is(err, domain.ErrStatusRegression) {
			return domain.Progress{}, err
		}
	}
	if progress.Status.Before(order.Status) {
		return order.Progress(), nil
	}
	return progress, nil
}

// StopTracking cancels the pending transition. Stopping twice is not an error.
func (s *Service) StopTracking(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.tracker.Stop(ctx, id); err != nil && !errors.Is(err, ports.ErrNotTracked) {
		return err
	}
	return nil
}

func (s *Service) History(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// Quote prices lines with the configured delivery fee.
func (s *Service) Quote(lines []domain.Line) domain.Summary {
	return domain.Summarize(lines, s.deliveryFee)
}

func (s *Service) StageDelay() time.Duration {
	return s.stageDelay
}

var _ ports.Service = (*Service)(nil)
