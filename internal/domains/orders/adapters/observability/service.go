package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/delish-express/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core orders service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.DiscardHandler),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.PlaceOrder",
		trace.WithAttributes(attribute.Int("order.lines", len(input.Lines))))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.Int("order.lines", len(input.Lines)))
	order, err := s.inner.PlaceOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order")
	}
	span.SetAttributes(attribute.String("order.id", order.ID))
	s.metrics.recordPlaced(ctx, order)
	s.logInfo(ctx, "order placed",
		slog.String("order.id", order.ID),
		slog.String("order.total", order.Summary.Total.Decimal()),
	)
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.GetOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	order, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	return order, nil
}

func (s *Service) Track(ctx context.Context, id string) (domain.Progress, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.Track", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	progress, err := s.inner.Track(ctx, id)
	if err != nil {
		return domain.Progress{}, s.handleError(ctx, span, err, "failed to read order progress", slog.String("order.id", id))
	}
	span.SetAttributes(attribute.String("order.status", string(progress.Status)))
	return progress, nil
}

func (s *Service) StopTracking(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "OrdersService.StopTracking", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "stopping order tracking", slog.String("order.id", id))
	if err := s.inner.StopTracking(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to stop order tracking", slog.String("order.id", id))
	}
	return nil
}

func (s *Service) History(ctx context.Context) ([]*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.History")
	defer span.End()

	orders, err := s.inner.History(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(orders)))
	return orders, nil
}

func (s *Service) Quote(lines []domain.Line) domain.Summary {
	return s.inner.Quote(lines)
}

func (s *Service) StageDelay() time.Duration {
	return s.inner.StageDelay()
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersPlaced metric.Int64Counter
	orderValue   metric.Int64Histogram
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("orders.service.orders_placed", metric.WithDescription("Number of orders placed"))
	orderValue, _ := m.Int64Histogram("orders.service.order_total_cents",
		metric.WithDescription("Order total including delivery fee"),
		metric.WithUnit("{cent}"))
	return serviceMetrics{ordersPlaced: ordersPlaced, orderValue: orderValue}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, order *domain.Order) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
	if m.orderValue != nil {
		m.orderValue.Record(ctx, order.Summary.Total.Cents())
	}
}

var _ ports.Service = (*Service)(nil)
