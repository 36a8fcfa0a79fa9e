package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	cartdomain "github.com/Apurer/delish-express/internal/domains/cart/domain"
	"github.com/Apurer/delish-express/internal/domains/checkout/domain"
	"github.com/Apurer/delish-express/internal/domains/checkout/ports"
	ordersdomain "github.com/Apurer/delish-express/internal/domains/orders/domain"
)

const tracerName = "github.com/Apurer/delish-express/internal/domains/checkout/adapters/observability/service"

// Service decorates the checkout service with tracing, logging, and metrics.
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

// New wraps the core checkout service.
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

func (s *Service) Summary(cart *cartdomain.Cart) ordersdomain.Summary {
	return s.inner.Summary(cart)
}

func (s *Service) Validate(form domain.Form) domain.FieldErrors {
	return s.inner.Validate(form)
}

func (s *Service) Submit(ctx context.Context, cart *cartdomain.Cart, form domain.Form) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.Submit",
		trace.WithAttributes(attribute.String("checkout.payment_method", string(form.PaymentMethod))))
	defer span.End()

	order, err := s.inner.Submit(ctx, cart, form)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.metrics.recordRejected(ctx, verr.Fields.Fields())
			span.SetAttributes(attribute.StringSlice("checkout.invalid_fields", verr.Fields.Fields()))
			s.log(ctx, slog.LevelInfo, "checkout form rejected", slog.Any("fields", verr.Fields.Fields()))
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log(ctx, slog.LevelError, "checkout failed", slog.String("error", err.Error()))
		return nil, err
	}
	span.SetAttributes(attribute.String("order.id", order.ID))
	s.metrics.recordSubmitted(ctx, form.PaymentMethod)
	s.log(ctx, slog.LevelInfo, "checkout completed", slog.String("order.id", order.ID))
	return order, nil
}

func (s *Service) log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}

type serviceMetrics struct {
	submitted metric.Int64Counter
	rejected  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	submitted, _ := m.Int64Counter("checkout.service.submitted", metric.WithDescription("Checkouts that placed an order"))
	rejected, _ := m.Int64Counter("checkout.service.rejected_fields", metric.WithDescription("Checkout form fields that failed validation"))
	return serviceMetrics{submitted: submitted, rejected: rejected}
}

func (m serviceMetrics) recordSubmitted(ctx context.Context, method domain.PaymentMethod) {
	if m.submitted != nil {
		m.submitted.Add(ctx, 1, metric.WithAttributes(attribute.String("checkout.payment_method", string(method))))
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context, fields []string) {
	if m.rejected == nil {
		return
	}
	for _, f := range fields {
		m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("checkout.field", f)))
	}
}

var _ ports.Service = (*Service)(nil)
