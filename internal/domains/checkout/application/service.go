package application

import (
	"context"
	"errors"
	"log/slog"

	cartdomain "github.com/Apurer/delish-express/internal/domains/cart/domain"
	"github.com/Apurer/delish-express/internal/domains/checkout/domain"
	"github.com/Apurer/delish-express/internal/domains/checkout/ports"
	ordersdomain "github.com/Apurer/delish-express/internal/domains/orders/domain"
	ordersports "github.com/Apurer/delish-express/internal/domains/orders/ports"
	"github.com/Apurer/delish-express/internal/shared/notify"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoCart    = errors.New("cart is required")
)

// MixedRestaurants labels an order whose lines come from several restaurants.
const MixedRestaurants = "Multiple restaurants"

// Service validates checkout submissions and places orders.
type Service struct {
	orders   ordersports.Service
	notifier notify.Notifier
	logger   *slog.Logger
}

type Option func(*Service)

func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(orders ordersports.Service, opts ...Option) *Service {
	s := &Service{orders: orders, notifier: notify.Discard{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary prices the cart as it stands, delivery fee included.
func (s *Service) Summary(cart *cartdomain.Cart) ordersdomain.Summary {
	return s.orders.Quote(toOrderLines(cart))
}

func (s *Service) Validate(form domain.Form) domain.FieldErrors {
	return domain.Validate(form)
}

// Submit validates the form, places the order and empties the cart. The cart
// is left untouched when anything fails.
func (s *Service) Submit(ctx context.Context, cart *cartdomain.Cart, form domain.Form) (*ordersdomain.Order, error) {
	if cart == nil {
		return nil, ErrNoCart
	}
	if errs := domain.Validate(form); len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	order, err := s.orders.PlaceOrder(ctx, ordersports.PlaceOrderInput{
		Restaurant: restaurantOf(cart),
		Lines:      toOrderLines(cart),
		Delivery: ordersdomain.DeliveryDetails{
			Name:          form.Name,
			Address:       form.Address,
			City:          form.City,
			PostalCode:    form.PostalCode,
			PaymentMethod: string(form.PaymentMethod),
		},
	})
	if err != nil {
		return nil, err
	}
	cart.Clear()
	s.logger.InfoContext(ctx, "checkout submitted", slog.String("order_id", order.ID))
	s.notifier.Notify(ctx, notify.Notice{
		Level:       notify.LevelSuccess,
		Title:       "Order placed successfully!",
		Description: "We've received your order and the restaurant is preparing it.",
	})
	return order, nil
}

func toOrderLines(cart *cartdomain.Cart) []ordersdomain.Line {
	if cart == nil {
		return nil
	}
	lines := cart.Lines()
	out := make([]ordersdomain.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, ordersdomain.Line{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return out
}

func restaurantOf(cart *cartdomain.Cart) string {
	name := ""
	for _, l := range cart.Lines() {
		switch {
		case l.RestaurantName == "":
		case name == "":
			name = l.RestaurantName
		case name != l.RestaurantName:
			return MixedRestaurants
		}
	}
	return name
}

var _ ports.Service = (*Service)(nil)
