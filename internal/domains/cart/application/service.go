package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Apurer/delish-express/internal/domains/cart/domain"
	"github.com/Apurer/delish-express/internal/domains/cart/ports"
	catalogports "github.com/Apurer/delish-express/internal/domains/catalog/ports"
	"github.com/Apurer/delish-express/internal/shared/notify"
)

var (
	ErrInvalidInput = errors.New("invalid cart input")
	ErrItemNotFound = errors.New("menu item not found")
	ErrLineNotFound = domain.ErrLineNotFound
	ErrNoCart       = errors.New("cart is required")
)

// Service applies quantity changes to a caller-owned cart and raises a notice
// whenever an item enters or leaves it.
type Service struct {
	catalog  ports.Catalog
	notifier notify.Notifier
	logger   *slog.Logger
}

// Option configures the service.
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

func NewService(catalog ports.Catalog, opts ...Option) *Service {
	s := &Service{catalog: catalog, notifier: notify.Discard{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetItemQuantity resolves the item from the catalog and sets its quantity.
func (s *Service) SetItemQuantity(ctx context.Context, cart *domain.Cart, itemID string, quantity int) (domain.Change, error) {
	if cart == nil {
		return domain.Change{}, ErrNoCart
	}
	product, err := s.product(ctx, itemID)
	if err != nil {
		return domain.Change{}, err
	}
	change, err := cart.SetItemQuantity(product, quantity)
	if err != nil {
		return domain.Change{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	s.announce(ctx, change)
	return change, nil
}

// ChangeQuantity steps an existing line by delta.
func (s *Service) ChangeQuantity(ctx context.Context, cart *domain.Cart, itemID string, delta int) (domain.Change, error) {
	if cart == nil {
		return domain.Change{}, ErrNoCart
	}
	change, err := cart.ChangeQuantity(itemID, delta)
	if err != nil {
		return domain.Change{}, err
	}
	s.announce(ctx, change)
	return change, nil
}

// RemoveLine drops a line outright.
func (s *Service) RemoveLine(ctx context.Context, cart *domain.Cart, itemID string) (domain.Change, error) {
	if cart == nil {
		return domain.Change{}, ErrNoCart
	}
	change, err := cart.RemoveLine(itemID)
	if err != nil {
		return domain.Change{}, err
	}
	s.announce(ctx, change)
	return change, nil
}

func (s *Service) product(ctx context.Context, itemID string) (domain.Product, error) {
	item, err := s.catalog.GetMenuItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return domain.Product{}, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
		}
		return domain.Product{}, err
	}
	product := domain.Product{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		ImageURL:  item.ImageURL,
	}
	if profile, err := s.catalog.GetProfile(ctx, item.RestaurantID); err == nil {
		product.RestaurantName = profile.Name
	}
	return product, nil
}

func (s *Service) announce(ctx context.Context, change domain.Change) {
	s.logger.DebugContext(ctx, "cart quantity changed",
		slog.String("item_id", change.ItemID),
		slog.Int("previous", change.Previous),
		slog.Int("quantity", change.Quantity),
		slog.String("event", string(change.Event)),
	)
	switch change.Event {
	case domain.EventAdded:
		s.notifier.Notify(ctx, notify.Notice{Level: notify.LevelSuccess, Title: change.Name + " added to your cart!"})
	case domain.EventRemoved:
		s.notifier.Notify(ctx, notify.Notice{Level: notify.LevelInfo, Title: change.Name + " removed from your cart."})
	}
}

var _ ports.Service = (*Service)(nil)
