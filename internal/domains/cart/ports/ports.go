package ports

import (
	"context"

	"github.com/Apurer/delish-express/internal/domains/cart/domain"
	catalogdomain "github.com/Apurer/delish-express/internal/domains/catalog/domain"
)

// Catalog resolves the menu data a cart line is built from.
type Catalog interface {
	GetMenuItem(ctx context.Context, itemID string) (*catalogdomain.MenuItem, error)
	GetProfile(ctx context.Context, restaurantID int64) (*catalogdomain.Profile, error)
}

// Service manipulates a cart owned by the caller.
type Service interface {
	SetItemQuantity(ctx context.Context, cart *domain.Cart, itemID string, quantity int) (domain.Change, error)
	ChangeQuantity(ctx context.Context, cart *domain.Cart, itemID string, delta int) (domain.Change, error)
	RemoveLine(ctx context.Context, cart *domain.Cart, itemID string) (domain.Change, error)
}
