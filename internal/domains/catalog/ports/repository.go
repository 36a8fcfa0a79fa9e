package ports

import (
	"context"
	"errors"

	"github.com/Apurer/delish-express/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("catalog entry not found")

// Repository reads the restaurant catalog. Restaurants are returned in
// catalog (recommended) order.
type Repository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetProfile(ctx context.Context, restaurantID int64) (*domain.Profile, error)
	GetMenu(ctx context.Context, restaurantID int64) (*domain.Menu, error)
	GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error)
}
