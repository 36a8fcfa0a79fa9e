package ports

import (
	"context"

	"github.com/Apurer/delish-express/internal/domains/catalog/domain"
)

// Service exposes catalog browsing to adapters.
type Service interface {
	ListRestaurants(ctx context.Context, selection domain.FilterSelection) ([]domain.Restaurant, error)
	Search(ctx context.Context, term string) (*domain.SearchResult, error)
	GetProfile(ctx context.Context, restaurantID int64) (*domain.Profile, error)
	GetMenu(ctx context.Context, restaurantID int64) (*domain.Menu, error)
	GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error)
}
