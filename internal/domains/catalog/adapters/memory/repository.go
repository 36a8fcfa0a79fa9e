package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Apurer/delish-express/internal/domains/catalog/domain"
	"github.com/Apurer/delish-express/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is a read-only in-memory catalog.
type Repository struct {
	mu       sync.RWMutex
	order    []int64
	listings map[int64]domain.Listing
	items    map[string]domain.MenuItem
}

// NewRepository loads the given listings, keeping their order as catalog order.
func NewRepository(listings ...domain.Listing) (*Repository, error) {
	r := &Repository{
		listings: make(map[int64]domain.Listing, len(listings)),
		items:    map[string]domain.MenuItem{},
	}
	for _, listing := range listings {
		if err := listing.Profile.Validate(); err != nil {
			return nil, fmt.Errorf("restaurant %d: %w", listing.Profile.ID, err)
		}
		if err := listing.Menu.Validate(); err != nil {
			return nil, fmt.Errorf("restaurant %d menu: %w", listing.Profile.ID, err)
		}
		if _, dup := r.listings[listing.Profile.ID]; dup {
			return nil, fmt.Errorf("restaurant %d listed twice", listing.Profile.ID)
		}
		r.order = append(r.order, listing.Profile.ID)
		r.listings[listing.Profile.ID] = listing
		for _, category := range listing.Menu.Categories {
			for _, item := range category.Items {
				r.items[item.ID] = item
			}
		}
	}
	return r, nil
}

// NewSeededRepository returns the repository loaded with SeedListings.
func NewSeededRepository() *Repository {
	r, err := NewRepository(SeedListings()...)
	if err != nil {
		panic(fmt.Sprintf("catalog seed is invalid: %v", err))
	}
	return r
}

func (r *Repository) ListRestaurants(_ context.Context) ([]domain.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Restaurant, 0, len(r.order))
	for _, id := range r.order {
		restaurant := r.listings[id].Profile.Restaurant
		restaurant.Cuisines = slices.Clone(restaurant.Cuisines)
		list = append(list, restaurant)
	}
	return list, nil
}

func (r *Repository) GetProfile(_ context.Context, restaurantID int64) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	listing, ok := r.listings[restaurantID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	profile := listing.Profile
	profile.Cuisines = slices.Clone(profile.Cuisines)
	profile.Tags = slices.Clone(profile.Tags)
	return &profile, nil
}

func (r *Repository) GetMenu(_ context.Context, restaurantID int64) (*domain.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	listing, ok := r.listings[restaurantID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	menu := domain.Menu{RestaurantID: restaurantID}
	for _, category := range listing.Menu.Categories {
		menu.Categories = append(menu.Categories, domain.MenuCategory{
			Title: category.Title,
			Items: slices.Clone(category.Items),
		})
	}
	return &menu, nil
}

func (r *Repository) GetMenuItem(_ context.Context, itemID string) (*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[itemID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &item, nil
}
