package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order store. Orders live until the process exits.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

func NewRepository() *Repository {
	return &Repository{orders: map[string]*domain.Order{}}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	if order.ID == "" {
		return domain.ErrEmptyID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order.Clone()
	return nil
}

func (r *Repository) Get(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

// List returns orders newest first.
func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, order.Clone())
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].PlacedAt.Equal(list[j].PlacedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].PlacedAt.After(list[j].PlacedAt)
	})
	return list, nil
}

// UpdateStatus moves a stored order forward; regressions are rejected.
func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return ports.ErrNotFound
	}
	return order.UpdateStatus(status)
}
