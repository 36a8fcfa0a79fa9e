package application

import (
	"context"

	"github.com/Apurer/delish-express/internal/domains/profile/domain"
	"github.com/Apurer/delish-express/internal/domains/profile/ports"
)

// Service assembles the account page from the stored account and live orders.
type Service struct {
	repo   ports.Repository
	orders ports.OrderHistory
}

func NewService(repo ports.Repository, orders ports.OrderHistory) *Service {
	return &Service{repo: repo, orders: orders}
}

// Overview lists orders placed in this process ahead of the stored history.
func (s *Service) Overview(ctx context.Context) (*domain.Overview, error) {
	account, err := s.repo.Account(ctx)
	if err != nil {
		return nil, err
	}
	addresses, err := s.repo.Addresses(ctx)
	if err != nil {
		return nil, err
	}
	cards, err := s.repo.Cards(ctx)
	if err != nil {
		return nil, err
	}
	past, err := s.repo.PastOrders(ctx)
	if err != nil {
		return nil, err
	}
	overview := &domain.Overview{Account: account, Addresses: addresses, Cards: cards}
	if s.orders != nil {
		placed, err := s.orders.History(ctx)
		if err != nil {
			return nil, err
		}
		for _, o := range placed {
			overview.Orders = append(overview.Orders, domain.PastOrder{
				ID:         o.ID,
				Date:       o.PlacedAt,
				Restaurant: o.Restaurant,
				Total:      o.Summary.Total,
				Status:     o.Status.Title(),
			})
		}
	}
	overview.Orders = append(overview.Orders, past...)
	return overview, nil
}

var _ ports.Service = (*Service)(nil)
