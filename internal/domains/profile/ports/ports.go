package ports

import (
	"context"

	ordersdomain "github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/profile/domain"
)

// Repository reads the mock account.
type Repository interface {
	Account(ctx context.Context) (domain.Account, error)
	Addresses(ctx context.Context) ([]domain.SavedAddress, error)
	Cards(ctx context.Context) ([]domain.SavedCard, error)
	PastOrders(ctx context.Context) ([]domain.PastOrder, error)
}

// OrderHistory lists orders placed since the process started, newest first.
type OrderHistory interface {
	History(ctx context.Context) ([]*ordersdomain.Order, error)
}

// Service builds the account page.
type Service interface {
	Overview(ctx context.Context) (*domain.Overview, error)
}
