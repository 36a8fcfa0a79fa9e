package memory

import (
	"context"
	"slices"
	"time"

	"github.com/Apurer/delish-express/internal/domains/profile/domain"
	"github.com/Apurer/delish-express/internal/domains/profile/ports"
	"github.com/Apurer/delish-express/internal/shared/money"
)

var _ ports.Repository = (*Repository)(nil)

// Repository serves a fixed sample account.
type Repository struct {
	account   domain.Account
	addresses []domain.SavedAddress
	cards     []domain.SavedCard
	orders    []domain.PastOrder
}

func NewSeededRepository() *Repository {
	return &Repository{
		account: domain.Account{Name: "Alex Doe", Email: "alex.doe@example.com", Phone: "555-123-4567"},
		addresses: []domain.SavedAddress{
			{ID: 1, Label: "Home", Address: "1234 Blossom Hill Ln, San Jose, CA 95123", IsDefault: true},
			{ID: 2, Label: "Work", Address: "5678 Innovation Dr, Palo Alto, CA 94304"},
		},
		cards: []domain.SavedCard{
			{ID: 1, Brand: "Visa", Last4: "4242", Expiry: "12/26", IsDefault: true},
			{ID: 2, Brand: "MasterCard", Last4: "5555", Expiry: "08/25"},
		},
		orders: []domain.PastOrder{
			{ID: "ORD-1024", Date: day(2023, 10, 26), Restaurant: "Sushi Central", Total: money.MustFromFloat(45.50), Status: "Delivered"},
			{ID: "ORD-1021", Date: day(2023, 10, 22), Restaurant: "The Burger Joint", Total: money.MustFromFloat(28.00), Status: "Delivered"},
			{ID: "ORD-1015", Date: day(2023, 10, 15), Restaurant: "Pasta Palace", Total: money.MustFromFloat(52.75), Status: "Cancelled"},
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r *Repository) Account(context.Context) (domain.Account, error) {
	return r.account, nil
}

func (r *Repository) Addresses(context.Context) ([]domain.SavedAddress, error) {
	return slices.Clone(r.addresses), nil
}

func (r *Repository) Cards(context.Context) ([]domain.SavedCard, error) {
	return slices.Clone(r.cards), nil
}

func (r *Repository) PastOrders(context.Context) ([]domain.PastOrder, error) {
	return slices.Clone(r.orders), nil
}
