package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ordersdomain "github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/domains/profile/adapters/memory"
)

type stubHistory []*ordersdomain.Order

func (s stubHistory) History(context.Context) ([]*ordersdomain.Order, error) {
	return s, nil
}

func TestOverview_SeedOnly(t *testing.T) {
	svc := NewService(memory.NewSeededRepository(), stubHistory(nil))
	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Alex Doe", overview.Account.Name)
	require.Len(t, overview.Addresses, 2)
	assert.True(t, overview.Addresses[0].IsDefault)
	require.Len(t, overview.Cards, 2)
	assert.Equal(t, "4242", overview.Cards[0].Last4)
	require.Len(t, overview.Orders, 3)
	assert.Equal(t, "ORD-1024", overview.Orders[0].ID)
	assert.Equal(t, "45.50", overview.Orders[0].Total.Decimal())
}

func TestOverview_PlacedOrdersComeFirst(t *testing.T) {
	order, err := ordersdomain.NewOrder("o-1", []ordersdomain.Line{{ItemID: "roll1", Name: "Spicy Tuna Roll", UnitPrice: 1299, Quantity: 1}}, 500, ordersdomain.DeliveryDetails{}, time.Now(), time.Minute)
	require.NoError(t, err)
	order.Restaurant = "Sushi Palace"

	svc := NewService(memory.NewSeededRepository(), stubHistory{order})
	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	require.Len(t, overview.Orders, 4)
	assert.Equal(t, "o-1", overview.Orders[0].ID)
	assert.Equal(t, "Order Placed", overview.Orders[0].Status)
	assert.Equal(t, int64(1799), overview.Orders[0].Total.Cents())
}
