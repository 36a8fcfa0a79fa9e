package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/delish-express/internal/domains/cart/domain"
	"github.com/Apurer/delish-express/internal/domains/catalog/adapters/memory"
	"github.com/Apurer/delish-express/internal/shared/notify"
)

func newService(t *testing.T) (*Service, *notify.Queue) {
	t.Helper()
	var queue notify.Queue
	return NewService(memory.NewSeededRepository(), WithNotifier(&queue)), &queue
}

func TestSetItemQuantity_ResolvesCatalogItem(t *testing.T) {
	svc, notices := newService(t)
	cart := domain.NewCart()

	change, err := svc.SetItemQuantity(context.Background(), cart, "roll1", 2)
	require.NoError(t, err)
	assert.Equal(t, domain.EventAdded, change.Event)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Spicy Tuna Roll", lines[0].Name)
	assert.Equal(t, "Sushi Palace", lines[0].RestaurantName)
	assert.Equal(t, int64(2598), cart.Subtotal().Cents())

	got := notices.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, notify.LevelSuccess, got[0].Level)
	assert.Equal(t, "Spicy Tuna Roll added to your cart!", got[0].Title)
}

func TestSetItemQuantity_UnknownItem(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.SetItemQuantity(context.Background(), domain.NewCart(), "ghost", 1)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestChangeQuantity_RemovalNotifies(t *testing.T) {
	svc, notices := newService(t)
	ctx := context.Background()
	cart := domain.NewCart()

	_, err := svc.SetItemQuantity(ctx, cart, "app1", 1)
	require.NoError(t, err)
	notices.Drain()

	change, err := svc.ChangeQuantity(ctx, cart, "app1", -1)
	require.NoError(t, err)
	assert.Equal(t, domain.EventRemoved, change.Event)
	assert.True(t, cart.IsEmpty())

	got := notices.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "Miso Soup removed from your cart.", got[0].Title)
}

func TestRemoveLine_Unknown(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.RemoveLine(context.Background(), domain.NewCart(), "app1")
	require.ErrorIs(t, err, ErrLineNotFound)

	_, err = svc.RemoveLine(context.Background(), nil, "app1")
	require.ErrorIs(t, err, ErrNoCart)
}
