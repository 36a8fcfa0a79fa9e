package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/Apurer/delish-express/internal/domains/cart/domain"
	"github.com/Apurer/delish-express/internal/domains/checkout/domain"
	ordersdomain "github.com/Apurer/delish-express/internal/domains/orders/domain"
	ordersports "github.com/Apurer/delish-express/internal/domains/orders/ports"
	"github.com/Apurer/delish-express/internal/shared/money"
	"github.com/Apurer/delish-express/internal/shared/notify"
)

type fakeOrders struct {
	placed []ordersports.PlaceOrderInput
	err    error
}

func (f *fakeOrders) PlaceOrder(_ context.Context, input ordersports.PlaceOrderInput) (*ordersdomain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.placed = append(f.placed, input)
	return ordersdomain.NewOrder("o-1", input.Lines, 500, input.Delivery, time.Now(), time.Minute)
}

func (f *fakeOrders) GetOrder(context.Context, string) (*ordersdomain.Order, error) {
	return nil, ordersports.ErrNotFound
}

func (f *fakeOrders) Track(context.Context, string) (ordersdomain.Progress, error) {
	return ordersdomain.Progress{}, ordersports.ErrNotFound
}

func (f *fakeOrders) StopTracking(context.Context, string) error { return nil }

func (f *fakeOrders) History(context.Context) ([]*ordersdomain.Order, error) { return nil, nil }

func (f *fakeOrders) Quote(lines []ordersdomain.Line) ordersdomain.Summary {
	return ordersdomain.Summarize(lines, 500)
}

func (f *fakeOrders) StageDelay() time.Duration { return time.Second }

func filledCart(t *testing.T) *cartdomain.Cart {
	t.Helper()
	cart := cartdomain.NewCart()
	_, err := cart.SetItemQuantity(cartdomain.Product{ItemID: "roll1", Name: "Spicy Tuna Roll", RestaurantName: "Sushi Palace", UnitPrice: money.MustFromFloat(12.99)}, 2)
	require.NoError(t, err)
	_, err = cart.SetItemQuantity(cartdomain.Product{ItemID: "app1", Name: "Miso Soup", RestaurantName: "Sushi Palace", UnitPrice: money.MustFromFloat(4.50)}, 1)
	require.NoError(t, err)
	return cart
}

func validForm() domain.Form {
	return domain.Form{Name: "Al", Address: "123 St", City: "NY", PostalCode: "1234", PaymentMethod: domain.PaymentCreditCard}
}

func TestSubmit_PlacesOrderAndClearsCart(t *testing.T) {
	orders := &fakeOrders{}
	var notices notify.Queue
	svc := NewService(orders, WithNotifier(&notices))
	cart := filledCart(t)

	order, err := svc.Submit(context.Background(), cart, validForm())
	require.NoError(t, err)
	assert.Equal(t, "o-1", order.ID)
	assert.True(t, cart.IsEmpty())

	require.Len(t, orders.placed, 1)
	assert.Equal(t, "Sushi Palace", orders.placed[0].Restaurant)
	assert.Equal(t, "123 St", orders.placed[0].Delivery.Address)
	assert.Len(t, orders.placed[0].Lines, 2)

	got := notices.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "Order placed successfully!", got[0].Title)
}

func TestSubmit_InvalidFormKeepsCart(t *testing.T) {
	orders := &fakeOrders{}
	svc := NewService(orders)
	cart := filledCart(t)
	form := validForm()
	form.Name = "A"

	_, err := svc.Submit(context.Background(), cart, form)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"name"}, verr.Fields.Fields())
	assert.False(t, cart.IsEmpty())
	assert.Empty(t, orders.placed)
}

func TestSubmit_EmptyCart(t *testing.T) {
	svc := NewService(&fakeOrders{})
	_, err := svc.Submit(context.Background(), cartdomain.NewCart(), validForm())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestSubmit_OrderFailureKeepsCart(t *testing.T) {
	svc := NewService(&fakeOrders{err: errors.New("boom")})
	cart := filledCart(t)
	_, err := svc.Submit(context.Background(), cart, validForm())
	require.Error(t, err)
	assert.Equal(t, 3, cart.Count())
}

func TestSummary(t *testing.T) {
	svc := NewService(&fakeOrders{})
	summary := svc.Summary(filledCart(t))
	assert.Equal(t, "30.48", summary.Subtotal.Decimal())
	assert.Equal(t, "35.48", summary.Total.Decimal())
}

func TestRestaurantOf_Mixed(t *testing.T) {
	cart := filledCart(t)
	_, err := cart.SetItemQuantity(cartdomain.Product{ItemID: "bj3", Name: "Fries", RestaurantName: "The Burger Joint", UnitPrice: 400}, 1)
	require.NoError(t, err)
	assert.Equal(t, MixedRestaurants, restaurantOf(cart))
}
