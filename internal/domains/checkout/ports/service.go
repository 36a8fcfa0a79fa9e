package ports

import (
	"context"

	cartdomain "github.com/Apurer/delish-express/internal/domains/cart/domain"
	"github.com/Apurer/delish-express/internal/domains/checkout/domain"
	ordersdomain "github.com/Apurer/delish-express/internal/domains/orders/domain"
)

// Service turns a validated form and a cart into a placed order.
type Service interface {
	Summary(cart *cartdomain.Cart) ordersdomain.Summary
	Validate(form domain.Form) domain.FieldErrors
	Submit(ctx context.Context, cart *cartdomain.Cart, form domain.Form) (*ordersdomain.Order, error)
}
