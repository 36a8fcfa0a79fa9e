package mapper

import (
	"github.com/Apurer/delish-express/internal/domains/cart/domain"
)

// CartLine is the HTTP representation of a cart line.
type CartLine struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Restaurant string  `json:"restaurant,omitempty"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	LineTotal  float64 `json:"lineTotal"`
}

// Cart is the cart panel payload.
type Cart struct {
	Items    []CartLine `json:"items"`
	Count    int        `json:"count"`
	Subtotal float64    `json:"subtotal"`
}

// QuantityRequest sets an item's quantity from a menu card stepper.
type QuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// DeltaRequest steps a cart line up or down.
type DeltaRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// Change reports the outcome of a quantity operation together with the cart.
type Change struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Event    string `json:"event,omitempty"`
	Cart     Cart   `json:"cart"`
}

func FromCart(cart *domain.Cart) Cart {
	out := Cart{Items: []CartLine{}}
	if cart == nil {
		return out
	}
	for _, line := range cart.Lines() {
		out.Items = append(out.Items, CartLine{
			ID:         line.ItemID,
			Name:       line.Name,
			Restaurant: line.RestaurantName,
			Price:      line.UnitPrice.Float(),
			Quantity:   line.Quantity,
			ImageURL:   line.ImageURL,
			LineTotal:  line.Total().Float(),
		})
	}
	out.Count = cart.Count()
	out.Subtotal = cart.Subtotal().Float()
	return out
}

func FromChange(change domain.Change, cart *domain.Cart) Change {
	return Change{
		ItemID:   change.ItemID,
		Quantity: change.Quantity,
		Event:    string(change.Event),
		Cart:     FromCart(cart),
	}
}
