package domain

import (
	"errors"
	"slices"
	"strings"

	"github.com/Apurer/delish-express/internal/shared/money"
)

var (
	ErrLineNotFound  = errors.New("cart line not found")
	ErrEmptyItemID   = errors.New("item id is required")
	ErrNegativePrice = errors.New("unit price must not be negative")
)

// Product is the catalog data a line needs to render and price itself.
type Product struct {
	ItemID         string
	Name           string
	RestaurantName string
	UnitPrice      money.Amount
	ImageURL       string
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.ItemID) == "" {
		return ErrEmptyItemID
	}
	if p.UnitPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Line is one item in the cart. Stored lines always hold 1..MaxQuantity.
type Line struct {
	Product
	Quantity int
}

// Total is quantity times unit price.
func (l Line) Total() money.Amount {
	return l.UnitPrice.Times(l.Quantity)
}

// Change describes the outcome of a quantity operation.
type Change struct {
	ItemID   string
	Name     string
	Previous int
	Quantity int
	Event    Event
}

// Cart keeps lines in the order they were first added. It is not safe for
// concurrent use; the owning session serialises access.
type Cart struct {
	lines []Line
}

func NewCart() *Cart {
	return &Cart{}
}

// SetItemQuantity runs the stepper against the item's current quantity.
// A result of zero removes the line.
func (c *Cart) SetItemQuantity(product Product, requested int) (Change, error) {
	if err := product.Validate(); err != nil {
		return Change{}, err
	}
	idx := c.index(product.ItemID)
	current := 0
	if idx >= 0 {
		current = c.lines[idx].Quantity
	}
	next, event := SetQuantity(current, requested)
	change := Change{ItemID: product.ItemID, Name: product.Name, Previous: current, Quantity: next, Event: event}
	switch {
	case next == 0 && idx >= 0:
		c.lines = slices.Delete(c.lines, idx, idx+1)
	case next == 0:
	case idx >= 0:
		c.lines[idx].Product = product
		c.lines[idx].Quantity = next
	default:
		c.lines = append(c.lines, Line{Product: product, Quantity: next})
	}
	return change, nil
}

// ChangeQuantity adds delta to an existing line through the same stepper as
// SetItemQuantity, so reaching zero removes the line.
func (c *Cart) ChangeQuantity(itemID string, delta int) (Change, error) {
	idx := c.index(itemID)
	if idx < 0 {
		return Change{}, ErrLineNotFound
	}
	line := c.lines[idx]
	delta = max(-MaxQuantity, min(delta, MaxQuantity))
	return c.SetItemQuantity(line.Product, line.Quantity+delta)
}

// RemoveLine deletes the line regardless of its quantity.
func (c *Cart) RemoveLine(itemID string) (Change, error) {
	idx := c.index(itemID)
	if idx < 0 {
		return Change{}, ErrLineNotFound
	}
	line := c.lines[idx]
	c.lines = slices.Delete(c.lines, idx, idx+1)
	return Change{ItemID: itemID, Name: line.Name, Previous: line.Quantity, Event: EventRemoved}, nil
}

// Quantity of the item in the cart, zero when absent.
func (c *Cart) Quantity(itemID string) int {
	if idx := c.index(itemID); idx >= 0 {
		return c.lines[idx].Quantity
	}
	return 0
}

// Subtotal is recomputed from the lines on every call.
func (c *Cart) Subtotal() money.Amount {
	var total money.Amount
	for _, line := range c.lines {
		total += line.Total()
	}
	return total
}

// Lines returns a copy of the lines.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) index(itemID string) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.ItemID == itemID })
}
