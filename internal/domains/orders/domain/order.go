package domain

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/Apurer/delish-express/internal/shared/money"
)

var (
	ErrEmptyID          = errors.New("order id is required")
	ErrNoLines          = errors.New("order must contain at least one line")
	ErrInvalidLine      = errors.New("order line needs an item id and a positive quantity")
	ErrStatusRegression = errors.New("order status cannot move backwards")
)

// Line is a priced snapshot of a cart line at the time the order was placed.
type Line struct {
	ItemID    string
	Name      string
	UnitPrice money.Amount
	Quantity  int
}

func (l Line) Total() money.Amount {
	return l.UnitPrice.Times(l.Quantity)
}

// DeliveryDetails is the validated checkout payload.
type DeliveryDetails struct {
	Name          string
	Address       string
	City          string
	PostalCode    string
	PaymentMethod string
}

// Summary is the money breakdown shown on checkout and on the order.
type Summary struct {
	Subtotal    money.Amount
	DeliveryFee money.Amount
	Total       money.Amount
}

// Summarize totals the lines and adds the delivery fee.
func Summarize(lines []Line, deliveryFee money.Amount) Summary {
	var subtotal money.Amount
	for _, l := range lines {
		subtotal += l.Total()
	}
	return Summary{Subtotal: subtotal, DeliveryFee: deliveryFee, Total: subtotal + deliveryFee}
}

// Order is a placed order.
type Order struct {
	ID                string
	Restaurant        string
	Lines             []Line
	Summary           Summary
	Delivery          DeliveryDetails
	PlacedAt          time.Time
	EstimatedDelivery time.Time
	Status            Status
}

// NewOrder prices the lines and starts the order at the first stage.
func NewOrder(id string, lines []Line, deliveryFee money.Amount, delivery DeliveryDetails, placedAt time.Time, eta time.Duration) (*Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	for _, l := range lines {
		if strings.TrimSpace(l.ItemID) == "" || l.Quantity < 1 || l.UnitPrice < 0 {
			return nil, ErrInvalidLine
		}
	}
	return &Order{
		ID:                id,
		Lines:             slices.Clone(lines),
		Summary:           Summarize(lines, deliveryFee),
		Delivery:          delivery,
		PlacedAt:          placedAt,
		EstimatedDelivery: placedAt.Add(eta),
		Status:            StatusOrderPlaced,
	}, nil
}

// UpdateStatus moves the order forward. Repeating the current status is allowed.
func (o *Order) UpdateStatus(status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if status.Before(o.Status) {
		return ErrStatusRegression
	}
	o.Status = status
	return nil
}

func (o *Order) Progress() Progress {
	return ProgressOf(o.Status)
}

// ItemCount is the number of units ordered.
func (o *Order) ItemCount() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}

// Clone returns a deep copy.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.Lines = slices.Clone(o.Lines)
	return &c
}
