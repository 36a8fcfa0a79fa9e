package mapper

import (
	"time"

	"github.com/Apurer/delish-express/internal/domains/orders/domain"
)

// Stage is one step of the tracker.
type Stage struct {
	Status      string `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Current     bool   `json:"current"`
}

// Progress is the tracker payload.
type Progress struct {
	OrderID  string  `json:"orderId"`
	Status   string  `json:"status"`
	Index    int     `json:"index"`
	Fraction float64 `json:"fraction"`
	Percent  int     `json:"percent"`
	Done     bool    `json:"done"`
	Stages   []Stage `json:"stages"`
}

// OrderLine is a priced line of a placed order.
type OrderLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Summary is the money breakdown.
type Summary struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// Order is the HTTP representation of a placed order.
type Order struct {
	ID                string      `json:"id"`
	Restaurant        string      `json:"restaurant,omitempty"`
	Items             []OrderLine `json:"items"`
	Summary           Summary     `json:"summary"`
	DeliveryAddress   string      `json:"deliveryAddress"`
	PlacedAt          time.Time   `json:"placedAt"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
	Status            string      `json:"status"`
}

func FromProgress(orderID string, p domain.Progress) Progress {
	out := Progress{
		OrderID:  orderID,
		Status:   string(p.Status),
		Index:    p.Index,
		Fraction: p.Fraction,
		Percent:  int(p.Fraction*100 + 0.5),
		Done:     p.Done(),
		Stages:   make([]Stage, 0, len(p.Stages)),
	}
	for i, s := range p.Stages {
		out.Stages = append(out.Stages, Stage{
			Status:      string(s),
			Title:       s.Title(),
			Description: s.Description(),
			Completed:   i <= p.Index,
			Current:     i == p.Index,
		})
	}
	return out
}

func FromSummary(s domain.Summary) Summary {
	return Summary{
		Subtotal:    s.Subtotal.Float(),
		DeliveryFee: s.DeliveryFee.Float(),
		Total:       s.Total.Float(),
	}
}

func FromOrder(o *domain.Order) Order {
	if o == nil {
		return Order{}
	}
	out := Order{
		ID:                o.ID,
		Restaurant:        o.Restaurant,
		Items:             make([]OrderLine, 0, len(o.Lines)),
		Summary:           FromSummary(o.Summary),
		DeliveryAddress:   DeliveryAddress(o.Delivery),
		PlacedAt:          o.PlacedAt,
		EstimatedDelivery: o.EstimatedDelivery,
		Status:            string(o.Status),
	}
	for _, l := range o.Lines {
		out.Items = append(out.Items, OrderLine{ID: l.ItemID, Name: l.Name, Price: l.UnitPrice.Float(), Quantity: l.Quantity})
	}
	return out
}

// DeliveryAddress formats the address as one line.
func DeliveryAddress(d domain.DeliveryDetails) string {
	switch {
	case d.Address == "":
		return ""
	case d.City == "":
		return d.Address
	default:
		return d.Address + ", " + d.City + " " + d.PostalCode
	}
}
