package domain

import (
	"errors"
	"slices"
	"strings"
	"time"
)

// Status is one stage of an order's delivery progression.
type Status string

const (
	StatusOrderPlaced    Status = "ORDER_PLACED"
	StatusPreparing      Status = "PREPARING"
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	StatusDelivered      Status = "DELIVERED"
)

var ErrInvalidStatus = errors.New("unknown order status")

var stages = []Status{StatusOrderPlaced, StatusPreparing, StatusOutForDelivery, StatusDelivered}

var stageText = map[Status][2]string{
	StatusOrderPlaced:    {"Order Placed", "We have received your order."},
	StatusPreparing:      {"Preparing", "The restaurant is preparing your food."},
	StatusOutForDelivery: {"Out for Delivery", "Your order is on its way."},
	StatusDelivered:      {"Delivered", "Enjoy your meal!"},
}

// Stages returns the fixed progression, first to last.
func Stages() []Status {
	return slices.Clone(stages)
}

// ParseStatus accepts the wire names case-insensitively.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Index is the position in Stages, or -1 for an unknown status.
func (s Status) Index() int {
	return slices.Index(stages, s)
}

func (s Status) Valid() bool {
	return s.Index() >= 0
}

// Next returns the following stage; false at the terminal stage.
func (s Status) Next() (Status, bool) {
	i := s.Index()
	if i < 0 || i == len(stages)-1 {
		return s, false
	}
	return stages[i+1], true
}

func (s Status) Terminal() bool {
	return s == stages[len(stages)-1]
}

// Before reports whether s comes earlier in the progression than other.
func (s Status) Before(other Status) bool {
	return s.Index() < other.Index()
}

func (s Status) Title() string {
	return stageText[s][0]
}

func (s Status) Description() string {
	return stageText[s][1]
}

// Progress is what a tracker renders: the current stage and how far along it is.
type Progress struct {
	Status   Status   `json:"status"`
	Index    int      `json:"index"`
	Stages   []Status `json:"stages"`
	Fraction float64  `json:"fraction"`
}

// ProgressOf computes the fraction as index / (stage count - 1).
func ProgressOf(s Status) Progress {
	i := max(s.Index(), 0)
	return Progress{
		Status:   stages[i],
		Index:    i,
		Stages:   Stages(),
		Fraction: float64(i) / float64(len(stages)-1),
	}
}

// Done reports whether the order reached the terminal stage.
func (p Progress) Done() bool {
	return p.Status.Terminal()
}

// StatusChange is emitted once per transition.
type StatusChange struct {
	OrderID    string    `json:"orderId"`
	Progress   Progress  `json:"progress"`
	OccurredAt time.Time `json:"occurredAt"`
}
