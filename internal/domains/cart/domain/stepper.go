package domain

// MaxQuantity caps a single line.
const MaxQuantity = 99

// Event is what a quantity change means for the cart.
type Event string

const (
	EventNone    Event = ""
	EventAdded   Event = "added"
	EventRemoved Event = "removed"
)

// SetQuantity clamps requested to [0, MaxQuantity] and reports whether the
// change put the item into the cart or took it out.
func SetQuantity(current, requested int) (int, Event) {
	next := max(0, min(requested, MaxQuantity))
	switch {
	case next > current && current == 0:
		return next, EventAdded
	case next < current && next == 0:
		return next, EventRemoved
	default:
		return next, EventNone
	}
}
