// Package money represents prices as integer cents so sums never drift.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Amount is a non-negative price in cents.
type Amount int64

var ErrNegative = errors.New("amount must not be negative")

// FromFloat converts a decimal dollar value, rounding to the nearest cent.
func FromFloat(v float64) (Amount, error) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNegative
	}
	return Amount(math.Round(v * 100)), nil
}

// MustFromFloat is FromFloat for seed data known to be valid.
func MustFromFloat(v float64) Amount {
	a, err := FromFloat(v)
	if err != nil {
		panic(fmt.Sprintf("money: invalid amount %v: %v", v, err))
	}
	return a
}

// Cents returns the raw value.
func (a Amount) Cents() int64 { return int64(a) }

// Times multiplies the amount by a quantity.
func (a Amount) Times(quantity int) Amount { return a * Amount(quantity) }

// Float returns the dollar value.
func (a Amount) Float() float64 { return float64(a) / 100 }

// Decimal formats the amount with two fraction digits, e.g. "30.48".
func (a Amount) Decimal() string { return strconv.FormatFloat(a.Float(), 'f', 2, 64) }

// String formats the amount for display, e.g. "$30.48".
func (a Amount) String() string { return "$" + a.Decimal() }

// MarshalJSON encodes the amount as a JSON number in dollars.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal()), nil
}

// UnmarshalJSON accepts a JSON number in dollars.
func (a *Amount) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	parsed, err := FromFloat(v)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
