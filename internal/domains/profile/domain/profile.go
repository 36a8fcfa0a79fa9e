package domain

import (
	"time"

	"github.com/Apurer/delish-express/internal/shared/money"
)

// Account is the signed-in customer's contact details.
type Account struct {
	Name  string
	Email string
	Phone string
}

// SavedAddress is a delivery address kept on the account.
type SavedAddress struct {
	ID        int64
	Label     string
	Address   string
	IsDefault bool
}

// SavedCard is a payment card kept on the account. Only the last four digits are stored.
type SavedCard struct {
	ID        int64
	Brand     string
	Last4     string
	Expiry    string
	IsDefault bool
}

// PastOrder is one row of the order history.
type PastOrder struct {
	ID         string
	Date       time.Time
	Restaurant string
	Total      money.Amount
	Status     string
}

// Overview is everything the account page shows.
type Overview struct {
	Account   Account
	Addresses []SavedAddress
	Cards     []SavedCard
	Orders    []PastOrder
}
