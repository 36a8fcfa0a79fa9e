package mapper

import (
	"github.com/Apurer/delish-express/internal/domains/profile/domain"
)

type Account struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SavedAddress struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Address   string `json:"address"`
	IsDefault bool   `json:"isDefault"`
}

type SavedCard struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Last4     string `json:"last4"`
	Expiry    string `json:"expiry"`
	IsDefault bool   `json:"isDefault"`
}

type PastOrder struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Restaurant string `json:"restaurant"`
	Total      string `json:"total"`
	Status     string `json:"status"`
}

// Profile is the account page payload.
type Profile struct {
	Account   Account        `json:"profile"`
	Addresses []SavedAddress `json:"addresses"`
	Cards     []SavedCard    `json:"paymentMethods"`
	Orders    []PastOrder    `json:"orderHistory"`
}

func FromOverview(o *domain.Overview) Profile {
	if o == nil {
		return Profile{}
	}
	out := Profile{
		Account:   Account{Name: o.Account.Name, Email: o.Account.Email, Phone: o.Account.Phone},
		Addresses: make([]SavedAddress, 0, len(o.Addresses)),
		Cards:     make([]SavedCard, 0, len(o.Cards)),
		Orders:    make([]PastOrder, 0, len(o.Orders)),
	}
	for _, a := range o.Addresses {
		out.Addresses = append(out.Addresses, SavedAddress{ID: a.ID, Type: a.Label, Address: a.Address, IsDefault: a.IsDefault})
	}
	for _, c := range o.Cards {
		out.Cards = append(out.Cards, SavedCard{ID: c.ID, Type: c.Brand, Last4: c.Last4, Expiry: c.Expiry, IsDefault: c.IsDefault})
	}
	for _, p := range o.Orders {
		out.Orders = append(out.Orders, PastOrder{
			ID:         p.ID,
			Date:       p.Date.Format("2006-01-02"),
			Restaurant: p.Restaurant,
			Total:      p.Total.String(),
			Status:     p.Status,
		})
	}
	return out
}
