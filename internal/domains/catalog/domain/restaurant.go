package domain

import (
	"errors"
	"slices"
	"strings"

	"github.com/Apurer/delish-express/internal/shared/money"
)

const MaxRating = 5.0

var (
	ErrEmptyName       = errors.New("restaurant name is required")
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")
	ErrInvalidDelivery = errors.New("delivery minutes must be greater or equal to zero")
	ErrEmptyItemID     = errors.New("menu item id is required")
	ErrEmptyItemName   = errors.New("menu item name is required")
	ErrEmptyCategory   = errors.New("menu category title is required")
)

// Restaurant is a read-only catalog entry shown on the discovery page.
type Restaurant struct {
	ID              int64
	Name            string
	ImageURL        string
	Cuisines        []string
	Rating          float64
	DeliveryMinutes int
}

// NewRestaurant validates the catalog invariants.
func NewRestaurant(id int64, name, imageURL string, cuisines []string, rating float64, deliveryMinutes int) (*Restaurant, error) {
	r := &Restaurant{
		ID:              id,
		Name:            name,
		ImageURL:        imageURL,
		Cuisines:        slices.Clone(cuisines),
		Rating:          rating,
		DeliveryMinutes: deliveryMinutes,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate enforces the restaurant invariants.
func (r Restaurant) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if r.Rating < 0 || r.Rating > MaxRating {
		return ErrInvalidRating
	}
	if r.DeliveryMinutes < 0 {
		return ErrInvalidDelivery
	}
	return nil
}

// ServesAny reports whether any of the cuisines is tagged on the restaurant.
func (r Restaurant) ServesAny(cuisines []string) bool {
	for _, c := range cuisines {
		if slices.Contains(r.Cuisines, c) {
			return true
		}
	}
	return false
}

// Profile extends a restaurant with the header shown on its menu page.
type Profile struct {
	Restaurant
	Description string
	Address     string
	Hours       string
	Tags        []string
}

// MenuItem is an immutable dish in a restaurant menu.
type MenuItem struct {
	ID           string
	RestaurantID int64
	Name         string
	Description  string
	UnitPrice    money.Amount
	ImageURL     string
}

// Validate enforces the menu item invariants.
func (m MenuItem) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return ErrEmptyItemID
	}
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyItemName
	}
	if m.UnitPrice < 0 {
		return money.ErrNegative
	}
	return nil
}

// MenuCategory groups items under a heading such as "Appetizers".
type MenuCategory struct {
	Title string
	Items []MenuItem
}

// Menu lists the categories a restaurant serves, in display order.
type Menu struct {
	RestaurantID int64
	Categories   []MenuCategory
}

// FindItem looks an item up by id.
func (m Menu) FindItem(id string) (MenuItem, bool) {
	for _, category := range m.Categories {
		for _, item := range category.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

// Validate checks every category and item.
func (m Menu) Validate() error {
	for _, category := range m.Categories {
		if strings.TrimSpace(category.Title) == "" {
			return ErrEmptyCategory
		}
		for _, item := range category.Items {
			if err := item.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Listing is the seed shape of one restaurant: its profile plus its menu.
type Listing struct {
	Profile Profile
	Menu    Menu
}

// SearchResult holds the restaurants and dishes matching a header search.
type SearchResult struct {
	Term        string
	Restaurants []Restaurant
	Dishes      []MenuItem
}
