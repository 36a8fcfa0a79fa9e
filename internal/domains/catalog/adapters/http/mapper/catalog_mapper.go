package mapper

import (
	"github.com/Apurer/delish-express/internal/domains/catalog/domain"
)

// Restaurant is the HTTP representation of a restaurant card.
type Restaurant struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	ImageURL     string   `json:"imageUrl"`
	Cuisine      []string `json:"cuisine"`
	Rating       float64  `json:"rating"`
	DeliveryTime int      `json:"deliveryTime"`
}

// RestaurantProfile is the menu page header.
type RestaurantProfile struct {
	Restaurant
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Hours       string   `json:"hours"`
	Tags        []string `json:"tags"`
}

// FilterState mirrors the filter panel controls. PriceRange is [0, ceiling].
type FilterState struct {
	Cuisines   []string `json:"cuisines"`
	PriceRange [2]int   `json:"priceRange"`
	SortBy     string   `json:"sortBy"`
	MinRating  float64  `json:"minRating"`
}

// MenuItem is the HTTP representation of a dish.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// MenuCategory groups dishes under a title.
type MenuCategory struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

// RestaurantMenu is the menu page payload.
type RestaurantMenu struct {
	Restaurant RestaurantProfile `json:"restaurant"`
	Categories []MenuCategory    `json:"categories"`
}

// FilterOptions lists the choices offered by the filter panel.
type FilterOptions struct {
	Cuisines []string       `json:"cuisines"`
	Sort     []LabeledValue `json:"sort"`
	Rating   []LabeledValue `json:"rating"`
}

// LabeledValue is one option of a select control.
type LabeledValue struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

// Listing is the home page payload: the applied selection and its results.
type Listing struct {
	Filters     FilterState  `json:"filters"`
	Restaurants []Restaurant `json:"restaurants"`
}

// SearchResult is the search page payload.
type SearchResult struct {
	Term        string       `json:"term"`
	Restaurants []Restaurant `json:"restaurants"`
	Dishes      []MenuItem   `json:"dishes"`
}

func FromRestaurant(r domain.Restaurant) Restaurant {
	cuisines := r.Cuisines
	if cuisines == nil {
		cuisines = []string{}
	}
	return Restaurant{
		ID:           r.ID,
		Name:         r.Name,
		ImageURL:     r.ImageURL,
		Cuisine:      cuisines,
		Rating:       r.Rating,
		DeliveryTime: r.DeliveryMinutes,
	}
}

func FromRestaurants(list []domain.Restaurant) []Restaurant {
	out := make([]Restaurant, 0, len(list))
	for _, r := range list {
		out = append(out, FromRestaurant(r))
	}
	return out
}

func FromProfile(p domain.Profile) RestaurantProfile {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return RestaurantProfile{
		Restaurant:  FromRestaurant(p.Restaurant),
		Description: p.Description,
		Address:     p.Address,
		Hours:       p.Hours,
		Tags:        tags,
	}
}

func FromMenuItem(item domain.MenuItem) MenuItem {
	return MenuItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.UnitPrice.Float(),
		ImageURL:    item.ImageURL,
	}
}

func FromMenuItems(items []domain.MenuItem) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, FromMenuItem(item))
	}
	return out
}

func FromMenu(profile domain.Profile, menu domain.Menu) RestaurantMenu {
	out := RestaurantMenu{
		Restaurant: FromProfile(profile),
		Categories: make([]MenuCategory, 0, len(menu.Categories)),
	}
	for _, category := range menu.Categories {
		out.Categories = append(out.Categories, MenuCategory{
			Title: category.Title,
			Items: FromMenuItems(category.Items),
		})
	}
	return out
}

func FromSelection(selection domain.FilterSelection) FilterState {
	cuisines := selection.Cuisines
	if cuisines == nil {
		cuisines = []string{}
	}
	return FilterState{
		Cuisines:   cuisines,
		PriceRange: [2]int{0, selection.PriceCeiling},
		SortBy:     string(selection.SortKey),
		MinRating:  selection.MinRating,
	}
}

func FromSearchResult(result domain.SearchResult) SearchResult {
	return SearchResult{
		Term:        result.Term,
		Restaurants: FromRestaurants(result.Restaurants),
		Dishes:      FromMenuItems(result.Dishes),
	}
}

func DefaultFilterOptions() FilterOptions {
	opts := FilterOptions{Cuisines: domain.CuisineOptions()}
	for _, o := range domain.SortOptions() {
		opts.Sort = append(opts.Sort, LabeledValue{Value: string(o.Key), Label: o.Label})
	}
	for _, o := range domain.RatingOptions() {
		opts.Rating = append(opts.Rating, LabeledValue{Value: o.MinRating, Label: o.Label})
	}
	return opts
}
