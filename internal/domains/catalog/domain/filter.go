package domain

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strings"
)

// SortKey orders the discovery results.
type SortKey string

const (
	SortRecommended  SortKey = "recommended"
	SortDeliveryTime SortKey = "delivery_time"
	SortRating       SortKey = "rating"
)

const (
	DefaultPriceCeiling = 50
	MaxPriceCeiling     = 100
)

var (
	ErrInvalidSortKey      = errors.New("sort key must be one of recommended, delivery_time, rating")
	ErrInvalidMinRating    = errors.New("minimum rating must be between 0 and 5")
	ErrInvalidPriceCeiling = errors.New("price ceiling must be between 0 and 100")
)

// ParseSortKey accepts the wire names; empty means recommended.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(strings.TrimSpace(raw)) {
	case "", SortRecommended:
		return SortRecommended, nil
	case SortDeliveryTime:
		return SortDeliveryTime, nil
	case SortRating:
		return SortRating, nil
	default:
		return "", ErrInvalidSortKey
	}
}

// FilterSelection is the set of facets applied to the restaurant catalog.
// PriceCeiling is carried for the filter controls but does not narrow the
// results: restaurants have no price attribute.
type FilterSelection struct {
	Cuisines     []string
	PriceCeiling int
	SortKey      SortKey
	MinRating    float64
}

// NewFilterSelection validates the facets. Cuisines are trimmed and deduplicated.
func NewFilterSelection(cuisines []string, priceCeiling int, sortKey string, minRating float64) (FilterSelection, error) {
	key, err := ParseSortKey(sortKey)
	if err != nil {
		return FilterSelection{}, err
	}
	if math.IsNaN(minRating) || minRating < 0 || minRating > MaxRating {
		return FilterSelection{}, ErrInvalidMinRating
	}
	if priceCeiling < 0 || priceCeiling > MaxPriceCeiling {
		return FilterSelection{}, ErrInvalidPriceCeiling
	}
	selected := make([]string, 0, len(cuisines))
	for _, c := range cuisines {
		c = strings.TrimSpace(c)
		if c == "" || slices.Contains(selected, c) {
			continue
		}
		selected = append(selected, c)
	}
	return FilterSelection{
		Cuisines:     selected,
		PriceCeiling: priceCeiling,
		SortKey:      key,
		MinRating:    minRating,
	}, nil
}

// DefaultFilterSelection is what "clear filters" hands back.
func DefaultFilterSelection() FilterSelection {
	return FilterSelection{
		Cuisines:     []string{},
		PriceCeiling: DefaultPriceCeiling,
		SortKey:      SortRecommended,
	}
}

// HasCuisine reports whether the cuisine checkbox is ticked.
func (f FilterSelection) HasCuisine(cuisine string) bool {
	return slices.Contains(f.Cuisines, cuisine)
}

// Apply narrows and orders the catalog. The catalog slice is never mutated.
func Apply(selection FilterSelection, catalog []Restaurant) []Restaurant {
	result := make([]Restaurant, 0, len(catalog))
	for _, r := range catalog {
		if len(selection.Cuisines) > 0 && !r.ServesAny(selection.Cuisines) {
			continue
		}
		if selection.MinRating > 0 && r.Rating < selection.MinRating {
			continue
		}
		result = append(result, r)
	}
	switch selection.SortKey {
	case SortDeliveryTime:
		slices.SortStableFunc(result, func(a, b Restaurant) int {
			return cmp.Compare(a.DeliveryMinutes, b.DeliveryMinutes)
		})
	case SortRating:
		slices.SortStableFunc(result, func(a, b Restaurant) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}
	return result
}

// CuisineOptions are the checkboxes offered by the filter controls.
func CuisineOptions() []string {
	return []string{"Italian", "Mexican", "Japanese", "Chinese", "Indian", "American", "Thai"}
}

// SortOption pairs a sort key with its label.
type SortOption struct {
	Key   SortKey
	Label string
}

func SortOptions() []SortOption {
	return []SortOption{
		{Key: SortRecommended, Label: "Recommended"},
		{Key: SortDeliveryTime, Label: "Delivery Time"},
		{Key: SortRating, Label: "Rating"},
	}
}

// RatingOption is one "N stars & up" radio button; 0 means any rating.
type RatingOption struct {
	MinRating float64
	Label     string
}

func RatingOptions() []RatingOption {
	return []RatingOption{
		{MinRating: 4, Label: "4 stars & up"},
		{MinRating: 3, Label: "3 stars & up"},
		{MinRating: 0, Label: "Any"},
	}
}
