package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/delish-express/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals a filter selection or lookup violated a catalog invariant.
	ErrInvalidInput = errors.New("invalid catalog input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidSortKey) ||
		errors.Is(err, domain.ErrInvalidMinRating) ||
		errors.Is(err, domain.ErrInvalidPriceCeiling) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

// ParseSelection builds a filter selection from raw facet values.
func ParseSelection(cuisines []string, priceCeiling int, sortKey string, minRating float64) (domain.FilterSelection, error) {
	selection, err := domain.NewFilterSelection(cuisines, priceCeiling, sortKey, minRating)
	if err != nil {
		return domain.FilterSelection{}, mapError(err)
	}
	return selection, nil
}
