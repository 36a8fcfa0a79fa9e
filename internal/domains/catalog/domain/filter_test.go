package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleCatalog() []Restaurant {
	return []Restaurant{
		{ID: 1, Name: "The Golden Spoon", Cuisines: []string{"Italian", "Pizza"}, Rating: 4.5, DeliveryMinutes: 25},
		{ID: 2, Name: "Sushi Palace", Cuisines: []string{"Japanese", "Sushi"}, Rating: 4.8, DeliveryMinutes: 30},
		{ID: 3, Name: "Taco Fiesta", Cuisines: []string{"Mexican", "Tacos"}, Rating: 4.3, DeliveryMinutes: 20},
		{ID: 5, Name: "The Burger Joint", Cuisines: []string{"American", "Burgers"}, Rating: 4.2, DeliveryMinutes: 25},
	}
}

func ids(list []Restaurant) []int64 {
	out := make([]int64, 0, len(list))
	for _, r := range list {
		out = append(out, r.ID)
	}
	return out
}

func TestApply_DefaultSelectionIsIdentity(t *testing.T) {
	catalog := sampleCatalog()
	result := Apply(DefaultFilterSelection(), catalog)
	require.Equal(t, ids(catalog), ids(result))
}

func TestApply_CuisineFilter(t *testing.T) {
	catalog := []Restaurant{
		{ID: 1, Name: "Trattoria", Cuisines: []string{"Italian"}},
		{ID: 2, Name: "Sushi Bar", Cuisines: []string{"Japanese"}},
	}
	selection, err := NewFilterSelection([]string{"Japanese"}, DefaultPriceCeiling, "recommended", 0)
	require.NoError(t, err)

	result := Apply(selection, catalog)
	require.Equal(t, []int64{2}, ids(result))
}

func TestApply_CuisinesAreOred(t *testing.T) {
	selection, err := NewFilterSelection([]string{"Mexican", "Italian"}, DefaultPriceCeiling, "", 0)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3}, ids(Apply(selection, sampleCatalog())))
}

func TestApply_MinRating(t *testing.T) {
	selection, err := NewFilterSelection(nil, DefaultPriceCeiling, "", 4.5)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, ids(Apply(selection, sampleCatalog())))
}

func TestApply_SortByRatingDescending(t *testing.T) {
	catalog := []Restaurant{
		{ID: 1, Name: "a", Rating: 4.2},
		{ID: 2, Name: "b", Rating: 4.8},
		{ID: 3, Name: "c", Rating: 4.3},
	}
	selection, err := NewFilterSelection(nil, DefaultPriceCeiling, "rating", 0)
	require.NoError(t, err)

	result := Apply(selection, catalog)
	ratings := []float64{result[0].Rating, result[1].Rating, result[2].Rating}
	require.Equal(t, []float64{4.8, 4.3, 4.2}, ratings)
	require.Equal(t, 4.2, catalog[0].Rating, "catalog must not be reordered")
}

func TestApply_SortByDeliveryTimeIsStable(t *testing.T) {
	selection, err := NewFilterSelection(nil, DefaultPriceCeiling, "delivery_time", 0)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 5, 2}, ids(Apply(selection, sampleCatalog())))
}

func TestApply_PriceCeilingIsInert(t *testing.T) {
	selection, err := NewFilterSelection(nil, 0, "", 0)
	require.NoError(t, err)
	require.Len(t, Apply(selection, sampleCatalog()), 4)
}

func TestNewFilterSelection_RejectsOutOfRange(t *testing.T) {
	_, err := NewFilterSelection(nil, DefaultPriceCeiling, "cheapest", 0)
	require.ErrorIs(t, err, ErrInvalidSortKey)

	_, err = NewFilterSelection(nil, DefaultPriceCeiling, "", 5.5)
	require.ErrorIs(t, err, ErrInvalidMinRating)

	_, err = NewFilterSelection(nil, 101, "", 0)
	require.ErrorIs(t, err, ErrInvalidPriceCeiling)
}

func TestNewFilterSelection_RejectsNaNRating(t *testing.T) {
	_, err := NewFilterSelection(nil, DefaultPriceCeiling, "", math.NaN())
	require.ErrorIs(t, err, ErrInvalidMinRating)
}

func TestNewFilterSelection_DeduplicatesCuisines(t *testing.T) {
	selection, err := NewFilterSelection([]string{" Thai", "Thai", ""}, DefaultPriceCeiling, "", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"Thai"}, selection.Cuisines)
	require.True(t, selection.HasCuisine("Thai"))
}
