package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	catalogmapper "github.com/Apurer/delish-express/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/Apurer/delish-express/internal/domains/catalog/application"
	catalogdomain "github.com/Apurer/delish-express/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/delish-express/internal/domains/catalog/ports"
)

// RestaurantsAPI serves restaurant discovery: the filtered listing, menus and search.
type RestaurantsAPI struct {
	catalog catalogports.Service
	session *Session
}

func NewRestaurantsAPI(catalog catalogports.Service, session *Session) RestaurantsAPI {
	return RestaurantsAPI{catalog: catalog, session: session}
}

// ListRestaurantsParams are the optional query facets of GET /api/restaurants.
type ListRestaurantsParams struct {
	Cuisine   *[]string `form:"cuisine"`
	MaxPrice  *int      `form:"maxPrice"`
	SortBy    *string   `form:"sortBy"`
	MinRating *float64  `form:"minRating"`
}

// Get /api/restaurants
// Lists restaurants under the applied filters, or under the facets given in
// the query string without changing the applied ones.
func (api *RestaurantsAPI) ListRestaurants(c *gin.Context) {
	query := c.Request.URL.Query()
	if len(query) == 0 {
		selection, results := api.session.Listing()
		c.JSON(http.StatusOK, catalogmapper.Listing{
			Filters:     catalogmapper.FromSelection(selection),
			Restaurants: catalogmapper.FromRestaurants(results),
		})
		return
	}

	var params ListRestaurantsParams
	if err := runtime.BindQueryParameter("form", true, false, "cuisine", query, &params.Cuisine); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "maxPrice", query, &params.MaxPrice); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "sortBy", query, &params.SortBy); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "minRating", query, &params.MinRating); err != nil {
		respondBadRequest(c, err)
		return
	}

	selection, err := params.selection()
	if err != nil {
		respondError(c, err)
		return
	}
	results, err := api.catalog.ListRestaurants(c.Request.Context(), selection)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.Listing{
		Filters:     catalogmapper.FromSelection(selection),
		Restaurants: catalogmapper.FromRestaurants(results),
	})
}

func (p ListRestaurantsParams) selection() (catalogdomain.FilterSelection, error) {
	defaults := catalogdomain.DefaultFilterSelection()
	ceiling := defaults.PriceCeiling
	if p.MaxPrice != nil {
		ceiling = *p.MaxPrice
	}
	sortKey := string(defaults.SortKey)
	if p.SortBy != nil {
		sortKey = *p.SortBy
	}
	minRating := defaults.MinRating
	if p.MinRating != nil {
		minRating = *p.MinRating
	}
	var cuisines []string
	if p.Cuisine != nil {
		cuisines = *p.Cuisine
	}
	return catalogapp.ParseSelection(cuisines, ceiling, sortKey, minRating)
}

// Post /api/restaurants/filters
// Applies a filter selection and records it as the session's listing.
func (api *RestaurantsAPI) ApplyFilters(c *gin.Context) {
	state := catalogmapper.FromSelection(catalogdomain.DefaultFilterSelection())
	if err := c.ShouldBindJSON(&state); err != nil {
		respondBadRequest(c, err)
		return
	}
	listing, err := api.apply(c, state)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (api *RestaurantsAPI) apply(c *gin.Context, state catalogmapper.FilterState) (catalogmapper.Listing, error) {
	selection, err := catalogapp.ParseSelection(state.Cuisines, state.PriceRange[1], state.SortBy, state.MinRating)
	if err != nil {
		return catalogmapper.Listing{}, err
	}
	results, err := api.catalog.ListRestaurants(c.Request.Context(), selection)
	if err != nil {
		return catalogmapper.Listing{}, err
	}
	api.session.SetListing(selection, results)
	return catalogmapper.Listing{
		Filters:     catalogmapper.FromSelection(selection),
		Restaurants: catalogmapper.FromRestaurants(results),
	}, nil
}

// Delete /api/restaurants/filters
// Restores the default selection and the full catalog.
func (api *RestaurantsAPI) ClearFilters(c *gin.Context) {
	listing, err := api.clear(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (api *RestaurantsAPI) clear(c *gin.Context) (catalogmapper.Listing, error) {
	return api.apply(c, catalogmapper.FromSelection(catalogdomain.DefaultFilterSelection()))
}

// Get /api/restaurants/filters/options
func (api *RestaurantsAPI) FilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, catalogmapper.DefaultFilterOptions())
}

// Get /api/restaurants/:restaurantId/menu
func (api *RestaurantsAPI) GetMenu(c *gin.Context) {
	id, ok := parseIDParam(c, "restaurantId")
	if !ok {
		return
	}
	menu, err := api.menu(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

func (api *RestaurantsAPI) menu(c *gin.Context, id int64) (catalogmapper.RestaurantMenu, error) {
	ctx := c.Request.Context()
	profile, err := api.catalog.GetProfile(ctx, id)
	if err != nil {
		return catalogmapper.RestaurantMenu{}, err
	}
	menu, err := api.catalog.GetMenu(ctx, id)
	if err != nil {
		return catalogmapper.RestaurantMenu{}, err
	}
	return catalogmapper.FromMenu(*profile, *menu), nil
}

// Get /api/search
func (api *RestaurantsAPI) Search(c *gin.Context) {
	result, err := api.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromSearchResult(*result))
}
