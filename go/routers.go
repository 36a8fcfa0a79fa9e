package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the storefront routes to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	if handleFunctions.Pages.templates != nil {
		router.SetHTMLTemplate(handleFunctions.Pages.templates)
	}
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc answers routes that have no handler wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// ApiHandleFunctions groups the handlers of every API.
type ApiHandleFunctions struct {
	RestaurantsAPI RestaurantsAPI
	CartAPI        CartAPI
	CheckoutAPI    CheckoutAPI
	OrdersAPI      OrdersAPI
	ProfileAPI     ProfileAPI
	Pages          Pages
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"Health", http.MethodGet, "/health", Health},

		{"ListRestaurants", http.MethodGet, "/api/restaurants", handleFunctions.RestaurantsAPI.ListRestaurants},
		{"ApplyFilters", http.MethodPost, "/api/restaurants/filters", handleFunctions.RestaurantsAPI.ApplyFilters},
		{"ClearFilters", http.MethodDelete, "/api/restaurants/filters", handleFunctions.RestaurantsAPI.ClearFilters},
		{"FilterOptions", http.MethodGet, "/api/restaurants/filters/options", handleFunctions.RestaurantsAPI.FilterOptions},
		{"GetMenu", http.MethodGet, "/api/restaurants/:restaurantId/menu", handleFunctions.RestaurantsAPI.GetMenu},
		{"Search", http.MethodGet, "/api/search", handleFunctions.RestaurantsAPI.Search},

		{"GetCart", http.MethodGet, "/api/cart", handleFunctions.CartAPI.GetCart},
		{"SetItemQuantity", http.MethodPut, "/api/cart/items/:itemId", handleFunctions.CartAPI.SetItemQuantity},
		{"ChangeLineQuantity", http.MethodPatch, "/api/cart/items/:itemId", handleFunctions.CartAPI.ChangeLineQuantity},
		{"RemoveLine", http.MethodDelete, "/api/cart/items/:itemId", handleFunctions.CartAPI.RemoveLine},

		{"GetCheckout", http.MethodGet, "/api/checkout", handleFunctions.CheckoutAPI.GetCheckout},
		{"ValidateCheckout", http.MethodPost, "/api/checkout/validate", handleFunctions.CheckoutAPI.ValidateForm},
		{"ValidateCheckoutField", http.MethodPost, "/api/checkout/validate/field", handleFunctions.CheckoutAPI.ValidateField},
		{"SubmitCheckout", http.MethodPost, "/api/checkout", handleFunctions.CheckoutAPI.Submit},

		{"ListOrders", http.MethodGet, "/api/orders", handleFunctions.OrdersAPI.ListOrders},
		{"GetOrder", http.MethodGet, "/api/orders/:orderId", handleFunctions.OrdersAPI.GetOrder},
		{"GetTracking", http.MethodGet, "/api/orders/:orderId/tracking", handleFunctions.OrdersAPI.GetTracking},
		{"StopTracking", http.MethodDelete, "/api/orders/:orderId/tracking", handleFunctions.OrdersAPI.StopTracking},

		{"GetProfile", http.MethodGet, "/api/profile", handleFunctions.ProfileAPI.GetProfile},
		{"DrainNotices", http.MethodGet, "/api/notices", handleFunctions.ProfileAPI.DrainNotices},

		{"HomePage", http.MethodGet, "/", handleFunctions.Pages.Home},
		{"ApplyFiltersForm", http.MethodPost, "/filters", handleFunctions.Pages.ApplyFilters},
		{"ClearFiltersForm", http.MethodPost, "/filters/clear", handleFunctions.Pages.ClearFilters},
		{"SearchPage", http.MethodGet, "/search", handleFunctions.Pages.Search},
		{"MenuPage", http.MethodGet, "/restaurants/:restaurantId/menu", handleFunctions.Pages.Menu},
		{"SetItemQuantityForm", http.MethodPost, "/cart/items/:itemId", handleFunctions.Pages.SetItemQuantity},
		{"StepLineForm", http.MethodPost, "/cart/items/:itemId/step", handleFunctions.Pages.StepLine},
		{"RemoveLineForm", http.MethodPost, "/cart/items/:itemId/remove", handleFunctions.Pages.RemoveLine},
		{"CheckoutPage", http.MethodGet, "/checkout", handleFunctions.Pages.Checkout},
		{"SubmitCheckoutForm", http.MethodPost, "/checkout", handleFunctions.Pages.SubmitCheckout},
		{"TrackingPage", http.MethodGet, "/orders/:orderId/tracking", handleFunctions.Pages.Tracking},
		{"StopTrackingForm", http.MethodPost, "/orders/:orderId/tracking/stop", handleFunctions.Pages.StopTracking},
		{"ProfilePage", http.MethodGet, "/profile", handleFunctions.Pages.Profile},
	}
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
