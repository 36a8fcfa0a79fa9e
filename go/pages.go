package storefrontserver

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	cartdomain "github.com/Apurer/delish-express/internal/domains/cart/domain"
	catalogmapper "github.com/Apurer/delish-express/internal/domains/catalog/adapters/http/mapper"
	catalogdomain "github.com/Apurer/delish-express/internal/domains/catalog/domain"
	checkoutmapper "github.com/Apurer/delish-express/internal/domains/checkout/adapters/http/mapper"
	checkoutdomain "github.com/Apurer/delish-express/internal/domains/checkout/domain"
	ordermapper "github.com/Apurer/delish-express/internal/domains/orders/adapters/http/mapper"
	profilemapper "github.com/Apurer/delish-express/internal/domains/profile/adapters/http/mapper"
	"github.com/Apurer/delish-express/internal/shared/notify"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var errBadForm = errors.New("invalid form value")

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"has":   func(list []string, v string) bool { return slices.Contains(list, v) },
	"join":  strings.Join,
	"sub":   func(a, b int) int { return a - b },
	"add":   func(a, b int) int { return a + b },
	"stepperFor": func(id string, quantity int, path string) stepper {
		return stepper{ID: id, Quantity: quantity, Path: path}
	},
}

// stepper is the quantity control shown on each menu card.
type stepper struct {
	ID       string
	Quantity int
	Path     string
}

// ParseTemplates loads the page templates embedded in the binary.
func ParseTemplates() (*template.Template, error) {
	return template.New("storefront").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.tmpl")
}

// Pages renders the storefront as server-side HTML. Form posts follow the
// post/redirect/get pattern so a refresh never repeats a mutation.
type Pages struct {
	templates   *template.Template
	restaurants RestaurantsAPI
	cart        CartAPI
	checkout    CheckoutAPI
	orders      OrdersAPI
	profile     ProfileAPI
}

func NewPages(restaurants RestaurantsAPI, cart CartAPI, checkout CheckoutAPI, orders OrdersAPI, profile ProfileAPI) (Pages, error) {
	templates, err := ParseTemplates()
	if err != nil {
		return Pages{}, err
	}
	return Pages{
		templates:   templates,
		restaurants: restaurants,
		cart:        cart,
		checkout:    checkout,
		orders:      orders,
		profile:     profile,
	}, nil
}

type page struct {
	Title          string
	Notices        []notify.Notice
	CartCount      int
	RefreshSeconds int
	Error          string
	Content        any
}

type homeContent struct {
	Filters     catalogmapper.FilterState
	Options     catalogmapper.FilterOptions
	Restaurants []catalogmapper.Restaurant
}

type menuContent struct {
	Menu     catalogmapper.RestaurantMenu
	Cart     CheckoutView
	Quantity map[string]int
	Path     string
}

type trackingContent struct {
	Order    ordermapper.Order
	Progress ordermapper.Progress
}

func (p *Pages) render(c *gin.Context, status int, name string, view page) {
	session := p.restaurants.session
	view.Notices = session.Notices().Drain()
	_ = session.WithCart(func(cart *cartdomain.Cart) error {
		view.CartCount = cart.Count()
		return nil
	})
	c.HTML(status, name, view)
}

func (p *Pages) renderError(c *gin.Context, err error) {
	problem := problemFor(err)
	p.render(c, problem.Status, "error.tmpl", page{Title: problem.Title, Error: problem.Detail})
}

// Get /
func (p *Pages) Home(c *gin.Context) {
	selection, results := p.restaurants.session.Listing()
	p.renderHome(c, http.StatusOK, "", catalogmapper.Listing{
		Filters:     catalogmapper.FromSelection(selection),
		Restaurants: catalogmapper.FromRestaurants(results),
	})
}

func (p *Pages) renderHome(c *gin.Context, status int, message string, listing catalogmapper.Listing) {
	p.render(c, status, "home.tmpl", page{
		Title: "Restaurants near you",
		Error: message,
		Content: homeContent{
			Filters:     listing.Filters,
			Options:     catalogmapper.DefaultFilterOptions(),
			Restaurants: listing.Restaurants,
		},
	})
}

// Post /filters
func (p *Pages) ApplyFilters(c *gin.Context) {
	state, err := filterStateFromForm(c)
	if err == nil {
		_, err = p.restaurants.apply(c, state)
	}
	if err != nil {
		selection, results := p.restaurants.session.Listing()
		p.renderHome(c, problemFor(err).Status, err.Error(), catalogmapper.Listing{
			Filters:     catalogmapper.FromSelection(selection),
			Restaurants: catalogmapper.FromRestaurants(results),
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func filterStateFromForm(c *gin.Context) (catalogmapper.FilterState, error) {
	state := catalogmapper.FromSelection(catalogdomain.DefaultFilterSelection())
	state.Cuisines = c.PostFormArray("cuisine")
	state.SortBy = c.PostForm("sortBy")
	ceiling, err := formInt(c, "maxPrice", state.PriceRange[1])
	if err != nil {
		return state, err
	}
	state.PriceRange[1] = ceiling
	if raw := c.PostForm("minRating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return state, fmt.Errorf("%w: minRating must be a number", errBadForm)
		}
		state.MinRating = rating
	}
	return state, nil
}

// Post /filters/clear
func (p *Pages) ClearFilters(c *gin.Context) {
	if _, err := p.restaurants.clear(c); err != nil {
		p.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Get /search
func (p *Pages) Search(c *gin.Context) {
	result, err := p.restaurants.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		p.renderError(c, err)
		return
	}
	p.render(c, http.StatusOK, "search.tmpl", page{
		Title:   "Search",
		Content: catalogmapper.FromSearchResult(*result),
	})
}

// Get /restaurants/:restaurantId/menu
func (p *Pages) Menu(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("restaurantId"), 10, 64)
	if err != nil {
		p.render(c, http.StatusBadRequest, "error.tmpl", page{Title: "Bad Request", Error: "restaurantId must be a positive integer"})
		return
	}
	menu, err := p.restaurants.menu(c, id)
	if err != nil {
		p.renderError(c, err)
		return
	}
	view := p.checkout.view()
	quantities := make(map[string]int, len(view.Cart.Items))
	for _, line := range view.Cart.Items {
		quantities[line.ID] = line.Quantity
	}
	p.render(c, http.StatusOK, "menu.tmpl", page{
		Title: menu.Restaurant.Name,
		Content: menuContent{
			Menu:     menu,
			Cart:     view,
			Quantity: quantities,
			Path:     c.Request.URL.Path,
		},
	})
}

// Post /cart/items/:itemId
func (p *Pages) SetItemQuantity(c *gin.Context) {
	quantity, err := formInt(c, "quantity", 0)
	if err == nil {
		_, err = p.cart.setItemQuantity(c, c.Param("itemId"), quantity)
	}
	p.afterCartChange(c, err)
}

// Post /cart/items/:itemId/step
func (p *Pages) StepLine(c *gin.Context) {
	delta, err := formInt(c, "delta", 0)
	if err == nil {
		_, err = p.cart.changeQuantity(c, c.Param("itemId"), delta)
	}
	p.afterCartChange(c, err)
}

// Post /cart/items/:itemId/remove
func (p *Pages) RemoveLine(c *gin.Context) {
	_, err := p.cart.removeLine(c, c.Param("itemId"))
	p.afterCartChange(c, err)
}

func (p *Pages) afterCartChange(c *gin.Context, err error) {
	if err != nil {
		p.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, redirectTarget(c))
}

// redirectTarget honours a local "redirect" form field and falls back to the
// checkout page.
func redirectTarget(c *gin.Context) string {
	target := c.PostForm("redirect")
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/checkout"
	}
	return target
}

// Get /checkout
func (p *Pages) Checkout(c *gin.Context) {
	p.render(c, http.StatusOK, "checkout.tmpl", page{Title: "Checkout", Content: p.checkout.view()})
}

// Post /checkout
func (p *Pages) SubmitCheckout(c *gin.Context) {
	var form checkoutmapper.CheckoutForm
	if err := c.ShouldBind(&form); err != nil {
		p.renderError(c, fmt.Errorf("%w: %w", errBadForm, err))
		return
	}
	order, err := p.checkout.submit(c, form)
	if err != nil {
		var validation *checkoutdomain.ValidationError
		message := err.Error()
		if errors.As(err, &validation) {
			message = "Please correct the highlighted fields."
		}
		p.render(c, problemFor(err).Status, "checkout.tmpl", page{
			Title:   "Checkout",
			Error:   message,
			Content: p.checkout.view(),
		})
		return
	}
	c.Redirect(http.StatusSeeOther, trackingPath(order.ID))
}

// Get /orders/:orderId/tracking
// The page refreshes itself once per stage until the order is delivered.
func (p *Pages) Tracking(c *gin.Context) {
	orderID := c.Param("orderId")
	ctx := c.Request.Context()
	order, err := p.orders.orders.GetOrder(ctx, orderID)
	if err != nil {
		p.renderError(c, err)
		return
	}
	progress, err := p.orders.orders.Track(ctx, orderID)
	if err != nil {
		p.renderError(c, err)
		return
	}
	view := page{
		Title: "Track your order",
		Content: trackingContent{
			Order:    ordermapper.FromOrder(order),
			Progress: ordermapper.FromProgress(orderID, progress),
		},
	}
	if !progress.Done() {
		view.RefreshSeconds = refreshSeconds(p.orders.orders.StageDelay())
	}
	p.render(c, http.StatusOK, "tracking.tmpl", view)
}

// Post /orders/:orderId/tracking/stop
func (p *Pages) StopTracking(c *gin.Context) {
	orderID := c.Param("orderId")
	if err := p.orders.orders.StopTracking(c.Request.Context(), orderID); err != nil {
		p.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

// Get /profile
func (p *Pages) Profile(c *gin.Context) {
	overview, err := p.profile.profile.Overview(c.Request.Context())
	if err != nil {
		p.renderError(c, err)
		return
	}
	p.render(c, http.StatusOK, "profile.tmpl", page{
		Title:   "My Account",
		Content: profilemapper.FromOverview(overview),
	})
}

func refreshSeconds(delay time.Duration) int {
	return max(1, int(math.Ceil(delay.Seconds())))
}

func formInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadForm, name)
	}
	return v, nil
}
