package storefrontserver

import (
	"sync"

	cartdomain "github.com/Apurer/delish-express/internal/domains/cart/domain"
	catalogdomain "github.com/Apurer/delish-express/internal/domains/catalog/domain"
	checkoutmapper "github.com/Apurer/delish-express/internal/domains/checkout/adapters/http/mapper"
	checkoutdomain "github.com/Apurer/delish-express/internal/domains/checkout/domain"
	"github.com/Apurer/delish-express/internal/shared/notify"
)

// Session is the page state of the single storefront visitor: the applied
// filters and their results, the cart, the checkout draft and the order being
// tracked. Handlers share one Session; its lock serialises their mutations so
// each request sees the state the previous one left.
type Session struct {
	mu           sync.Mutex
	filters      catalogdomain.FilterSelection
	results      []catalogdomain.Restaurant
	cart         *cartdomain.Cart
	draft        checkoutmapper.CheckoutForm
	draftErrors  checkoutdomain.FieldErrors
	currentOrder string
	notices      *notify.Queue
}

// NewSession starts with the default filters applied to catalog and an empty cart.
func NewSession(catalog []catalogdomain.Restaurant) *Session {
	selection := catalogdomain.DefaultFilterSelection()
	return &Session{
		filters: selection,
		results: catalogdomain.Apply(selection, catalog),
		cart:    cartdomain.NewCart(),
		draft:   checkoutmapper.DefaultForm(),
		notices: &notify.Queue{},
	}
}

// Listing returns the applied selection and its results.
func (s *Session) Listing() (catalogdomain.FilterSelection, []catalogdomain.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters, append([]catalogdomain.Restaurant(nil), s.results...)
}

// SetListing records an applied selection with the results it produced.
func (s *Session) SetListing(selection catalogdomain.FilterSelection, results []catalogdomain.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = selection
	s.results = results
}

// WithCart runs fn with exclusive access to the cart.
func (s *Session) WithCart(fn func(cart *cartdomain.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cart)
}

// Draft returns the last submitted checkout form and its field errors.
func (s *Session) Draft() (checkoutmapper.CheckoutForm, checkoutdomain.FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, s.draftErrors
}

func (s *Session) SetDraft(form checkoutmapper.CheckoutForm, errs checkoutdomain.FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = form
	s.draftErrors = errs
}

// CurrentOrder is the order most recently placed in this session.
func (s *Session) CurrentOrder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentOrder
}

func (s *Session) SetCurrentOrder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentOrder = id
}

// Notices is the toast queue pages drain on render.
func (s *Session) Notices() *notify.Queue {
	return s.notices
}
