//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	pacttest "github.com/Apurer/delish-express/test/pact"

	storefrontserver "github.com/Apurer/delish-express/go"
	cartapp "github.com/Apurer/delish-express/internal/domains/cart/application"
	catalogmemory "github.com/Apurer/delish-express/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/Apurer/delish-express/internal/domains/catalog/application"
	catalogdomain "github.com/Apurer/delish-express/internal/domains/catalog/domain"
	checkoutobs "github.com/Apurer/delish-express/internal/domains/checkout/adapters/observability"
	checkoutapp "github.com/Apurer/delish-express/internal/domains/checkout/application"
	ordersmemory "github.com/Apurer/delish-express/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/delish-express/internal/domains/orders/adapters/observability"
	ordersworkflows "github.com/Apurer/delish-express/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/Apurer/delish-express/internal/domains/orders/application"
	profilememory "github.com/Apurer/delish-express/internal/domains/profile/adapters/memory"
	profileapp "github.com/Apurer/delish-express/internal/domains/profile/application"
	"github.com/Apurer/delish-express/internal/platform/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestStorefrontProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCatalogSeeded: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateCartEmpty: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateCartHasRoll: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.addToCart(t, pacttest.SpicyTunaRollID, 1)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

// contractProviderApp serves a fresh storefront after every reset so each
// interaction starts from the seeded catalog and an empty session.
type contractProviderApp struct {
	mu     sync.RWMutex
	router *gin.Engine
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()
	app := &contractProviderApp{}
	app.reset(t)
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.mu.RLock()
		router := app.router
		app.mu.RUnlock()
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(app.server.Close)
	return app
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	ctx := context.Background()

	catalog := catalogapp.NewService(catalogmemory.NewSeededRepository())
	restaurants, err := catalog.ListRestaurants(ctx, catalogdomain.DefaultFilterSelection())
	require.NoError(t, err)
	session := storefrontserver.NewSession(restaurants)

	clock := scheduler.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	orderRepo := ordersmemory.NewRepository()
	tracker := ordersworkflows.NewInlineTracker(clock, 5*time.Second, ordersapp.NewStatusProjector(orderRepo))
	orders := ordersobs.New(ordersapp.NewService(orderRepo, tracker, ordersapp.WithClock(clock.Now)))
	carts := cartapp.NewService(catalog, cartapp.WithNotifier(session.Notices()))
	checkout := checkoutobs.New(checkoutapp.NewService(orders, checkoutapp.WithNotifier(session.Notices())))
	profile := profileapp.NewService(profilememory.NewSeededRepository(), orders)

	handlers := storefrontserver.ApiHandleFunctions{
		RestaurantsAPI: storefrontserver.NewRestaurantsAPI(catalog, session),
		CartAPI:        storefrontserver.NewCartAPI(carts, session),
		CheckoutAPI:    storefrontserver.NewCheckoutAPI(checkout, session),
		OrdersAPI:      storefrontserver.NewOrdersAPI(orders, session),
		ProfileAPI:     storefrontserver.NewProfileAPI(profile, session),
	}
	pages, err := storefrontserver.NewPages(handlers.RestaurantsAPI, handlers.CartAPI, handlers.CheckoutAPI, handlers.OrdersAPI, handlers.ProfileAPI)
	require.NoError(t, err)
	handlers.Pages = pages

	router := gin.New()
	router.Use(gin.Recovery())
	router = storefrontserver.NewRouterWithGinEngine(router, handlers)

	a.mu.Lock()
	a.router = router
	a.mu.Unlock()
}

func (a *contractProviderApp) addToCart(t testing.TB, itemID string, quantity int) {
	t.Helper()
	a.mu.RLock()
	router := a.router
	a.mu.RUnlock()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/cart/items/"+itemID, jsonBody(quantity))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func jsonBody(quantity int) *strings.Reader {
	return strings.NewReader(`{"quantity":` + strconv.Itoa(quantity) + `}`)
}
