//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/Apurer/delish-express/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type restaurantPayload struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Cuisine      []string `json:"cuisine"`
	Rating       float64  `json:"rating"`
	DeliveryTime int      `json:"deliveryTime"`
}

type listingPayload struct {
	Restaurants []restaurantPayload `json:"restaurants"`
}

type menuPayload struct {
	Restaurant restaurantPayload `json:"restaurant"`
	Categories []struct {
		Title string `json:"title"`
	} `json:"categories"`
}

type changePayload struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Event    string `json:"event"`
	Cart     struct {
		Count    int     `json:"count"`
		Subtotal float64 `json:"subtotal"`
	} `json:"cart"`
}

type problemDetail struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Status     int    `json:"status"`
	Detail     string `json:"detail"`
	Extensions struct {
		Fields map[string]string `json:"fields"`
	} `json:"extensions"`
}

type apiError struct {
	status  int
	title   string
	detail  string
	problem problemDetail
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestStorefrontContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")
	restaurantMatcher := matchers.Map{
		"id":           matchers.Like(pacttest.SushiPalaceID),
		"name":         matchers.Like("Sushi Palace"),
		"imageUrl":     matchers.Like("https://source.unsplash.com/random/800x600/?sushi"),
		"cuisine":      matchers.EachLike("Japanese", 1),
		"rating":       matchers.Like(4.8),
		"deliveryTime": matchers.Like(30),
	}
	problemMatcher := func(problemType, title string, status int) matchers.Map {
		return matchers.Map{
			"type":   matchers.S(problemType),
			"title":  matchers.S(title),
			"status": matchers.Like(status),
		}
	}

	pact.AddInteraction().
		Given(pacttest.StateCatalogSeeded).
		UponReceiving("a request for the restaurant listing").
		WithRequest("GET", "/api/restaurants").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"filters": matchers.Map{
					"cuisines":   matchers.Like([]string{}),
					"priceRange": matchers.Like([]int{0, 50}),
					"sortBy":     matchers.Term("recommended", "recommended|delivery_time|rating"),
					"minRating":  matchers.Like(0),
				},
				"restaurants": matchers.EachLike(restaurantMatcher, 1),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateCatalogSeeded).
		UponReceiving("a request for the sushi palace menu").
		WithRequest("GET", fmt.Sprintf("/api/restaurants/%d/menu", pacttest.SushiPalaceID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"restaurant": restaurantMatcher,
				"categories": matchers.EachLike(matchers.Map{
					"title": matchers.Like("Signature Sushi Rolls"),
					"items": matchers.EachLike(matchers.Map{
						"id":          matchers.Like(pacttest.SpicyTunaRollID),
						"name":        matchers.Like(pacttest.SpicyTunaRollName),
						"description": matchers.Like("Fresh tuna mixed with spicy mayo, topped with sesame seeds."),
						"price":       matchers.Like(pacttest.SpicyTunaRollPrice),
					}, 1),
				}, 1),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateCatalogSeeded).
		UponReceiving("a request for a missing restaurant menu").
		WithRequest("GET", fmt.Sprintf("/api/restaurants/%d/menu", pacttest.MissingRestaurantID)).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(problemMatcher("/problems/not-found", "Resource Not Found", http.StatusNotFound))
		})

	pact.AddInteraction().
		Given(pacttest.StateCartEmpty).
		UponReceiving("a request to add two spicy tuna rolls").
		WithRequest("PUT", "/api/cart/items/"+pacttest.SpicyTunaRollID, func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{"quantity": matchers.Like(2)})
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"itemId":   matchers.S(pacttest.SpicyTunaRollID),
				"quantity": matchers.Like(2),
				"event":    matchers.Term("added", "added|removed"),
				"cart": matchers.Map{
					"items": matchers.EachLike(matchers.Map{
						"id":        matchers.Like(pacttest.SpicyTunaRollID),
						"name":      matchers.Like(pacttest.SpicyTunaRollName),
						"price":     matchers.Like(pacttest.SpicyTunaRollPrice),
						"quantity":  matchers.Like(2),
						"lineTotal": matchers.Like(25.98),
					}, 1),
					"count":    matchers.Like(2),
					"subtotal": matchers.Like(25.98),
				},
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateCartHasRoll).
		UponReceiving("a checkout submission with invalid fields").
		WithRequest("POST", "/api/checkout", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(pacttest.ExampleInvalidCheckoutForm())
		}).
		WillRespondWith(http.StatusBadRequest, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/validation-error"),
				"title":  matchers.S("Validation Error"),
				"status": matchers.Like(http.StatusBadRequest),
				"extensions": matchers.Map{
					"fields": matchers.Map{
						"name":       matchers.S("Name must be at least 2 characters."),
						"postalCode": matchers.S("Please enter a valid postal code."),
					},
				},
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newStorefrontClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var listing listingPayload
		if err := client.do(ctx, http.MethodGet, "/api/restaurants", nil, &listing); err != nil {
			return fmt.Errorf("list restaurants: %w", err)
		}
		if len(listing.Restaurants) == 0 {
			return fmt.Errorf("expected at least one restaurant")
		}

		var menu menuPayload
		if err := client.do(ctx, http.MethodGet, fmt.Sprintf("/api/restaurants/%d/menu", pacttest.SushiPalaceID), nil, &menu); err != nil {
			return fmt.Errorf("get menu: %w", err)
		}
		if menu.Restaurant.ID != pacttest.SushiPalaceID || len(menu.Categories) == 0 {
			return fmt.Errorf("unexpected menu %+v", menu)
		}

		err := client.do(ctx, http.MethodGet, fmt.Sprintf("/api/restaurants/%d/menu", pacttest.MissingRestaurantID), nil, nil)
		if apiErr, ok := err.(apiError); !ok || apiErr.Status() != http.StatusNotFound {
			return fmt.Errorf("expected 404 for restaurant %d, got %v", pacttest.MissingRestaurantID, err)
		}

		var change changePayload
		if err := client.do(ctx, http.MethodPut, "/api/cart/items/"+pacttest.SpicyTunaRollID, map[string]any{"quantity": 2}, &change); err != nil {
			return fmt.Errorf("set quantity: %w", err)
		}
		if change.Event != "added" || change.Cart.Count != 2 {
			return fmt.Errorf("unexpected cart change %+v", change)
		}

		err = client.do(ctx, http.MethodPost, "/api/checkout", pacttest.ExampleInvalidCheckoutForm(), nil)
		apiErr, ok := err.(apiError)
		if !ok || apiErr.Status() != http.StatusBadRequest {
			return fmt.Errorf("expected 400 for invalid checkout, got %v", err)
		}
		if _, ok := apiErr.problem.Extensions.Fields["name"]; !ok {
			return fmt.Errorf("expected a name field error, got %+v", apiErr.problem.Extensions.Fields)
		}
		return nil
	})
	require.NoError(t, err)
}

type storefrontClient struct {
	baseURL    string
	httpClient *http.Client
}

func newStorefrontClient(config pactconsumer.MockServerConfig) *storefrontClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &storefrontClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *storefrontClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(res)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func decodeAPIError(res *http.Response) error {
	var problem problemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	status := problem.Status
	if status == 0 {
		status = res.StatusCode
	}
	return apiError{
		status:  status,
		title:   problem.Title,
		detail:  problem.Detail,
		problem: problem,
	}
}
