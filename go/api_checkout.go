package storefrontserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartmapper "github.com/Apurer/delish-express/internal/domains/cart/adapters/http/mapper"
	cartdomain "github.com/Apurer/delish-express/internal/domains/cart/domain"
	checkoutmapper "github.com/Apurer/delish-express/internal/domains/checkout/adapters/http/mapper"
	checkoutdomain "github.com/Apurer/delish-express/internal/domains/checkout/domain"
	checkoutports "github.com/Apurer/delish-express/internal/domains/checkout/ports"
	ordermapper "github.com/Apurer/delish-express/internal/domains/orders/adapters/http/mapper"
	ordersdomain "github.com/Apurer/delish-express/internal/domains/orders/domain"
)

// CheckoutAPI validates the delivery form and turns the cart into an order.
type CheckoutAPI struct {
	checkout checkoutports.Service
	session  *Session
}

func NewCheckoutAPI(checkout checkoutports.Service, session *Session) CheckoutAPI {
	return CheckoutAPI{checkout: checkout, session: session}
}

// CheckoutView is everything the checkout page shows.
type CheckoutView struct {
	Cart           cartmapper.Cart                `json:"cart"`
	Summary        ordermapper.Summary            `json:"summary"`
	Form           checkoutmapper.CheckoutForm    `json:"form"`
	Errors         map[string]string              `json:"errors,omitempty"`
	PaymentOptions []checkoutmapper.PaymentOption `json:"paymentOptions"`
}

// Get /api/checkout
func (api *CheckoutAPI) GetCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, api.view())
}

func (api *CheckoutAPI) view() CheckoutView {
	form, errs := api.session.Draft()
	view := CheckoutView{
		Form:           form,
		Errors:         errs,
		PaymentOptions: checkoutmapper.PaymentOptions(),
	}
	_ = api.session.WithCart(func(cart *cartdomain.Cart) error {
		view.Cart = cartmapper.FromCart(cart)
		view.Summary = ordermapper.FromSummary(api.checkout.Summary(cart))
		return nil
	})
	return view
}

// Post /api/checkout/validate
// Reports every failing field without submitting.
func (api *CheckoutAPI) ValidateForm(c *gin.Context) {
	var payload checkoutmapper.CheckoutForm
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	errs := api.checkout.Validate(checkoutmapper.ToDomainForm(payload))
	c.JSON(http.StatusOK, checkoutmapper.FromFieldErrors(errs))
}

// Post /api/checkout/validate/field
// Live feedback for a single field.
func (api *CheckoutAPI) ValidateField(c *gin.Context) {
	var payload checkoutmapper.FieldCheck
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	message, known := checkoutdomain.ValidateField(payload.Field, payload.Value)
	if !known {
		problems.BadRequest(c, "unknown checkout field "+payload.Field)
		return
	}
	c.JSON(http.StatusOK, checkoutmapper.FieldResult{
		Field:   payload.Field,
		Valid:   message == "",
		Message: message,
	})
}

// Post /api/checkout
// Places the order and points the client at its tracker.
func (api *CheckoutAPI) Submit(c *gin.Context) {
	var payload checkoutmapper.CheckoutForm
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	order, err := api.submit(c, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", trackingPath(order.ID))
	c.JSON(http.StatusCreated, ordermapper.FromOrder(order))
}

// submit records the draft so the form page can redisplay it, then places
// the order from the session cart.
func (api *CheckoutAPI) submit(c *gin.Context, payload checkoutmapper.CheckoutForm) (*ordersdomain.Order, error) {
	var order *ordersdomain.Order
	err := api.session.WithCart(func(cart *cartdomain.Cart) error {
		placed, err := api.checkout.Submit(c.Request.Context(), cart, checkoutmapper.ToDomainForm(payload))
		order = placed
		return err
	})
	var validation *checkoutdomain.ValidationError
	switch {
	case errors.As(err, &validation):
		api.session.SetDraft(payload, validation.Fields)
		return nil, err
	case err != nil:
		api.session.SetDraft(payload, nil)
		return nil, err
	}
	api.session.SetDraft(checkoutmapper.DefaultForm(), nil)
	api.session.SetCurrentOrder(order.ID)
	return order, nil
}

func trackingPath(orderID string) string {
	return "/orders/" + orderID + "/tracking"
}
