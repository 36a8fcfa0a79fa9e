package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartmapper "github.com/Apurer/delish-express/internal/domains/cart/adapters/http/mapper"
	cartdomain "github.com/Apurer/delish-express/internal/domains/cart/domain"
	cartports "github.com/Apurer/delish-express/internal/domains/cart/ports"
)

// CartAPI exposes the session cart and its quantity steppers.
type CartAPI struct {
	cart    cartports.Service
	session *Session
}

func NewCartAPI(cart cartports.Service, session *Session) CartAPI {
	return CartAPI{cart: cart, session: session}
}

// Get /api/cart
func (api *CartAPI) GetCart(c *gin.Context) {
	var payload cartmapper.Cart
	_ = api.session.WithCart(func(cart *cartdomain.Cart) error {
		payload = cartmapper.FromCart(cart)
		return nil
	})
	c.JSON(http.StatusOK, payload)
}

// Put /api/cart/items/:itemId
// Sets the quantity of a menu item. Zero removes it.
func (api *CartAPI) SetItemQuantity(c *gin.Context) {
	var payload cartmapper.QuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	change, err := api.setItemQuantity(c, c.Param("itemId"), *payload.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, change)
}

func (api *CartAPI) setItemQuantity(c *gin.Context, itemID string, quantity int) (cartmapper.Change, error) {
	var out cartmapper.Change
	err := api.session.WithCart(func(cart *cartdomain.Cart) error {
		change, err := api.cart.SetItemQuantity(c.Request.Context(), cart, itemID, quantity)
		if err != nil {
			return err
		}
		out = cartmapper.FromChange(change, cart)
		return nil
	})
	return out, err
}

// Patch /api/cart/items/:itemId
// Steps a cart line by delta. Stepping to zero removes the line.
func (api *CartAPI) ChangeLineQuantity(c *gin.Context) {
	var payload cartmapper.DeltaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	change, err := api.changeQuantity(c, c.Param("itemId"), payload.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, change)
}

func (api *CartAPI) changeQuantity(c *gin.Context, itemID string, delta int) (cartmapper.Change, error) {
	var out cartmapper.Change
	err := api.session.WithCart(func(cart *cartdomain.Cart) error {
		change, err := api.cart.ChangeQuantity(c.Request.Context(), cart, itemID, delta)
		if err != nil {
			return err
		}
		out = cartmapper.FromChange(change, cart)
		return nil
	})
	return out, err
}

// Delete /api/cart/items/:itemId
func (api *CartAPI) RemoveLine(c *gin.Context) {
	change, err := api.removeLine(c, c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, change)
}

func (api *CartAPI) removeLine(c *gin.Context, itemID string) (cartmapper.Change, error) {
	var out cartmapper.Change
	err := api.session.WithCart(func(cart *cartdomain.Cart) error {
		change, err := api.cart.RemoveLine(c.Request.Context(), cart, itemID)
		if err != nil {
			return err
		}
		out = cartmapper.FromChange(change, cart)
		return nil
	})
	return out, err
}
