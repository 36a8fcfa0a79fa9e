package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/Apurer/delish-express/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/Apurer/delish-express/internal/domains/orders/ports"
)

// OrdersAPI reports placed orders and their tracking progress.
type OrdersAPI struct {
	orders  ordersports.Service
	session *Session
}

func NewOrdersAPI(orders ordersports.Service, session *Session) OrdersAPI {
	return OrdersAPI{orders: orders, session: session}
}

// Get /api/orders
func (api *OrdersAPI) ListOrders(c *gin.Context) {
	history, err := api.orders.History(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]ordermapper.Order, 0, len(history))
	for _, o := range history {
		out = append(out, ordermapper.FromOrder(o))
	}
	c.JSON(http.StatusOK, out)
}

// Get /api/orders/:orderId
func (api *OrdersAPI) GetOrder(c *gin.Context) {
	order, err := api.orders.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromOrder(order))
}

// Get /api/orders/:orderId/tracking
func (api *OrdersAPI) GetTracking(c *gin.Context) {
	orderID := c.Param("orderId")
	progress, err := api.orders.Track(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromProgress(orderID, progress))
}

// Delete /api/orders/:orderId/tracking
// Tears the tracker down; the order keeps the last status it reached.
func (api *OrdersAPI) StopTracking(c *gin.Context) {
	if err := api.orders.StopTracking(c.Request.Context(), c.Param("orderId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
