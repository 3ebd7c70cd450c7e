package checkoutControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FalcurmartEsui/shopfront-forge-37/cart"
	"github.com/FalcurmartEsui/shopfront-forge-37/checkout"
	"github.com/FalcurmartEsui/shopfront-forge-37/notify"
)

// CheckoutRequest carries the shipping fields shared by every per-seller
// order of one checkout. Field rules mirror the storefront form: short names
// and vague addresses are rejected before anything is written.
type CheckoutRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Phone   string `json:"phone" binding:"omitempty,e164"`
	Address string `json:"address" binding:"required,min=10,max=500"`
}

// POST /checkout
//
// Reads the shopper's cart snapshot, splits it into one order per seller and
// submits them sequentially. The cart is cleared only when every group
// commits; on a partial failure it stays intact so the shopper can retry the
// whole checkout.
func PlaceOrders(carts *cart.Store, orders checkout.OrderStore, hub *notify.Hub) gin.HandlerFunc {
	splitter := checkout.NewSplitter(orders)

	return func(c *gin.Context) {
		idVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		shopperID, ok := idVal.(string)
		if !ok || shopperID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		snap, err := carts.Snapshot(shopperID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(snap.Lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		placed, err := splitter.Submit(c.Request.Context(), snap, checkout.Customer{
			ID:              shopperID,
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			ShippingAddress: req.Address,
		})
		if err != nil {
			var gerr *checkout.GroupError
			if errors.As(err, &gerr) {
				log.Printf("❌ Checkout failed at seller %s for %s: %v", gerr.SellerID, shopperID, gerr.Err)
				// Earlier sellers' orders stay committed; their sellers still
				// get notified, and the response reports which group failed so
				// the shopper can retry the whole checkout.
				publishOrderEvents(hub, placed, req.Name)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":         "Order for seller " + gerr.SellerID + " could not be placed",
					"failed_seller": gerr.SellerID,
					"placed_orders": placed,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := carts.Clear(shopperID); err != nil {
			log.Printf("❌ Failed to clear cart for %s after checkout: %v", shopperID, err)
		}

		publishOrderEvents(hub, placed, req.Name)

		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed successfully",
			"orders":  placed,
		})
	}
}

// publishOrderEvents emits one OrderCreated event per placed order. Called on
// both the success and partial-failure paths: a committed order is durable
// regardless of what happened to later seller groups.
func publishOrderEvents(hub *notify.Hub, placed []checkout.PlacedOrder, customerName string) {
	for _, p := range placed {
		hub.Publish(notify.OrderEvent{
			OrderID:      p.OrderID,
			SellerID:     p.SellerID,
			TotalAmount:  p.TotalAmount,
			CustomerName: customerName,
			CreatedAt:    time.Now(),
		})
	}
}
