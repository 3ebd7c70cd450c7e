package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FalcurmartEsui/shopfront-forge-37/cart"
	"github.com/FalcurmartEsui/shopfront-forge-37/notify"
)

// SetupRoutes is the single entry-point that wires up Auth, Shop and Seller
// route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Store, hub *notify.Hub) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, carts)

	// Storefront routes (browsing public, cart/checkout JWT-protected)
	SetupShopRoutes(r, db, carts, hub)

	// Seller dashboard routes (seller-role JWT required)
	SetupSellerRoutes(r, db, hub)
}
