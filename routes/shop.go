package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FalcurmartEsui/shopfront-forge-37/cart"
	"github.com/FalcurmartEsui/shopfront-forge-37/checkout"
	bannerControllers "github.com/FalcurmartEsui/shopfront-forge-37/controllers/banner"
	cartControllers "github.com/FalcurmartEsui/shopfront-forge-37/controllers/cart"
	checkoutControllers "github.com/FalcurmartEsui/shopfront-forge-37/controllers/checkout"
	productControllers "github.com/FalcurmartEsui/shopfront-forge-37/controllers/product"
	"github.com/FalcurmartEsui/shopfront-forge-37/middleware"
	"github.com/FalcurmartEsui/shopfront-forge-37/notify"
)

// SetupShopRoutes registers the storefront: public browsing plus the
// token-scoped cart and checkout.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Store, hub *notify.Hub) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/products/category/:category", productControllers.GetCategoryProducts(db))
	r.GET("/banners", bannerControllers.GetBanners(db))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", cartControllers.GetCart(carts))
		cartGroup.POST("/", cartControllers.AddCartItem(db, carts))
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(carts))
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(carts))
		cartGroup.DELETE("/", cartControllers.ClearCart(carts))
	}

	// ──────────────── Checkout ────────────────
	r.POST("/checkout", middleware.ValidateToken, middleware.RequireRole("customer"),
		checkoutControllers.PlaceOrders(carts, checkout.NewGormStore(db), hub))
}
