package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bannerControllers "github.com/FalcurmartEsui/shopfront-forge-37/controllers/banner"
	sellerControllers "github.com/FalcurmartEsui/shopfront-forge-37/controllers/seller"
	"github.com/FalcurmartEsui/shopfront-forge-37/middleware"
	"github.com/FalcurmartEsui/shopfront-forge-37/notify"
)

// SetupSellerRoutes registers all "/seller/*" dashboard endpoints. Requires a
// seller-role JWT.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB, hub *notify.Hub) {
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ValidateToken, middleware.RequireRole("seller"))
	{
		// ─────────── Product Management ───────────
		products := sellerGroup.Group("/products")
		{
			products.GET("", sellerControllers.ListMyProducts(db))
			products.POST("", sellerControllers.CreateProduct(db))
			products.DELETE("/:id", sellerControllers.DeleteProduct(db))
			products.GET("/export-excel", sellerControllers.ExportMyProductsToExcel(db))
		}

		// ─────────── Orders ───────────
		orders := sellerGroup.Group("/orders")
		{
			orders.GET("", sellerControllers.ListMyOrders(db))
			orders.PUT("/:orderID/status", sellerControllers.UpdateOrderStatus(db))
		}

		// websocket endpoint for real-time new-order events
		sellerGroup.GET("/ws/orders", sellerControllers.OrderEventsWS(hub))

		// ─────────── Storefront Banners ───────────
		banners := sellerGroup.Group("/banners")
		{
			banners.POST("/upload", bannerControllers.UploadBanner(db))
			banners.DELETE("/:id", bannerControllers.DeleteBanner(db))
		}
	}
}
