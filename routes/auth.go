package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FalcurmartEsui/shopfront-forge-37/auth"
	"github.com/FalcurmartEsui/shopfront-forge-37/cart"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Store) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuest())

		authGroup.POST("/customer/register", auth.RegisterCustomer(db, carts))
		authGroup.POST("/customer/login", auth.LoginCustomer(db, carts))

		authGroup.POST("/seller/register", auth.RegisterSeller(db))
		authGroup.POST("/seller/login", auth.LoginSeller(db))
	}
}
