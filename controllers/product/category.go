package productControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FalcurmartEsui/shopfront-forge-37/models"
)

// GET /products/category/:category
//
// Besides plain category names the storefront links two pseudo-categories:
// "new-arrivals" (added within the last 30 days) and "featured".
func GetCategoryProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")

		query := db.Model(&models.Product{}).Preload("Seller")

		switch category {
		case "new-arrivals":
			query = query.Where("created_at >= ?", time.Now().AddDate(0, 0, -30))
		case "featured":
			query = query.Where("is_featured = ?", true)
		default:
			// Category names are stored capitalized
			name := category
			if name != "" {
				name = strings.ToUpper(name[:1]) + name[1:]
			}
			query = query.Where("category = ?", name)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
