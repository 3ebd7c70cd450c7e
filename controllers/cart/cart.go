package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FalcurmartEsui/shopfront-forge-37/cart"
	"github.com/FalcurmartEsui/shopfront-forge-37/models"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

func shopperID(c *gin.Context) (string, bool) {
	idVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := idVal.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// GET /cart
func GetCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := shopperID(c)
		if !ok {
			return
		}
		snap, err := carts.Snapshot(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// POST /cart
//
// Adds one unit of the product; repeated adds accumulate quantity on the
// existing line. Product details are snapshotted into the cart line so the
// cart renders without re-querying products.
func AddCartItem(db *gorm.DB, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := shopperID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Fetch product from DB
		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		err := carts.AddItem(id, cart.Line{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			ImageURL:  product.ImageURL,
			SellerID:  product.SellerID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		snap, err := carts.Snapshot(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusCreated, snap)
	}
}

// PUT /cart/:product_id
//
// Sets the line quantity; zero or negative removes the line. An unknown
// product id is deliberately a no-op, matching client-side cart behavior.
func UpdateCartItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := shopperID(c)
		if !ok {
			return
		}

		var input struct {
			Quantity *int `json:"quantity" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := carts.UpdateQuantity(id, c.Param("product_id"), *input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		snap, err := carts.Snapshot(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := shopperID(c)
		if !ok {
			return
		}
		if err := carts.RemoveItem(id, c.Param("product_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /cart
func ClearCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := shopperID(c)
		if !ok {
			return
		}
		if err := carts.Clear(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
