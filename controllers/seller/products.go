package sellerControllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/FalcurmartEsui/shopfront-forge-37/models"
)

func sellerID(c *gin.Context) (string, bool) {
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

// maxProductImages caps the gallery size per product.
const maxProductImages = 10

func uploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// GET /seller/products
func ListMyProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sellerID(c)
		if !ok {
			return
		}
		var products []models.Product
		if err := db.Where("seller_id = ?", id).Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /seller/products
//
// Multipart form: name, description, price, category, stock_quantity,
// is_featured plus an optional product image saved under the uploads dir.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sellerID(c)
		if !ok {
			return
		}

		// Required fields
		name := strings.TrimSpace(c.PostForm("name"))
		priceStr := c.PostForm("price")
		stockStr := c.PostForm("stock_quantity")
		if len(name) < 2 || len(name) > 200 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product name must be 2-200 characters"})
			return
		}
		if priceStr == "" || stockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price and stock_quantity are required"})
			return
		}

		// Convert numerics
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 || price > 999999 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 || stock > 999999 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock_quantity"})
			return
		}

		// Optional fields
		description := strings.TrimSpace(c.PostForm("description"))
		if len(description) > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Description must be less than 1000 characters"})
			return
		}
		category := strings.TrimSpace(c.PostForm("category"))
		isFeatured := c.PostForm("is_featured") == "true"

		// Image uploads. Multiple files come in under "images"; a single
		// "image" field still works. Files keep their form order as the
		// gallery display order.
		var files []*multipart.FileHeader
		if form, err := c.MultipartForm(); err == nil && form != nil {
			files = form.File["images"]
			if len(files) == 0 {
				files = form.File["image"]
			}
		}
		if len(files) > maxProductImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("A product can have at most %d images", maxProductImages)})
			return
		}

		productID := uuid.NewString()
		var imageURL string
		images := make([]models.ProductImage, 0, len(files))
		for i, file := range files {
			url, err := saveProductImage(c, file, id)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
			if i == 0 {
				imageURL = url
			}
			images = append(images, models.ProductImage{
				ProductID:    productID,
				ImageURL:     url,
				DisplayOrder: i,
				CreatedAt:    time.Now(),
			})
		}

		product := models.Product{
			ID:            productID,
			SellerID:      id,
			Name:          name,
			Description:   description,
			Price:         price,
			Category:      category,
			StockQuantity: stock,
			ImageURL:      imageURL,
			IsFeatured:    isFeatured,
			CreatedAt:     time.Now(),
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			if len(images) > 0 {
				if err := tx.Create(&images).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		product.Images = images

		c.JSON(http.StatusCreated, product)
	}
}

// saveProductImage writes the upload under <uploads>/products/<seller>/ with
// a collision-proof name and returns the public URL path.
func saveProductImage(c *gin.Context, file *multipart.FileHeader, seller string) (string, error) {
	filename := uuid.NewString() + filepath.Ext(file.Filename)

	saveDir := filepath.Join(uploadsDir(), "products", seller)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/uploads/products/%s/%s", os.Getenv("PUBLIC_BASE_URL"), seller, filename), nil
}

// DELETE /seller/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sellerID(c)
		if !ok {
			return
		}

		var product models.Product
		err := db.Where("id = ? AND seller_id = ?", c.Param("id"), id).First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
