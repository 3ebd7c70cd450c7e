package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/FalcurmartEsui/shopfront-forge-37/models"
)

type SellerSignupRequest struct {
	Email               string `json:"email" binding:"required,email,max=255"`
	Password            string `json:"password" binding:"required,min=6,max=100"`
	ShopName            string `json:"shop_name" binding:"required,min=2,max=100"`
	Phone               string `json:"phone" binding:"omitempty,e164"`
	BusinessDescription string `json:"business_description" binding:"max=500"`
	HallNumber          int    `json:"hall_number" binding:"required,min=1,max=9"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=100"`
}

// POST /auth/seller/register
func RegisterSeller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SellerSignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		seller := models.Seller{
			ID:                  uuid.NewString(),
			Email:               req.Email,
			PasswordHash:        string(hash),
			ShopName:            req.ShopName,
			Phone:               req.Phone,
			BusinessDescription: req.BusinessDescription,
			HallNumber:          req.HallNumber,
			CreatedAt:           time.Now(),
		}
		if err := db.Create(&seller).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}

		token, err := issueJWT(seller.ID, "seller", seller.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Account created successfully",
			"seller":  seller,
			"token":   token,
		})
	}
}

// POST /auth/seller/login
func LoginSeller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var seller models.Seller
		err := db.Where("email = ?", req.Email).First(&seller).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(seller.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := issueJWT(seller.ID, "seller", seller.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"seller":  seller,
			"token":   token,
		})
	}
}
