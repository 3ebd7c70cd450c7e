package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/FalcurmartEsui/shopfront-forge-37/cart"
	"github.com/FalcurmartEsui/shopfront-forge-37/models"
)

type CustomerSignupRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Name     string `json:"name" binding:"omitempty,min=2,max=100"`
	GuestID  string `json:"guest_id"`
}

type CustomerLoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=100"`
	GuestID  string `json:"guest_id"`
}

// POST /auth/customer/register
func RegisterCustomer(db *gorm.DB, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CustomerSignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		customer := models.Customer{
			ID:           uuid.NewString(),
			Email:        req.Email,
			PasswordHash: string(hash),
			Name:         req.Name,
			CreatedAt:    time.Now(),
		}
		if err := db.Create(&customer).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}

		token, err := issueJWT(customer.ID, "customer", customer.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":      "Account created successfully",
			"customer":     customer,
			"token":        token,
			"merge_status": mergeGuestCart(carts, req.GuestID, customer.ID),
		})
	}
}

// POST /auth/customer/login
func LoginCustomer(db *gorm.DB, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CustomerLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var customer models.Customer
		err := db.Where("email = ?", req.Email).First(&customer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := issueJWT(customer.ID, "customer", customer.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"customer":     customer,
			"token":        token,
			"merge_status": mergeGuestCart(carts, req.GuestID, customer.ID),
		})
	}
}

// mergeGuestCart folds an anonymous cart into the customer's cart after
// login. Merge failures are reported in the response but never block login.
func mergeGuestCart(carts *cart.Store, guestID, customerID string) string {
	if guestID == "" {
		return "no-guest-cart"
	}
	merged, err := carts.Merge(guestID, customerID)
	if err != nil {
		log.Printf("❌ Guest cart merge failed for %s: %v", guestID, err)
		return "merge-failed"
	}
	if !merged {
		return "guest-cart-empty"
	}
	return "merged-success"
}
