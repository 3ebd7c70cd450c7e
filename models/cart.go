package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey"`
	ShopperID string     `gorm:"uniqueIndex"`                                   // Enforces ONE cart per shopper (customer or guest)
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"` // Cascade delete items if cart is deleted
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID           uint   `gorm:"primaryKey"`
	CartID       uint   `gorm:"index"` // Faster queries
	Position     int    // Preserves first-add order across reloads
	ProductID    string
	ProductName  string
	ProductImage string
	SellerID     string
	UnitPrice    float64
	Quantity     int
	AddedAt      time.Time
}
