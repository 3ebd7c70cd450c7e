package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	SellerID      string         `gorm:"index;not null" json:"seller_id"`
	Seller        Seller         `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	Category      string         `json:"category"`
	StockQuantity int            `json:"stock_quantity"`
	ImageURL      string         `json:"image_url"`
	Images        []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	IsFeatured    bool           `json:"is_featured"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductImage is one gallery image of a product. The first image (display
// order 0) doubles as the product thumbnail in Product.ImageURL.
type ProductImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    string    `gorm:"index;not null" json:"product_id"`
	ImageURL     string    `gorm:"not null" json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
