package models

import "time"

type Seller struct {
	ID                  string    `gorm:"primaryKey" json:"id"`
	Email               string    `gorm:"unique;not null" json:"email"`
	PasswordHash        string    `gorm:"not null" json:"-"`
	ShopName            string    `gorm:"not null" json:"shop_name"`
	Phone               string    `json:"phone"`
	BusinessDescription string    `json:"business_description"`
	HallNumber          int       `json:"hall_number"` // campus hall 1-9
	Products            []Product `gorm:"foreignKey:SellerID" json:"products,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
