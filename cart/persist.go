package cart

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/FalcurmartEsui/shopfront-forge-37/models"
)

// GormPersister stores cart lines in the carts / cart_items tables so a
// shopper's cart survives a server restart.
type GormPersister struct {
	db *gorm.DB
}

func NewGormPersister(db *gorm.DB) *GormPersister {
	return &GormPersister{db: db}
}

func (p *GormPersister) Load(shopperID string) ([]Line, error) {
	var row models.Cart
	err := p.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("shopper_id = ?", shopperID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(row.Items))
	for _, it := range row.Items {
		lines = append(lines, Line{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			UnitPrice: it.UnitPrice,
			ImageURL:  it.ProductImage,
			SellerID:  it.SellerID,
			Quantity:  it.Quantity,
		})
	}
	return lines, nil
}

func (p *GormPersister) Save(shopperID string, lines []Line) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		var row models.Cart
		err := tx.Where("shopper_id = ?", shopperID).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = models.Cart{ShopperID: shopperID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		// Rewrite the item rows wholesale; the line set is small.
		if err := tx.Where("cart_id = ?", row.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		items := make([]models.CartItem, 0, len(lines))
		for pos, l := range lines {
			items = append(items, models.CartItem{
				CartID:       row.CartID,
				Position:     pos,
				ProductID:    l.ProductID,
				ProductName:  l.Name,
				ProductImage: l.ImageURL,
				SellerID:     l.SellerID,
				UnitPrice:    l.UnitPrice,
				Quantity:     l.Quantity,
				AddedAt:      time.Now(),
			})
		}
		return tx.Create(&items).Error
	})
}

func (p *GormPersister) Drop(shopperID string) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		var row models.Cart
		err := tx.Where("shopper_id = ?", shopperID).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", row.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
}
