package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/FalcurmartEsui/shopfront-forge-37/models"
)

// GormStore implements OrderStore on the orders / order_items tables.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func (s *GormStore) CreateOrder(ctx context.Context, h OrderHeader) (string, error) {
	order := models.Order{
		ID:              uuid.NewString(),
		OrderRef:        generateOrderRef(),
		SellerID:        h.SellerID,
		CustomerID:      h.Customer.ID,
		CustomerName:    h.Customer.Name,
		CustomerEmail:   h.Customer.Email,
		CustomerPhone:   h.Customer.Phone,
		ShippingAddress: h.Customer.ShippingAddress,
		TotalAmount:     h.TotalAmount,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return "", err
	}
	return order.ID, nil
}

// CreateOrderItems writes the group's line items and deducts stock in one
// transaction. Product rows are locked so concurrent checkouts cannot
// oversell.
func (s *GormStore) CreateOrderItems(ctx context.Context, orderID string, items []OrderItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", it.ProductID).Error; err != nil {
				return err
			}
			if product.StockQuantity < it.Quantity {
				return errors.New("insufficient stock for product: " + product.Name)
			}
			product.StockQuantity -= it.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			rows = append(rows, models.OrderItem{
				OrderID:     orderID,
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				UnitPrice:   it.UnitPrice,
				Quantity:    it.Quantity,
			})
		}
		return tx.Create(&rows).Error
	})
}
