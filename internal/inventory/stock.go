package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrNegativeQuantity = errors.New("stock quantity cannot be negative")
	ErrLossExceedsStock = errors.New("recorded loss exceeds stock on hand")
)

// StockLevel is a product's display name and current on-hand quantity.
type StockLevel struct {
	ProductID uint
	Name      string
	Quantity  int
}

// StockMovement describes the before/after of a receiving or loss
// adjustment.
type StockMovement struct {
	ProductID uint
	Name      string
	Previous  int
	Applied   int
	New       int
}

// StockOf reads the live stock level of one product. db may be a plain
// session or an open transaction, which is how the sale engine's commit-time
// re-check shares this path. A nil result means the product does not exist.
func StockOf(db *gorm.DB, productID uint) (*StockLevel, error) {
	var product model.Product
	err := db.Select("id", "name", "quantity_on_hand").First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query stock: %w", err)
	}
	return &StockLevel{ProductID: product.ID, Name: product.Name, Quantity: product.QuantityOnHand}, nil
}

// SetStockLevel writes an absolute quantity_on_hand value. Returns false
// when the product does not exist.
func SetStockLevel(db *gorm.DB, productID uint, quantity int) (bool, error) {
	if quantity < 0 {
		return false, ErrNegativeQuantity
	}
	result := db.Model(&model.Product{}).
		Where("id = ?", productID).
		Update("quantity_on_hand", quantity)
	if result.Error != nil {
		return false, fmt.Errorf("update stock: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Store exposes the stock flows used by the receiving and loss menus.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStore(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// GetStock returns the current stock level for a product.
func (s *Store) GetStock(ctx context.Context, productID uint) (*StockLevel, error) {
	level, err := StockOf(s.db.WithContext(ctx), productID)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, ErrProductNotFound
	}
	return level, nil
}

// SetStock overwrites a product's stock level with an absolute value.
func (s *Store) SetStock(ctx context.Context, productID uint, quantity int) error {
	ok, err := SetStockLevel(s.db.WithContext(ctx), productID, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	s.log.Info("stock level set",
		zap.Uint("product_id", productID),
		zap.Int("quantity", quantity))
	return nil
}

// ReceiveStock adds a delivery to a product's stock level. The read and the
// write run in one transaction so a sale committing in between cannot be
// overwritten.
func (s *Store) ReceiveStock(ctx context.Context, productID uint, quantity int) (*StockMovement, error) {
	if quantity <= 0 {
		return nil, ErrNegativeQuantity
	}
	return s.adjust(ctx, productID, quantity)
}

// LogLoss records breakage, theft or spoilage. Losses that would take stock
// negative are rejected.
func (s *Store) LogLoss(ctx context.Context, productID uint, quantity int) (*StockMovement, error) {
	if quantity <= 0 {
		return nil, ErrNegativeQuantity
	}
	return s.adjust(ctx, productID, -quantity)
}

func (s *Store) adjust(ctx context.Context, productID uint, delta int) (*StockMovement, error) {
	var movement *StockMovement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		level, err := StockOf(tx, productID)
		if err != nil {
			return err
		}
		if level == nil {
			return ErrProductNotFound
		}
		newQuantity := level.Quantity + delta
		if newQuantity < 0 {
			return ErrLossExceedsStock
		}
		if _, err := SetStockLevel(tx, productID, newQuantity); err != nil {
			return err
		}
		movement = &StockMovement{
			ProductID: productID,
			Name:      level.Name,
			Previous:  level.Quantity,
			Applied:   delta,
			New:       newQuantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("stock adjusted",
		zap.Uint("product_id", productID),
		zap.Int("previous", movement.Previous),
		zap.Int("applied", movement.Applied),
		zap.Int("new", movement.New))
	return movement, nil
}
