package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service answers read-only reporting queries. Nothing here mutates the
// store.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// LowStockEntry is one row of the low stock report.
type LowStockEntry struct {
	ID             uint            `csv:"id" json:"id"`
	Name           string          `csv:"name" json:"name"`
	Brand          string          `csv:"brand" json:"brand"`
	QuantityOnHand int             `csv:"quantity_on_hand" json:"quantity_on_hand"`
	Price          decimal.Decimal `csv:"price" json:"price"`
}

// LowStock lists products below the threshold, lowest stock first.
func (s *Service) LowStock(ctx context.Context, threshold int) ([]LowStockEntry, error) {
	var entries []LowStockEntry
	err := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("id", "name", "brand", "quantity_on_hand", "price").
		Where("quantity_on_hand < ?", threshold).
		Order("quantity_on_hand ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("query low stock: %w", err)
	}
	return entries, nil
}

// InventoryValue sums price times quantity on hand over the whole catalog.
// The sum is computed in Go so money stays in decimal arithmetic.
func (s *Service) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var rows []struct {
		Price          decimal.Decimal
		QuantityOnHand int
	}
	err := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("price", "quantity_on_hand").
		Scan(&rows).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("query inventory value: %w", err)
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Price.Mul(decimal.NewFromInt(int64(row.QuantityOnHand))))
	}
	return total, nil
}

// SalesHistory returns all committed transactions, oldest first.
func (s *Service) SalesHistory(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := s.db.WithContext(ctx).
		Order("transaction_id ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("query sales history: %w", err)
	}
	return transactions, nil
}

// ReceiptItem is one line of a printed receipt, joined with the live product
// name for display. Quantity and price are the values captured at sale time.
type ReceiptItem struct {
	Name        string
	Quantity    int
	PriceAtSale decimal.Decimal
}

// LineTotal returns quantity times the price captured at sale time.
func (i ReceiptItem) LineTotal() decimal.Decimal {
	return i.PriceAtSale.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TransactionDetails is a full receipt: the immutable header plus its items
// in the order they were rung up.
type TransactionDetails struct {
	Transaction model.Transaction
	Items       []ReceiptItem
}

// TransactionDetails fetches one committed sale; a nil result means the
// transaction does not exist.
func (s *Service) TransactionDetails(ctx context.Context, transactionID uint) (*TransactionDetails, error) {
	var transaction model.Transaction
	err := s.db.WithContext(ctx).First(&transaction, transactionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query transaction: %w", err)
	}

	var items []ReceiptItem
	err = s.db.WithContext(ctx).
		Table("transaction_items").
		Select("products.name", "transaction_items.quantity", "transaction_items.price_at_sale").
		Joins("JOIN products ON products.id = transaction_items.product_id").
		Where("transaction_items.transaction_id = ?", transactionID).
		Order("transaction_items.item_id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("query transaction items: %w", err)
	}

	return &TransactionDetails{Transaction: transaction, Items: items}, nil
}
