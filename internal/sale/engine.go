package sale

import (
	"context"
	"time"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/inventory"
	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Receipt identifies a committed sale. The transaction id is handed back to
// the caller, which owns any "last sale" session state.
type Receipt struct {
	TransactionID uint
	Reference     string
	Timestamp     time.Time
	Total         decimal.Decimal
}

// Engine durably and atomically records sales and their stock impact.
type Engine struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewEngine(db *gorm.DB, log *zap.Logger) *Engine {
	return &Engine{db: db, log: log}
}

// CommitSale records the sale header, one item row per cart line, and the
// stock decrement for every referenced product as a single database
// transaction. Stock is re-read per line inside that transaction: cart
// assembly works from a snapshot that may have gone stale, so the snapshot
// is never trusted at commit time. Any failure rolls the whole unit back;
// no partial sale is ever visible.
func (e *Engine) CommitSale(ctx context.Context, lines []CartLine, total decimal.Decimal) (*Receipt, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	receipt := &Receipt{Total: total}
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txn := model.Transaction{
			Reference:   uuid.NewString(),
			Timestamp:   time.Now(),
			TotalAmount: total,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return &StoreError{Op: "insert transaction", Err: err}
		}

		for _, line := range lines {
			item := model.TransactionItem{
				TransactionID: txn.ID,
				ProductID:     line.ProductID,
				Quantity:      line.Quantity,
				PriceAtSale:   line.UnitPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return &StoreError{Op: "insert transaction item", Err: err}
			}

			// Fresh read inside the transaction; the stale-read guard.
			level, err := inventory.StockOf(tx, line.ProductID)
			if err != nil {
				return &StoreError{Op: "read stock", Err: err}
			}
			if level == nil {
				return &ProductNotFoundError{ProductID: line.ProductID}
			}
			if level.Quantity < line.Quantity {
				return &InsufficientStockError{
					ProductID: line.ProductID,
					Name:      level.Name,
					Available: level.Quantity,
					Requested: line.Quantity,
				}
			}

			// Guarded decrement. A committer that slipped in between the
			// read above and this write still cannot push stock negative.
			result := tx.Model(&model.Product{}).
				Where("id = ? AND quantity_on_hand >= ?", line.ProductID, line.Quantity).
				Update("quantity_on_hand", gorm.Expr("quantity_on_hand - ?", line.Quantity))
			if result.Error != nil {
				return &StoreError{Op: "decrement stock", Err: result.Error}
			}
			if result.RowsAffected == 0 {
				return &InsufficientStockError{
					ProductID: line.ProductID,
					Name:      level.Name,
					Available: level.Quantity,
					Requested: line.Quantity,
				}
			}
		}

		receipt.TransactionID = txn.ID
		receipt.Reference = txn.Reference
		receipt.Timestamp = txn.Timestamp
		return nil
	})
	if err != nil {
		e.log.Warn("sale aborted",
			zap.Int("lines", len(lines)),
			zap.String("total", total.StringFixed(2)),
			zap.Error(err))
		return nil, err
	}

	e.log.Info("sale committed",
		zap.Uint("transaction_id", receipt.TransactionID),
		zap.String("reference", receipt.Reference),
		zap.Int("lines", len(lines)),
		zap.String("total", total.StringFixed(2)))
	return receipt, nil
}
