package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the header row of one committed sale. It is written exactly
// once and never mutated afterwards.
type Transaction struct {
	ID          uint            `json:"id" gorm:"primarykey;column:transaction_id"`
	Reference   string          `json:"reference" gorm:"type:varchar(36);uniqueIndex"`
	Timestamp   time.Time       `json:"timestamp" gorm:"not null"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionItem is one line of a committed sale. PriceAtSale is captured at
// commit time and does not track later catalog price changes.
type TransactionItem struct {
	ID            uint            `json:"id" gorm:"primarykey;column:item_id"`
	TransactionID uint            `json:"transaction_id" gorm:"index;not null"`
	ProductID     uint            `json:"product_id" gorm:"index;not null"`
	Quantity      int             `json:"quantity" gorm:"not null"`
	PriceAtSale   decimal.Decimal `json:"price_at_sale" gorm:"type:decimal(10,2);not null"`
}

func (TransactionItem) TableName() string {
	return "transaction_items"
}
