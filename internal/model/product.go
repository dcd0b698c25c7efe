package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents one catalog entry in the bottle shop inventory.
// Products are never deleted; discontinued items simply run down to zero
// stock.
type Product struct {
	ID             uint            `json:"id" gorm:"primarykey"`
	Name           string          `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Brand          string          `json:"brand" gorm:"type:varchar(255)"`
	Type           string          `json:"type" gorm:"type:varchar(100);column:type"`
	ABV            *float64        `json:"abv,omitempty" gorm:"column:abv"`
	VolumeML       *int            `json:"volume_ml,omitempty" gorm:"column:volume_ml"`
	OriginCountry  *string         `json:"origin_country,omitempty" gorm:"type:varchar(100)"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	QuantityOnHand int             `json:"quantity_on_hand" gorm:"not null;default:0"`
	Description    *string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TableName keeps the table compatible with the existing store layout.
func (Product) TableName() string {
	return "products"
}
