package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartLine is one pending product+quantity entry. It lives in memory only,
// until the cart is committed or abandoned. UnitPrice is captured when the
// line is added so later catalog price edits do not change a sale in
// progress.
type CartLine struct {
	ProductID uint
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal returns quantity times unit price.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates lines for one interactive sale session.
type Cart struct {
	lines []CartLine
}

// Lines returns the cart contents in the order they were added.
func (c *Cart) Lines() []CartLine {
	return c.lines
}

// Total sums quantity times unit price across all lines. This is the value
// handed to the engine at commit; the engine stores it as-is.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// Reserved returns the quantity of a product already held in the cart.
func (c *Cart) Reserved(productID uint) int {
	reserved := 0
	for _, line := range c.lines {
		if line.ProductID == productID {
			reserved += line.Quantity
		}
	}
	return reserved
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear discards all lines, for cancellation or after a successful commit.
func (c *Cart) Clear() {
	c.lines = nil
}

// CartBuilder accumulates cart lines with an advisory availability check
// against live stock. The check is best-effort UX only; the engine performs
// the authoritative re-check at commit time.
type CartBuilder struct {
	db   *gorm.DB
	cart Cart
}

func NewCartBuilder(db *gorm.DB) *CartBuilder {
	return &CartBuilder{db: db}
}

// AddItem validates the request against live stock plus what the cart has
// already reserved for the same product, then appends a line priced at the
// current catalog price.
func (b *CartBuilder) AddItem(ctx context.Context, productID uint, quantity int) (*CartLine, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var product model.Product
	err := b.db.WithContext(ctx).
		Select("id", "name", "price", "quantity_on_hand").
		First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ProductNotFoundError{ProductID: productID}
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}

	reserved := b.cart.Reserved(productID)
	if product.QuantityOnHand < reserved+quantity {
		return nil, &InsufficientStockError{
			ProductID: product.ID,
			Name:      product.Name,
			Available: product.QuantityOnHand,
			InCart:    reserved,
			Requested: quantity,
		}
	}

	line := CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  quantity,
		UnitPrice: product.Price,
	}
	b.cart.lines = append(b.cart.lines, line)
	return &line, nil
}

// Cart exposes the accumulated cart.
func (b *CartBuilder) Cart() *Cart {
	return &b.cart
}
