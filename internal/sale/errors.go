package sale

import (
	"errors"
	"fmt"
)

// ErrEmptyCart rejects a commit with zero line items before any store
// access.
var ErrEmptyCart = errors.New("cannot process empty cart")

// ErrInvalidQuantity rejects non-positive line quantities at cart-add time.
var ErrInvalidQuantity = errors.New("quantity must be a positive number")

// ProductNotFoundError reports a cart line whose product no longer exists.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ProductID)
}

// InsufficientStockError reports a requested quantity the live stock cannot
// cover. InCart is only set by the advisory cart-side check, where the
// quantity already reserved in the cart counts against availability.
type InsufficientStockError struct {
	ProductID uint
	Name      string
	Available int
	InCart    int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	if e.InCart > 0 {
		return fmt.Sprintf(
			"insufficient stock for %s: available %d, already in cart %d, requested %d, total needed %d",
			e.Name, e.Available, e.InCart, e.Requested, e.InCart+e.Requested)
	}
	return fmt.Sprintf("insufficient stock for product %d: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

// StoreError wraps a failure raised by the underlying store. The whole sale
// is rolled back and the original error surfaces to the caller.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
