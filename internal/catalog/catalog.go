package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateName = errors.New("product name already exists")
	ErrNoFields      = errors.New("no valid fields to update")
)

// ValidationError collects everything wrong with a submitted product form so
// the operator can fix it in one pass.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// NewProduct carries operator input for a catalog insert.
type NewProduct struct {
	Name          string
	Brand         string
	Type          string
	ABV           *float64
	VolumeML      *int
	OriginCountry *string
	Price         decimal.Decimal
	InitialStock  int
	Description   *string
}

func (p NewProduct) validate() error {
	var problems []string
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "Product name is required")
	}
	if strings.TrimSpace(p.Brand) == "" {
		problems = append(problems, "Brand name is required")
	}
	if strings.TrimSpace(p.Type) == "" {
		problems = append(problems, "Product type is required")
	}
	if p.Price.IsNegative() {
		problems = append(problems, "Price must be non-negative")
	}
	if p.InitialStock < 0 {
		problems = append(problems, "Initial stock quantity must be non-negative")
	}
	if p.ABV != nil && (*p.ABV < 0 || *p.ABV > 100) {
		problems = append(problems, "ABV must be between 0 and 100")
	}
	if p.VolumeML != nil && *p.VolumeML <= 0 {
		problems = append(problems, "Volume must be greater than 0")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ProductUpdate carries a partial edit; nil fields are left unchanged.
type ProductUpdate struct {
	Name           *string
	Brand          *string
	Type           *string
	ABV            *float64
	VolumeML       *int
	OriginCountry  *string
	Price          *decimal.Decimal
	QuantityOnHand *int
	Description    *string
}

func (u ProductUpdate) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Brand != nil {
		changes["brand"] = *u.Brand
	}
	if u.Type != nil {
		changes["type"] = *u.Type
	}
	if u.ABV != nil {
		changes["abv"] = *u.ABV
	}
	if u.VolumeML != nil {
		changes["volume_ml"] = *u.VolumeML
	}
	if u.OriginCountry != nil {
		changes["origin_country"] = *u.OriginCountry
	}
	if u.Price != nil {
		changes["price"] = *u.Price
	}
	if u.QuantityOnHand != nil {
		changes["quantity_on_hand"] = *u.QuantityOnHand
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	return changes
}

// Store provides the catalog CRUD used by the product management menus.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStore(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// AddProduct validates and inserts a new product.
func (s *Store) AddProduct(ctx context.Context, input NewProduct) (*model.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	product := model.Product{
		Name:           strings.TrimSpace(input.Name),
		Brand:          strings.TrimSpace(input.Brand),
		Type:           strings.TrimSpace(input.Type),
		ABV:            input.ABV,
		VolumeML:       input.VolumeML,
		OriginCountry:  input.OriginCountry,
		Price:          input.Price,
		QuantityOnHand: input.InitialStock,
		Description:    input.Description,
	}
	err := s.db.WithContext(ctx).Create(&product).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	s.log.Info("product added",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("price", product.Price.StringFixed(2)),
		zap.Int("initial_stock", product.QuantityOnHand))
	return &product, nil
}

// UpdateProduct applies a partial edit to an existing product.
func (s *Store) UpdateProduct(ctx context.Context, productID uint, update ProductUpdate) error {
	changes := update.changes()
	if len(changes) == 0 {
		return ErrNoFields
	}
	if price, ok := changes["price"]; ok {
		if price.(decimal.Decimal).IsNegative() {
			return &ValidationError{Problems: []string{"Price must be non-negative"}}
		}
	}
	if quantity, ok := changes["quantity_on_hand"]; ok {
		if quantity.(int) < 0 {
			return &ValidationError{Problems: []string{"Stock quantity must be non-negative"}}
		}
	}

	result := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(changes)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return ErrDuplicateName
	}
	if result.Error != nil {
		return fmt.Errorf("update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.log.Info("product updated",
		zap.Uint("product_id", productID),
		zap.Int("fields", len(changes)))
	return nil
}

// GetProduct fetches one product; a nil result means it does not exist.
func (s *Store) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &product, nil
}

// ListProducts returns the full catalog in name order.
func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Search matches products by name or brand, case-insensitive substring.
func (s *Store) Search(ctx context.Context, term string) ([]model.Product, error) {
	pattern := "%" + strings.TrimSpace(term) + "%"
	var products []model.Product
	err := s.db.WithContext(ctx).
		Where("name LIKE ? OR brand LIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}
