package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNoData            = errors.New("no data to export")
	ErrProtectedFilename = errors.New("filename is protected and cannot be overwritten")
	ErrUnsupportedFormat = errors.New("export format must be .csv or .json")
)

// Filenames the export flow must never clobber, regardless of what the
// operator types.
var protectedFilenames = map[string]struct{}{
	"inventory.db": {},
	".env":         {},
	"go.mod":       {},
	"go.sum":       {},
}

// ProductExportRow mirrors the persisted product layout for file export.
type ProductExportRow struct {
	ID             uint            `csv:"id" json:"id"`
	Name           string          `csv:"name" json:"name"`
	Brand          string          `csv:"brand" json:"brand"`
	Type           string          `csv:"type" json:"type"`
	ABV            *float64        `csv:"abv" json:"abv"`
	VolumeML       *int            `csv:"volume_ml" json:"volume_ml"`
	OriginCountry  *string         `csv:"origin_country" json:"origin_country"`
	Price          decimal.Decimal `csv:"price" json:"price"`
	QuantityOnHand int             `csv:"quantity_on_hand" json:"quantity_on_hand"`
	Description    *string         `csv:"description" json:"description"`
}

func checkFilename(filename string) (string, error) {
	base := strings.ToLower(filepath.Base(filename))
	if _, protected := protectedFilenames[base]; protected {
		return "", ErrProtectedFilename
	}
	switch filepath.Ext(base) {
	case ".csv", ".json":
		return filepath.Ext(base), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func writeExport(data interface{}, filename, ext string) error {
	switch ext {
	case ".csv":
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer file.Close()
		if err := gocsv.MarshalFile(data, file); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	case ".json":
		payload, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		if err := os.WriteFile(filename, payload, 0o644); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	}
	return nil
}

// ExportLowStockReport writes the low stock report to a CSV or JSON file,
// chosen by extension.
func (s *Service) ExportLowStockReport(ctx context.Context, threshold int, filename string) error {
	ext, err := checkFilename(filename)
	if err != nil {
		return err
	}
	entries, err := s.LowStock(ctx, threshold)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrNoData
	}
	if err := writeExport(&entries, filename, ext); err != nil {
		return err
	}
	s.log.Info("low stock report exported",
		zap.String("filename", filename),
		zap.Int("rows", len(entries)))
	return nil
}

// ExportProductList writes the full catalog to a CSV or JSON file, chosen by
// extension.
func (s *Service) ExportProductList(ctx context.Context, filename string) error {
	ext, err := checkFilename(filename)
	if err != nil {
		return err
	}

	var rows []ProductExportRow
	err = s.db.WithContext(ctx).
		Model(&model.Product{}).
		Order("name ASC").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("query products: %w", err)
	}
	if len(rows) == 0 {
		return ErrNoData
	}
	if err := writeExport(&rows, filename, ext); err != nil {
		return err
	}
	s.log.Info("product list exported",
		zap.String("filename", filename),
		zap.Int("rows", len(rows)))
	return nil
}
