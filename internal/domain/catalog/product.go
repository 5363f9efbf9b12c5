package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/shared"
)

// Product is a stocked item sold in two units of measure: a smallest unit
// (e.g. piece) and a largest unit (e.g. carton). ConversionFactor is how many
// smallest units one largest unit holds.
type Product struct {
	ID               uuid.UUID
	Name             string
	Category         string
	SmallestUnit     string
	LargestUnit      string
	ConversionFactor decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

var one = decimal.NewFromInt(1)

// NewProduct creates a product. The conversion factor must be at least 1; a
// product sold in a single unit uses factor 1 with identical unit labels.
func NewProduct(name, category, smallestUnit, largestUnit string, conversionFactor decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if smallestUnit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Smallest unit label cannot be empty")
	}
	if largestUnit == "" {
		largestUnit = smallestUnit
	}
	if conversionFactor.LessThan(one) {
		return nil, shared.NewDomainError("INVALID_CONVERSION_FACTOR", "Conversion factor must be at least 1")
	}

	now := time.Now()
	return &Product{
		ID:               uuid.New(),
		Name:             name,
		Category:         category,
		SmallestUnit:     smallestUnit,
		LargestUnit:      largestUnit,
		ConversionFactor: conversionFactor,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Rename updates the product's display name.
func (p *Product) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	return nil
}

// ProductRepository persists products.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
