package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name             string          `json:"name" binding:"required,min=1,max=200"`
	Category         string          `json:"category" binding:"max=100"`
	SmallestUnit     string          `json:"smallest_unit" binding:"required,min=1,max=50"`
	LargestUnit      string          `json:"largest_unit" binding:"max=50"`
	ConversionFactor decimal.Decimal `json:"conversion_factor" binding:"required"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name             *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Category         *string          `json:"category" binding:"omitempty,max=100"`
	SmallestUnit     *string          `json:"smallest_unit" binding:"omitempty,min=1,max=50"`
	LargestUnit      *string          `json:"largest_unit" binding:"omitempty,max=50"`
	ConversionFactor *decimal.Decimal `json:"conversion_factor"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	SmallestUnit     string          `json:"smallest_unit"`
	LargestUnit      string          `json:"largest_unit"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func productResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		SmallestUnit:     p.SmallestUnit,
		LargestUnit:      p.LargestUnit,
		ConversionFactor: p.ConversionFactor,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// CreateAssetRequest represents a request to create a new asset
type CreateAssetRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	Value        decimal.Decimal `json:"value" binding:"required"`
	PurchaseDate string          `json:"purchase_date" binding:"max=30"`
	Notes        string          `json:"notes" binding:"max=2000"`
}

// UpdateAssetRequest represents a request to update an asset
type UpdateAssetRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Value        *decimal.Decimal `json:"value"`
	PurchaseDate *string          `json:"purchase_date" binding:"omitempty,max=30"`
	Notes        *string          `json:"notes" binding:"omitempty,max=2000"`
}

// AssetResponse represents an asset in API responses
type AssetResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Value        decimal.Decimal `json:"value"`
	PurchaseDate string          `json:"purchase_date"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func assetResponse(a *catalog.Asset) *AssetResponse {
	return &AssetResponse{
		ID:           a.ID,
		Name:         a.Name,
		Value:        a.Value,
		PurchaseDate: a.PurchaseDate,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
