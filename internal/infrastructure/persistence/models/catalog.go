package models

import (
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name             string          `gorm:"type:varchar(200);not null;index"`
	Category         string          `gorm:"type:varchar(100);index"`
	SmallestUnit     string          `gorm:"type:varchar(50);not null"`
	LargestUnit      string          `gorm:"type:varchar(50);not null"`
	ConversionFactor decimal.Decimal `gorm:"type:decimal(18,4);not null;default:1"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		ID:               m.ID,
		Name:             m.Name,
		Category:         m.Category,
		SmallestUnit:     m.SmallestUnit,
		LargestUnit:      m.LargestUnit,
		ConversionFactor: m.ConversionFactor,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ProductModelFromDomain creates a persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	return &ProductModel{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		Name:             p.Name,
		Category:         p.Category,
		SmallestUnit:     p.SmallestUnit,
		LargestUnit:      p.LargestUnit,
		ConversionFactor: p.ConversionFactor,
	}
}

// AssetModel is the persistence model for the Asset domain entity.
type AssetModel struct {
	BaseModel
	Name         string          `gorm:"type:varchar(200);not null"`
	Value        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PurchaseDate string          `gorm:"type:varchar(30);index"`
	Notes        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AssetModel) TableName() string {
	return "assets"
}

// ToDomain converts the persistence model to a domain Asset entity.
func (m *AssetModel) ToDomain() *catalog.Asset {
	return &catalog.Asset{
		ID:           m.ID,
		Name:         m.Name,
		Value:        m.Value,
		PurchaseDate: m.PurchaseDate,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// AssetModelFromDomain creates a persistence model from a domain Asset entity.
func AssetModelFromDomain(a *catalog.Asset) *AssetModel {
	return &AssetModel{
		BaseModel: BaseModel{
			ID:        a.ID,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		},
		Name:         a.Name,
		Value:        a.Value,
		PurchaseDate: a.PurchaseDate,
		Notes:        a.Notes,
	}
}
