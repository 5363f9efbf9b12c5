package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/shared"
)

// Asset is a fixed asset of the business (equipment, vehicles, furniture).
// Assets never enter cost valuation; they only appear on the assets screen
// and in the dashboard totals.
type Asset struct {
	ID           uuid.UUID
	Name         string
	Value        decimal.Decimal
	PurchaseDate string // ISO date
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAsset creates an asset record.
func NewAsset(name string, value decimal.Decimal, purchaseDate, notes string) (*Asset, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ASSET_NAME", "Asset name cannot be empty")
	}
	if value.IsNegative() {
		return nil, shared.NewDomainError("INVALID_ASSET_VALUE", "Asset value cannot be negative")
	}

	now := time.Now()
	return &Asset{
		ID:           uuid.New(),
		Name:         name,
		Value:        value,
		PurchaseDate: purchaseDate,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AssetRepository persists assets.
type AssetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Asset, error)
	List(ctx context.Context) ([]*Asset, error)
	Save(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
}
