package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hisabat/backend/internal/domain/catalog"
	"github.com/hisabat/backend/internal/domain/shared"
)

// AssetService handles fixed asset CRUD operations
type AssetService struct {
	assets catalog.AssetRepository
}

// NewAssetService creates a new AssetService
func NewAssetService(assets catalog.AssetRepository) *AssetService {
	return &AssetService{assets: assets}
}

// Create creates a new asset
func (s *AssetService) Create(ctx context.Context, req CreateAssetRequest) (*AssetResponse, error) {
	asset, err := catalog.NewAsset(req.Name, req.Value, req.PurchaseDate, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.assets.Save(ctx, asset); err != nil {
		return nil, err
	}
	return assetResponse(asset), nil
}

// Get returns a single asset
func (s *AssetService) Get(ctx context.Context, id uuid.UUID) (*AssetResponse, error) {
	asset, err := s.assets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return assetResponse(asset), nil
}

// List returns all assets
func (s *AssetService) List(ctx context.Context) ([]*AssetResponse, error) {
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*AssetResponse, len(assets))
	for i, a := range assets {
		out[i] = assetResponse(a)
	}
	return out, nil
}

// Update applies a partial update to an asset
func (s *AssetService) Update(ctx context.Context, id uuid.UUID, req UpdateAssetRequest) (*AssetResponse, error) {
	asset, err := s.assets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_ASSET_NAME", "Asset name cannot be empty")
		}
		asset.Name = *req.Name
	}
	if req.Value != nil {
		if req.Value.IsNegative() {
			return nil, shared.NewDomainError("INVALID_ASSET_VALUE", "Asset value cannot be negative")
		}
		asset.Value = *req.Value
	}
	if req.PurchaseDate != nil {
		asset.PurchaseDate = *req.PurchaseDate
	}
	if req.Notes != nil {
		asset.Notes = *req.Notes
	}
	asset.UpdatedAt = time.Now()

	if err := s.assets.Save(ctx, asset); err != nil {
		return nil, err
	}
	return assetResponse(asset), nil
}

// Delete removes an asset
func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.assets.Delete(ctx, id)
}
