package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hisabat/backend/internal/domain/catalog"
	"github.com/hisabat/backend/internal/domain/shared"
	"github.com/hisabat/backend/internal/infrastructure/persistence/models"
)

// GormAssetRepository implements catalog.AssetRepository using GORM
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GormAssetRepository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

// FindByID finds an asset by its ID
func (r *GormAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Asset, error) {
	var model models.AssetModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all assets ordered by purchase date
func (r *GormAssetRepository) List(ctx context.Context) ([]*catalog.Asset, error) {
	var rows []models.AssetModel
	if err := r.db.WithContext(ctx).Order("purchase_date").Find(&rows).Error; err != nil {
		return nil, err
	}
	assets := make([]*catalog.Asset, len(rows))
	for i := range rows {
		assets[i] = rows[i].ToDomain()
	}
	return assets, nil
}

// Save creates or updates an asset
func (r *GormAssetRepository) Save(ctx context.Context, asset *catalog.Asset) error {
	model := models.AssetModelFromDomain(asset)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an asset by ID
func (r *GormAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AssetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
