package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hisabat/backend/internal/domain/finance"
	"github.com/hisabat/backend/internal/domain/shared"
	"github.com/hisabat/backend/internal/infrastructure/persistence/models"
)

// GormVoucherRepository implements finance.VoucherRepository using GORM
type GormVoucherRepository struct {
	db *gorm.DB
}

// NewGormVoucherRepository creates a new GormVoucherRepository
func NewGormVoucherRepository(db *gorm.DB) *GormVoucherRepository {
	return &GormVoucherRepository{db: db}
}

// FindByID finds a voucher by its ID
func (r *GormVoucherRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Voucher, error) {
	var model models.VoucherModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListByKind returns all vouchers of one kind, newest first
func (r *GormVoucherRepository) ListByKind(ctx context.Context, kind finance.VoucherKind) ([]*finance.Voucher, error) {
	var rows []models.VoucherModel
	if err := r.db.WithContext(ctx).Where("kind = ?", string(kind)).Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	vouchers := make([]*finance.Voucher, len(rows))
	for i := range rows {
		vouchers[i] = rows[i].ToDomain()
	}
	return vouchers, nil
}

// Save creates or updates a voucher
func (r *GormVoucherRepository) Save(ctx context.Context, voucher *finance.Voucher) error {
	model := models.VoucherModelFromDomain(voucher)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a voucher by ID
func (r *GormVoucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.VoucherModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
