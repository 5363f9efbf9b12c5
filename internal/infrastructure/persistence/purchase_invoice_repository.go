package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hisabat/backend/internal/domain/shared"
	"github.com/hisabat/backend/internal/domain/trade"
	"github.com/hisabat/backend/internal/infrastructure/persistence/models"
)

// GormPurchaseInvoiceRepository implements trade.PurchaseInvoiceRepository using GORM
type GormPurchaseInvoiceRepository struct {
	db *gorm.DB
}

// NewGormPurchaseInvoiceRepository creates a new GormPurchaseInvoiceRepository
func NewGormPurchaseInvoiceRepository(db *gorm.DB) *GormPurchaseInvoiceRepository {
	return &GormPurchaseInvoiceRepository{db: db}
}

// FindByID finds a purchase invoice with its items
func (r *GormPurchaseInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseInvoice, error) {
	var model models.PurchaseInvoiceModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all purchase invoices with their items, newest first
func (r *GormPurchaseInvoiceRepository) List(ctx context.Context) ([]*trade.PurchaseInvoice, error) {
	var rows []models.PurchaseInvoiceModel
	if err := r.db.WithContext(ctx).Preload("Items").Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	invoices := make([]*trade.PurchaseInvoice, len(rows))
	for i := range rows {
		invoices[i] = rows[i].ToDomain()
	}
	return invoices, nil
}

// Save creates or updates a purchase invoice together with its items
func (r *GormPurchaseInvoiceRepository) Save(ctx context.Context, invoice *trade.PurchaseInvoice) error {
	model := models.PurchaseInvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(model).Error; err != nil {
			return err
		}
		// Lines removed from the aggregate must also leave the table.
		keep := make([]uuid.UUID, len(model.Items))
		for i := range model.Items {
			keep[i] = model.Items[i].ID
		}
		stale := tx.Where("invoice_id = ?", model.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		return stale.Delete(&models.PurchaseInvoiceItemModel{}).Error
	})
}

// Delete removes a purchase invoice and its items
func (r *GormPurchaseInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PurchaseInvoiceItemModel{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PurchaseInvoiceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
