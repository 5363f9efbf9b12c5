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

// GormSalesInvoiceRepository implements trade.SalesInvoiceRepository using GORM
type GormSalesInvoiceRepository struct {
	db *gorm.DB
}

// NewGormSalesInvoiceRepository creates a new GormSalesInvoiceRepository
func NewGormSalesInvoiceRepository(db *gorm.DB) *GormSalesInvoiceRepository {
	return &GormSalesInvoiceRepository{db: db}
}

// FindByID finds a sales invoice with its items
func (r *GormSalesInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesInvoice, error) {
	var model models.SalesInvoiceModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all sales invoices with their items, newest first
func (r *GormSalesInvoiceRepository) List(ctx context.Context) ([]*trade.SalesInvoice, error) {
	var rows []models.SalesInvoiceModel
	if err := r.db.WithContext(ctx).Preload("Items").Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	invoices := make([]*trade.SalesInvoice, len(rows))
	for i := range rows {
		invoices[i] = rows[i].ToDomain()
	}
	return invoices, nil
}

// Save creates or updates a sales invoice together with its items
func (r *GormSalesInvoiceRepository) Save(ctx context.Context, invoice *trade.SalesInvoice) error {
	model := models.SalesInvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(model).Error; err != nil {
			return err
		}
		keep := make([]uuid.UUID, len(model.Items))
		for i := range model.Items {
			keep[i] = model.Items[i].ID
		}
		stale := tx.Where("invoice_id = ?", model.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		return stale.Delete(&models.SalesInvoiceItemModel{}).Error
	})
}

// Delete removes a sales invoice and its items
func (r *GormSalesInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SalesInvoiceItemModel{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.SalesInvoiceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
