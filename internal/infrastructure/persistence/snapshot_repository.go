package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/hisabat/backend/internal/domain/report"
	"github.com/hisabat/backend/internal/infrastructure/persistence/models"
)

// GormSnapshotRepository materializes the full analytics snapshot from the
// database. Every collection is loaded unfiltered; the engine owns all
// filtering, so the queries here stay deliberately dumb.
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GormSnapshotRepository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Load reads every collection the engine computes over into memory.
func (r *GormSnapshotRepository) Load(ctx context.Context) (*report.Snapshot, error) {
	db := r.db.WithContext(ctx)
	snap := &report.Snapshot{}

	var products []models.ProductModel
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	snap.Products = make([]report.Product, len(products))
	for i, p := range products {
		snap.Products[i] = report.Product{
			ID:               p.ID.String(),
			Name:             p.Name,
			Category:         p.Category,
			SmallestUnit:     p.SmallestUnit,
			LargestUnit:      p.LargestUnit,
			ConversionFactor: p.ConversionFactor,
		}
	}

	var purchases []models.PurchaseInvoiceModel
	if err := db.Find(&purchases).Error; err != nil {
		return nil, err
	}
	snap.PurchaseInvoices = make([]report.PurchaseInvoice, len(purchases))
	for i, inv := range purchases {
		snap.PurchaseInvoices[i] = report.PurchaseInvoice{
			ID:         inv.ID.String(),
			SupplierID: inv.SupplierID.String(),
			Date:       inv.Date,
			Total:      inv.Total,
			Paid:       inv.Paid,
			Remaining:  inv.Remaining,
		}
	}

	var purchaseItems []models.PurchaseInvoiceItemModel
	if err := db.Find(&purchaseItems).Error; err != nil {
		return nil, err
	}
	snap.PurchaseItems = make([]report.PurchaseItem, len(purchaseItems))
	for i, item := range purchaseItems {
		snap.PurchaseItems[i] = report.PurchaseItem{
			InvoiceID: item.InvoiceID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Unit:      report.Unit(item.Unit),
			UnitPrice: item.UnitPrice,
		}
	}

	var sales []models.SalesInvoiceModel
	if err := db.Find(&sales).Error; err != nil {
		return nil, err
	}
	snap.SalesInvoices = make([]report.SalesInvoice, len(sales))
	for i, inv := range sales {
		snap.SalesInvoices[i] = report.SalesInvoice{
			ID:         inv.ID.String(),
			CustomerID: inv.CustomerID.String(),
			Date:       inv.Date,
			Total:      inv.Total,
			Paid:       inv.Paid,
			Remaining:  inv.Remaining,
		}
	}

	var salesItems []models.SalesInvoiceItemModel
	if err := db.Find(&salesItems).Error; err != nil {
		return nil, err
	}
	snap.SalesItems = make([]report.SalesItem, len(salesItems))
	for i, item := range salesItems {
		snap.SalesItems[i] = report.SalesItem{
			InvoiceID: item.InvoiceID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Unit:      report.Unit(item.Unit),
			UnitPrice: item.UnitPrice,
		}
	}

	var expenses []models.ExpenseModel
	if err := db.Find(&expenses).Error; err != nil {
		return nil, err
	}
	snap.Expenses = make([]report.Expense, len(expenses))
	for i, e := range expenses {
		snap.Expenses[i] = report.Expense{
			ID:       e.ID.String(),
			Date:     e.Date,
			Amount:   e.Amount,
			Category: e.Category,
		}
	}

	var customers []models.CustomerModel
	if err := db.Find(&customers).Error; err != nil {
		return nil, err
	}
	snap.Customers = make([]report.Customer, len(customers))
	for i, c := range customers {
		snap.Customers[i] = report.Customer{ID: c.ID.String(), Name: c.Name}
	}

	var suppliers []models.SupplierModel
	if err := db.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	snap.Suppliers = make([]report.Supplier, len(suppliers))
	for i, s := range suppliers {
		snap.Suppliers[i] = report.Supplier{ID: s.ID.String(), Name: s.Name}
	}

	return snap, nil
}
