package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/trade"
)

// PurchaseInvoiceModel is the persistence model for the PurchaseInvoice aggregate.
type PurchaseInvoiceModel struct {
	BaseModel
	SupplierID uuid.UUID                  `gorm:"type:uuid;not null;index"`
	Date       string                     `gorm:"type:varchar(30);not null;index"`
	Total      decimal.Decimal            `gorm:"type:decimal(18,4);not null;default:0"`
	Paid       decimal.Decimal            `gorm:"type:decimal(18,4);not null;default:0"`
	Remaining  decimal.Decimal            `gorm:"type:decimal(18,4);not null;default:0"`
	Items      []PurchaseInvoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseInvoiceModel) TableName() string {
	return "purchase_invoices"
}

// ToDomain converts the persistence model to a domain PurchaseInvoice entity.
func (m *PurchaseInvoiceModel) ToDomain() *trade.PurchaseInvoice {
	inv := &trade.PurchaseInvoice{
		ID:         m.ID,
		SupplierID: m.SupplierID,
		Date:       m.Date,
		Total:      m.Total,
		Paid:       m.Paid,
		Remaining:  m.Remaining,
		Items:      make([]trade.LineItem, len(m.Items)),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	for i, item := range m.Items {
		inv.Items[i] = item.ToDomain()
	}
	return inv
}

// PurchaseInvoiceModelFromDomain creates a persistence model from a domain PurchaseInvoice.
func PurchaseInvoiceModelFromDomain(inv *trade.PurchaseInvoice) *PurchaseInvoiceModel {
	m := &PurchaseInvoiceModel{
		BaseModel: BaseModel{
			ID:        inv.ID,
			CreatedAt: inv.CreatedAt,
			UpdatedAt: inv.UpdatedAt,
		},
		SupplierID: inv.SupplierID,
		Date:       inv.Date,
		Total:      inv.Total,
		Paid:       inv.Paid,
		Remaining:  inv.Remaining,
		Items:      make([]PurchaseInvoiceItemModel, len(inv.Items)),
	}
	for i, item := range inv.Items {
		m.Items[i] = purchaseItemFromDomain(item)
	}
	return m
}

// PurchaseInvoiceItemModel is the persistence model for a purchase invoice line.
type PurchaseInvoiceItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit      string          `gorm:"type:varchar(20);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseInvoiceItemModel) TableName() string {
	return "purchase_invoice_items"
}

// ToDomain converts the persistence model to a domain LineItem.
func (m *PurchaseInvoiceItemModel) ToDomain() trade.LineItem {
	return trade.LineItem{
		ID:        m.ID,
		InvoiceID: m.InvoiceID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Unit:      trade.Unit(m.Unit),
		UnitPrice: m.UnitPrice,
		Amount:    m.Amount,
	}
}

func purchaseItemFromDomain(item trade.LineItem) PurchaseInvoiceItemModel {
	return PurchaseInvoiceItemModel{
		ID:        item.ID,
		InvoiceID: item.InvoiceID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Unit:      string(item.Unit),
		UnitPrice: item.UnitPrice,
		Amount:    item.Amount,
	}
}

// SalesInvoiceModel is the persistence model for the SalesInvoice aggregate.
type SalesInvoiceModel struct {
	BaseModel
	CustomerID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Date       string                  `gorm:"type:varchar(30);not null;index"`
	Total      decimal.Decimal         `gorm:"type:decimal(18,4);not null;default:0"`
	Paid       decimal.Decimal         `gorm:"type:decimal(18,4);not null;default:0"`
	Remaining  decimal.Decimal         `gorm:"type:decimal(18,4);not null;default:0"`
	Items      []SalesInvoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SalesInvoiceModel) TableName() string {
	return "sales_invoices"
}

// ToDomain converts the persistence model to a domain SalesInvoice entity.
func (m *SalesInvoiceModel) ToDomain() *trade.SalesInvoice {
	inv := &trade.SalesInvoice{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Date:       m.Date,
		Total:      m.Total,
		Paid:       m.Paid,
		Remaining:  m.Remaining,
		Items:      make([]trade.LineItem, len(m.Items)),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	for i, item := range m.Items {
		inv.Items[i] = item.ToDomain()
	}
	return inv
}

// SalesInvoiceModelFromDomain creates a persistence model from a domain SalesInvoice.
func SalesInvoiceModelFromDomain(inv *trade.SalesInvoice) *SalesInvoiceModel {
	m := &SalesInvoiceModel{
		BaseModel: BaseModel{
			ID:        inv.ID,
			CreatedAt: inv.CreatedAt,
			UpdatedAt: inv.UpdatedAt,
		},
		CustomerID: inv.CustomerID,
		Date:       inv.Date,
		Total:      inv.Total,
		Paid:       inv.Paid,
		Remaining:  inv.Remaining,
		Items:      make([]SalesInvoiceItemModel, len(inv.Items)),
	}
	for i, item := range inv.Items {
		m.Items[i] = salesItemFromDomain(item)
	}
	return m
}

// SalesInvoiceItemModel is the persistence model for a sales invoice line.
type SalesInvoiceItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit      string          `gorm:"type:varchar(20);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SalesInvoiceItemModel) TableName() string {
	return "sales_invoice_items"
}

// ToDomain converts the persistence model to a domain LineItem.
func (m *SalesInvoiceItemModel) ToDomain() trade.LineItem {
	return trade.LineItem{
		ID:        m.ID,
		InvoiceID: m.InvoiceID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Unit:      trade.Unit(m.Unit),
		UnitPrice: m.UnitPrice,
		Amount:    m.Amount,
	}
}

func salesItemFromDomain(item trade.LineItem) SalesInvoiceItemModel {
	return SalesInvoiceItemModel{
		ID:        item.ID,
		InvoiceID: item.InvoiceID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Unit:      string(item.Unit),
		UnitPrice: item.UnitPrice,
		Amount:    item.Amount,
	}
}
