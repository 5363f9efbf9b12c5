package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/shared"
)

// Unit is the unit of measure a line item was recorded in, relative to the
// product's two units.
type Unit string

const (
	UnitSmallest Unit = "smallest"
	UnitLargest  Unit = "largest"
)

// IsValid checks if the unit is one of the two recognized values.
func (u Unit) IsValid() bool {
	return u == UnitSmallest || u == UnitLargest
}

// LineItem is one line of a purchase or sales invoice. UnitPrice is the price
// per unit in the line's own unit; Amount is Quantity * UnitPrice.
type LineItem struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Unit      Unit
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}

func newLineItem(invoiceID, productID uuid.UUID, quantity decimal.Decimal, unit Unit, unitPrice decimal.Decimal) (*LineItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if !unit.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit must be smallest or largest")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	return &LineItem{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		ProductID: productID,
		Quantity:  quantity,
		Unit:      unit,
		UnitPrice: unitPrice,
		Amount:    quantity.Mul(unitPrice),
	}, nil
}

// PurchaseInvoice is a supplier invoice with its line items. Remaining is
// stored as Total - Paid when the invoice is recorded, never re-derived
// downstream.
type PurchaseInvoice struct {
	ID         uuid.UUID
	SupplierID uuid.UUID
	Date       string // ISO date
	Total      decimal.Decimal
	Paid       decimal.Decimal
	Remaining  decimal.Decimal
	Items      []LineItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewPurchaseInvoice creates an empty purchase invoice for a supplier.
func NewPurchaseInvoice(supplierID uuid.UUID, date string) (*PurchaseInvoice, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if date == "" {
		return nil, shared.NewDomainError("INVALID_DATE", "Invoice date cannot be empty")
	}
	now := time.Now()
	return &PurchaseInvoice{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Date:       date,
		Total:      decimal.Zero,
		Paid:       decimal.Zero,
		Remaining:  decimal.Zero,
		Items:      make([]LineItem, 0),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// AddItem appends a line and rolls its amount into the invoice total.
func (inv *PurchaseInvoice) AddItem(productID uuid.UUID, quantity decimal.Decimal, unit Unit, unitPrice decimal.Decimal) (*LineItem, error) {
	item, err := newLineItem(inv.ID, productID, quantity, unit, unitPrice)
	if err != nil {
		return nil, err
	}
	inv.Items = append(inv.Items, *item)
	inv.Total = inv.Total.Add(item.Amount)
	inv.Remaining = inv.Total.Sub(inv.Paid)
	inv.UpdatedAt = time.Now()
	return item, nil
}

// RecordPayment marks part of the invoice as paid.
func (inv *PurchaseInvoice) RecordPayment(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount cannot be negative")
	}
	inv.Paid = inv.Paid.Add(amount)
	inv.Remaining = inv.Total.Sub(inv.Paid)
	inv.UpdatedAt = time.Now()
	return nil
}

// SalesInvoice is a customer invoice with its line items.
type SalesInvoice struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Date       string
	Total      decimal.Decimal
	Paid       decimal.Decimal
	Remaining  decimal.Decimal
	Items      []LineItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSalesInvoice creates an empty sales invoice for a customer.
func NewSalesInvoice(customerID uuid.UUID, date string) (*SalesInvoice, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if date == "" {
		return nil, shared.NewDomainError("INVALID_DATE", "Invoice date cannot be empty")
	}
	now := time.Now()
	return &SalesInvoice{
		ID:         uuid.New(),
		CustomerID: customerID,
		Date:       date,
		Total:      decimal.Zero,
		Paid:       decimal.Zero,
		Remaining:  decimal.Zero,
		Items:      make([]LineItem, 0),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// AddItem appends a line and rolls its amount into the invoice total.
func (inv *SalesInvoice) AddItem(productID uuid.UUID, quantity decimal.Decimal, unit Unit, unitPrice decimal.Decimal) (*LineItem, error) {
	item, err := newLineItem(inv.ID, productID, quantity, unit, unitPrice)
	if err != nil {
		return nil, err
	}
	inv.Items = append(inv.Items, *item)
	inv.Total = inv.Total.Add(item.Amount)
	inv.Remaining = inv.Total.Sub(inv.Paid)
	inv.UpdatedAt = time.Now()
	return item, nil
}

// RecordReceipt marks part of the invoice as paid.
func (inv *SalesInvoice) RecordReceipt(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Receipt amount cannot be negative")
	}
	inv.Paid = inv.Paid.Add(amount)
	inv.Remaining = inv.Total.Sub(inv.Paid)
	inv.UpdatedAt = time.Now()
	return nil
}

// PurchaseInvoiceRepository persists purchase invoices with their items.
type PurchaseInvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseInvoice, error)
	List(ctx context.Context) ([]*PurchaseInvoice, error)
	Save(ctx context.Context, invoice *PurchaseInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SalesInvoiceRepository persists sales invoices with their items.
type SalesInvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesInvoice, error)
	List(ctx context.Context) ([]*SalesInvoice, error)
	Save(ctx context.Context, invoice *SalesInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}
