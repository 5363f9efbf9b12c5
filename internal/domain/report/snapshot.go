package report

import (
	"github.com/shopspring/decimal"
)

// Unit identifies which of a product's two units of measure a line item is
// recorded in.
type Unit string

const (
	// UnitSmallest is the product's base unit (e.g. piece).
	UnitSmallest Unit = "smallest"
	// UnitLargest is the product's packaging unit (e.g. carton).
	UnitLargest Unit = "largest"
)

// Product is a read model of a catalog product as the analytics engine sees
// it. ConversionFactor is the largest-unit quantity expressed in smallest
// units and is at least 1.
type Product struct {
	ID               string
	Name             string
	Category         string
	SmallestUnit     string
	LargestUnit      string
	ConversionFactor decimal.Decimal
}

// PurchaseInvoice is a read model of a supplier invoice header.
type PurchaseInvoice struct {
	ID         string
	SupplierID string
	Date       string // ISO date or date-time string
	Total      decimal.Decimal
	Paid       decimal.Decimal
	Remaining  decimal.Decimal
}

// PurchaseItem is one line of a purchase invoice. UnitPrice is the price per
// unit as recorded, i.e. in the item's own unit.
type PurchaseItem struct {
	InvoiceID string
	ProductID string
	Quantity  decimal.Decimal
	Unit      Unit
	UnitPrice decimal.Decimal
}

// SalesInvoice is a read model of a customer invoice header. Remaining is the
// stored value (total minus paid); the engine never re-derives it.
type SalesInvoice struct {
	ID         string
	CustomerID string
	Date       string
	Total      decimal.Decimal
	Paid       decimal.Decimal
	Remaining  decimal.Decimal
}

// SalesItem is one line of a sales invoice.
type SalesItem struct {
	InvoiceID string
	ProductID string
	Quantity  decimal.Decimal
	Unit      Unit
	UnitPrice decimal.Decimal
}

// Expense is an operating expense record.
type Expense struct {
	ID       string
	Date     string
	Amount   decimal.Decimal
	Category string
}

// Customer is a read model of a customer.
type Customer struct {
	ID   string
	Name string
}

// Supplier is a read model of a supplier.
type Supplier struct {
	ID   string
	Name string
}

// Snapshot is the fully materialized in-memory state the engine computes
// over. All collections are complete and unfiltered; the engine owns all
// filtering. A snapshot is read-only for the duration of one report run.
type Snapshot struct {
	Products         []Product
	PurchaseInvoices []PurchaseInvoice
	PurchaseItems    []PurchaseItem
	SalesInvoices    []SalesInvoice
	SalesItems       []SalesItem
	Expenses         []Expense
	Customers        []Customer
	Suppliers        []Supplier
}

// ProductByID builds a lookup map over the snapshot's products.
func (s *Snapshot) ProductByID() map[string]Product {
	m := make(map[string]Product, len(s.Products))
	for _, p := range s.Products {
		m[p.ID] = p
	}
	return m
}

// dateKey reduces an ISO date or date-time string to its YYYY-MM-DD prefix.
// Range and boundary checks compare these prefixes lexicographically; that is
// stable and zone-independent for ISO-formatted dates, and it is what decides
// which purchases are eligible for a given sale. Do not replace with parsed
// time comparison.
func dateKey(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}
