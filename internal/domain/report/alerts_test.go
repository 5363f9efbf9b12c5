package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAlerts(t *testing.T) {
	got := GenerateAlerts(fullYear(), testSnapshot())

	// Soap: sales 2000, cost 1900, margin 5% -> high sales, low margin.
	require.Len(t, got.HighSalesLowMargin, 1)
	soap := got.HighSalesLowMargin[0]
	assert.Equal(t, "p-soap", soap.Product.ID)
	assertDec(t, "2000", soap.TotalSales)
	assertDec(t, "1900", soap.TotalCost)
	assertDec(t, "100", soap.Profit)
	assertDec(t, "5", soap.ProfitMargin)

	// Oil: bought at 10, sold at 8 -> loss list only.
	require.Len(t, got.LossMaking, 1)
	oil := got.LossMaking[0]
	assert.Equal(t, "p-oil", oil.Product.ID)
	assertDec(t, "-100", oil.Profit)
}

func TestGenerateAlerts_ListsAreDisjoint(t *testing.T) {
	got := GenerateAlerts(fullYear(), testSnapshot())

	flagged := make(map[string]bool)
	for _, a := range got.HighSalesLowMargin {
		flagged[a.Product.ID] = true
	}
	for _, a := range got.LossMaking {
		assert.False(t, flagged[a.Product.ID], "product %s in both lists", a.Product.ID)
	}
}

func TestGenerateAlerts_LossMakerNeverInLowMarginList(t *testing.T) {
	// A loss maker with high sales still has a negative margin, which
	// excludes it from the high-sales-low-margin bucket.
	snap := &Snapshot{
		Products: []Product{
			{ID: "p1", Name: "Bulk Item", Category: "misc", ConversionFactor: dec("1")},
		},
		PurchaseInvoices: []PurchaseInvoice{
			{ID: "pu1", SupplierID: "s1", Date: "2024-01-01", Total: dec("3000")},
		},
		PurchaseItems: []PurchaseItem{
			{InvoiceID: "pu1", ProductID: "p1", Quantity: dec("300"), Unit: UnitSmallest, UnitPrice: dec("10")},
		},
		SalesInvoices: []SalesInvoice{
			{ID: "s1", CustomerID: "c1", Date: "2024-02-01", Total: dec("2400")},
		},
		SalesItems: []SalesItem{
			{InvoiceID: "s1", ProductID: "p1", Quantity: dec("300"), Unit: UnitSmallest, UnitPrice: dec("8")},
		},
	}

	got := GenerateAlerts(fullYear(), snap)
	require.Len(t, got.LossMaking, 1)
	assert.Empty(t, got.HighSalesLowMargin)
}

func TestGenerateAlerts_BoundaryConditions(t *testing.T) {
	// Sales of exactly 1000 do not trip the high-sales predicate; a margin of
	// exactly 10% does not count as low.
	build := func(qty, salePrice, cost string) *Snapshot {
		return &Snapshot{
			Products: []Product{{ID: "p1", Name: "Item", ConversionFactor: dec("1")}},
			PurchaseInvoices: []PurchaseInvoice{
				{ID: "pu1", SupplierID: "s1", Date: "2024-01-01"},
			},
			PurchaseItems: []PurchaseItem{
				{InvoiceID: "pu1", ProductID: "p1", Quantity: dec(qty), Unit: UnitSmallest, UnitPrice: dec(cost)},
			},
			SalesInvoices: []SalesInvoice{
				{ID: "s1", CustomerID: "c1", Date: "2024-02-01"},
			},
			SalesItems: []SalesItem{
				{InvoiceID: "s1", ProductID: "p1", Quantity: dec(qty), Unit: UnitSmallest, UnitPrice: dec(salePrice)},
			},
		}
	}

	// 100 units @ 10 = exactly 1000 in sales, margin 5%.
	got := GenerateAlerts(fullYear(), build("100", "10", "9.5"))
	assert.Empty(t, got.HighSalesLowMargin)

	// 200 units @ 10 = 2000 in sales, margin exactly 10%.
	got = GenerateAlerts(fullYear(), build("200", "10", "9"))
	assert.Empty(t, got.HighSalesLowMargin)

	// 200 units @ 10, margin 5% -> flagged, and not a loss.
	got = GenerateAlerts(fullYear(), build("200", "10", "9.5"))
	require.Len(t, got.HighSalesLowMargin, 1)
	assert.Empty(t, got.LossMaking)

	// Zero margin is still "low", not a loss.
	got = GenerateAlerts(fullYear(), build("200", "10", "10"))
	require.Len(t, got.HighSalesLowMargin, 1)
	assert.Empty(t, got.LossMaking)
}
