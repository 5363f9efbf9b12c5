package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceIDs(invoices []SalesInvoice) []string {
	ids := make([]string, len(invoices))
	for i, inv := range invoices {
		ids[i] = inv.ID
	}
	return ids
}

func TestFilterSales_DateRange(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{
			name:    "full range keeps everything",
			filter:  Filter{FromDate: "2024-01-01", ToDate: "2024-12-31"},
			wantIDs: []string{"inv-1", "inv-2", "inv-3"},
		},
		{
			name:    "bounds are inclusive",
			filter:  Filter{FromDate: "2024-02-10", ToDate: "2024-02-20"},
			wantIDs: []string{"inv-1", "inv-2", "inv-3"},
		},
		{
			name:    "narrow range",
			filter:  Filter{FromDate: "2024-02-11", ToDate: "2024-02-19"},
			wantIDs: []string{"inv-2"},
		},
		{
			name:    "range before any sale",
			filter:  Filter{FromDate: "2023-01-01", ToDate: "2023-12-31"},
			wantIDs: []string{},
		},
		{
			// The reports screen always submits both bounds; missing bounds
			// mean an empty report, not an open-ended one.
			name:    "empty bounds yield empty set",
			filter:  Filter{},
			wantIDs: []string{},
		},
		{
			name:    "missing to-date yields empty set",
			filter:  Filter{FromDate: "2024-01-01"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSales(tt.filter, snap)
			assert.ElementsMatch(t, tt.wantIDs, invoiceIDs(got.Invoices))
		})
	}
}

func TestFilterSales_DateTimeStringsCompareByPrefix(t *testing.T) {
	snap := testSnapshot()
	snap.SalesInvoices[0].Date = "2024-02-10T23:59:59Z"

	got := FilterSales(Filter{FromDate: "2024-02-10", ToDate: "2024-02-10"}, snap)
	assert.Equal(t, []string{"inv-1"}, invoiceIDs(got.Invoices))
}

func TestFilterSales_CustomerFilter(t *testing.T) {
	snap := testSnapshot()
	f := fullYear()
	f.CustomerID = "cust-1"

	got := FilterSales(f, snap)
	assert.ElementsMatch(t, []string{"inv-1", "inv-3"}, invoiceIDs(got.Invoices))
	require.Len(t, got.Items, 2)
	for _, item := range got.Items {
		assert.NotEqual(t, "inv-2", item.InvoiceID)
	}
}

func TestFilterSales_CategorySelector(t *testing.T) {
	snap := testSnapshot()
	f := fullYear()
	f.Selector = "category:food"

	got := FilterSales(f, snap)

	// Only the two food items survive, and inv-2 (soap only) is dropped so
	// the invoice and item sets stay consistent.
	require.Len(t, got.Items, 2)
	for _, item := range got.Items {
		assert.Contains(t, []string{"p-rice", "p-oil"}, item.ProductID)
	}
	assert.ElementsMatch(t, []string{"inv-1", "inv-3"}, invoiceIDs(got.Invoices))
}

func TestFilterSales_ProductSelector(t *testing.T) {
	snap := testSnapshot()
	f := fullYear()
	f.Selector = "product:p-soap"

	got := FilterSales(f, snap)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p-soap", got.Items[0].ProductID)
	assert.Equal(t, []string{"inv-2"}, invoiceIDs(got.Invoices))
}

func TestFilterSales_CategorySelectorSkipsUnknownProducts(t *testing.T) {
	snap := testSnapshot()
	snap.SalesItems = append(snap.SalesItems, SalesItem{
		InvoiceID: "inv-1", ProductID: "p-ghost", Quantity: dec("5"), Unit: UnitSmallest, UnitPrice: dec("1"),
	})

	f := fullYear()
	f.Selector = "category:food"
	got := FilterSales(f, snap)

	for _, item := range got.Items {
		assert.NotEqual(t, "p-ghost", item.ProductID)
	}
}

func TestFilterSales_NoSelectorKeepsEmptyInvoices(t *testing.T) {
	snap := testSnapshot()
	snap.SalesInvoices = append(snap.SalesInvoices, SalesInvoice{
		ID: "inv-empty", CustomerID: "cust-1", Date: "2024-02-25", Total: dec("0"),
	})

	got := FilterSales(fullYear(), snap)
	assert.Contains(t, invoiceIDs(got.Invoices), "inv-empty")
}

func TestFilterSales_Idempotent(t *testing.T) {
	snap := testSnapshot()
	f := fullYear()
	f.Selector = "category:food"

	first := FilterSales(f, snap)
	second := FilterSales(f, snap)
	assert.Equal(t, first, second)
}
