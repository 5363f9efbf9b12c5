package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Shared test helpers

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s", want, got.String())
}

// testSnapshot builds the canonical fixture used across the engine tests.
//
// Products:
//   - p-rice: category food, carton of 12. Bought 100 pcs @ 8 on 2024-01-05,
//     then 2 cartons @ 120/carton on 2024-03-01.
//   - p-oil: category food, pack of 6. Bought 50 pcs @ 10 on 2024-01-10.
//   - p-soap: category home, carton of 24. Bought 200 pcs @ 9.5 on 2024-01-12.
//
// Sales (all before 2024-03-01, so rice still values at 8):
//   - inv-1: cust-1, 2024-02-10, 20 rice @ 10 (total 200)
//   - inv-2: cust-2, 2024-02-15, 200 soap @ 10 (total 2000)
//   - inv-3: cust-1, 2024-02-20, 50 oil @ 8  (total 400, sold below cost)
//
// Expenses: 100 on 2024-02-01, 50 on 2024-06-01.
func testSnapshot() *Snapshot {
	return &Snapshot{
		Products: []Product{
			{ID: "p-rice", Name: "Rice 5kg", Category: "food", SmallestUnit: "bag", LargestUnit: "carton", ConversionFactor: dec("12")},
			{ID: "p-oil", Name: "Cooking Oil", Category: "food", SmallestUnit: "bottle", LargestUnit: "pack", ConversionFactor: dec("6")},
			{ID: "p-soap", Name: "Soap Bar", Category: "home", SmallestUnit: "bar", LargestUnit: "carton", ConversionFactor: dec("24")},
		},
		PurchaseInvoices: []PurchaseInvoice{
			{ID: "pur-1", SupplierID: "sup-1", Date: "2024-01-05", Total: dec("800"), Paid: dec("800"), Remaining: dec("0")},
			{ID: "pur-2", SupplierID: "sup-1", Date: "2024-03-01", Total: dec("240"), Paid: dec("100"), Remaining: dec("140")},
			{ID: "pur-3", SupplierID: "sup-2", Date: "2024-01-10", Total: dec("500"), Paid: dec("500"), Remaining: dec("0")},
			{ID: "pur-4", SupplierID: "sup-2", Date: "2024-01-12", Total: dec("1900"), Paid: dec("1000"), Remaining: dec("900")},
		},
		PurchaseItems: []PurchaseItem{
			{InvoiceID: "pur-1", ProductID: "p-rice", Quantity: dec("100"), Unit: UnitSmallest, UnitPrice: dec("8")},
			{InvoiceID: "pur-2", ProductID: "p-rice", Quantity: dec("2"), Unit: UnitLargest, UnitPrice: dec("120")},
			{InvoiceID: "pur-3", ProductID: "p-oil", Quantity: dec("50"), Unit: UnitSmallest, UnitPrice: dec("10")},
			{InvoiceID: "pur-4", ProductID: "p-soap", Quantity: dec("200"), Unit: UnitSmallest, UnitPrice: dec("9.5")},
		},
		SalesInvoices: []SalesInvoice{
			{ID: "inv-1", CustomerID: "cust-1", Date: "2024-02-10", Total: dec("200"), Paid: dec("200"), Remaining: dec("0")},
			{ID: "inv-2", CustomerID: "cust-2", Date: "2024-02-15", Total: dec("2000"), Paid: dec("1500"), Remaining: dec("500")},
			{ID: "inv-3", CustomerID: "cust-1", Date: "2024-02-20", Total: dec("400"), Paid: dec("400"), Remaining: dec("0")},
		},
		SalesItems: []SalesItem{
			{InvoiceID: "inv-1", ProductID: "p-rice", Quantity: dec("20"), Unit: UnitSmallest, UnitPrice: dec("10")},
			{InvoiceID: "inv-2", ProductID: "p-soap", Quantity: dec("200"), Unit: UnitSmallest, UnitPrice: dec("10")},
			{InvoiceID: "inv-3", ProductID: "p-oil", Quantity: dec("50"), Unit: UnitSmallest, UnitPrice: dec("8")},
		},
		Expenses: []Expense{
			{ID: "exp-1", Date: "2024-02-01", Amount: dec("100"), Category: "rent"},
			{ID: "exp-2", Date: "2024-06-01", Amount: dec("50"), Category: "utilities"},
		},
		Customers: []Customer{
			{ID: "cust-1", Name: "Corner Market"},
			{ID: "cust-2", Name: "Hilltop Grocery"},
		},
		Suppliers: []Supplier{
			{ID: "sup-1", Name: "Delta Foods"},
			{ID: "sup-2", Name: "Crescent Trading"},
		},
	}
}

// fullYear covers the whole fixture period.
func fullYear() Filter {
	return Filter{FromDate: "2024-01-01", ToDate: "2024-12-31"}
}
