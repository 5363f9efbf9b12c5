package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMargin(t *testing.T) {
	tests := []struct {
		margin string
		want   Rating
	}{
		{"25", RatingProfitable},
		{"20", RatingProfitable},
		{"15", RatingModerate},
		{"10", RatingModerate},
		{"5", RatingLow},
		{"0", RatingLow},
		{"-0.01", RatingLoss},
		{"-30", RatingLoss},
	}

	for _, tt := range tests {
		t.Run(tt.margin, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyMargin(dec(tt.margin)))
		})
	}
}

func TestProductProfitability(t *testing.T) {
	rows := ProductProfitability(fullYear(), testSnapshot())
	require.Len(t, rows, 3)

	// Sorted by profit descending: soap (+100), rice (+40), oil (-100).
	assert.Equal(t, "p-soap", rows[0].Product.ID)
	assert.Equal(t, "p-rice", rows[1].Product.ID)
	assert.Equal(t, "p-oil", rows[2].Product.ID)

	soap := rows[0]
	assertDec(t, "200", soap.TotalQuantity)
	assertDec(t, "9.5", soap.AvgPurchasePrice)
	assertDec(t, "10", soap.AvgSalePrice)
	assertDec(t, "1900", soap.TotalCost)
	assertDec(t, "2000", soap.TotalSales)
	assertDec(t, "100", soap.Profit)
	assertDec(t, "5", soap.ProfitMargin)
	assert.Equal(t, RatingLow, soap.Rating)

	rice := rows[1]
	assertDec(t, "20", rice.TotalQuantity)
	assertDec(t, "8", rice.AvgPurchasePrice)
	assertDec(t, "160", rice.TotalCost)
	assertDec(t, "40", rice.Profit)
	assertDec(t, "20", rice.ProfitMargin)
	assert.Equal(t, RatingProfitable, rice.Rating)

	oil := rows[2]
	assertDec(t, "-100", oil.Profit)
	assert.Equal(t, RatingLoss, oil.Rating)
}

func TestProductProfitability_DropsUnknownProducts(t *testing.T) {
	snap := testSnapshot()
	snap.SalesItems = append(snap.SalesItems, SalesItem{
		InvoiceID: "inv-1", ProductID: "p-ghost", Quantity: dec("9"), Unit: UnitSmallest, UnitPrice: dec("7"),
	})

	rows := ProductProfitability(fullYear(), snap)
	for _, row := range rows {
		assert.NotEqual(t, "p-ghost", row.Product.ID)
	}
}

func TestProductProfitability_SelectorNarrowsRows(t *testing.T) {
	f := fullYear()
	f.Selector = "category:food"

	rows := ProductProfitability(f, testSnapshot())
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "food", row.Product.Category)
	}
}

func TestCustomerProfitability(t *testing.T) {
	rows := CustomerProfitability(fullYear(), testSnapshot())
	require.Len(t, rows, 2)

	// cust-2: sales 2000, cost 1900, profit 100.
	// cust-1: sales 600, cost 160+500=660, profit -60.
	assert.Equal(t, "cust-2", rows[0].Customer.ID)
	assert.Equal(t, 1, rows[0].InvoiceCount)
	assertDec(t, "2000", rows[0].TotalSales)
	assertDec(t, "1900", rows[0].TotalCost)
	assertDec(t, "100", rows[0].Profit)
	assertDec(t, "5", rows[0].ProfitMargin)
	assert.Equal(t, RatingLow, rows[0].Rating)

	assert.Equal(t, "cust-1", rows[1].Customer.ID)
	assert.Equal(t, 2, rows[1].InvoiceCount)
	assertDec(t, "600", rows[1].TotalSales)
	assertDec(t, "660", rows[1].TotalCost)
	assertDec(t, "-60", rows[1].Profit)
	assert.Equal(t, RatingLoss, rows[1].Rating)
}

func TestCustomerProfitability_RatingThresholds(t *testing.T) {
	// One customer, one product bought at 8, sold at 10: margin 20%.
	snap := &Snapshot{
		Products: []Product{
			{ID: "p1", Name: "Widget", Category: "misc", ConversionFactor: dec("1")},
		},
		PurchaseInvoices: []PurchaseInvoice{
			{ID: "pu1", SupplierID: "s1", Date: "2024-01-01", Total: dec("80")},
		},
		PurchaseItems: []PurchaseItem{
			{InvoiceID: "pu1", ProductID: "p1", Quantity: dec("10"), Unit: UnitSmallest, UnitPrice: dec("8")},
		},
		SalesInvoices: []SalesInvoice{
			{ID: "s1", CustomerID: "c1", Date: "2024-02-01", Total: dec("100")},
		},
		SalesItems: []SalesItem{
			{InvoiceID: "s1", ProductID: "p1", Quantity: dec("10"), Unit: UnitSmallest, UnitPrice: dec("10")},
		},
		Customers: []Customer{{ID: "c1", Name: "Only Customer"}},
	}

	rows := CustomerProfitability(fullYear(), snap)
	require.Len(t, rows, 1)
	assertDec(t, "20", rows[0].ProfitMargin)
	assert.Equal(t, RatingProfitable, rows[0].Rating)
}

func TestCustomerProfitability_DropsUnknownCustomers(t *testing.T) {
	snap := testSnapshot()
	snap.SalesInvoices = append(snap.SalesInvoices, SalesInvoice{
		ID: "inv-x", CustomerID: "cust-ghost", Date: "2024-02-22", Total: dec("999"),
	})

	rows := CustomerProfitability(fullYear(), snap)
	for _, row := range rows {
		assert.NotEqual(t, "cust-ghost", row.Customer.ID)
	}
}

func TestSupplierPurchases(t *testing.T) {
	rows := SupplierPurchases(fullYear(), testSnapshot())
	require.Len(t, rows, 2)

	// sup-2: 500 + 1900 = 2400; sup-1: 800 + 240 = 1040.
	assert.Equal(t, "sup-2", rows[0].Supplier.ID)
	assert.Equal(t, 2, rows[0].InvoiceCount)
	assertDec(t, "2400", rows[0].TotalPurchases)
	assertDec(t, "1500", rows[0].TotalPaid)
	assertDec(t, "900", rows[0].TotalOutstanding)

	assert.Equal(t, "sup-1", rows[1].Supplier.ID)
	assertDec(t, "1040", rows[1].TotalPurchases)
	assertDec(t, "900", rows[1].TotalPaid)
	assertDec(t, "140", rows[1].TotalOutstanding)
}

func TestSupplierPurchases_DateBounded(t *testing.T) {
	// January only: pur-2 (March) falls out of sup-1's totals.
	rows := SupplierPurchases(Filter{FromDate: "2024-01-01", ToDate: "2024-01-31"}, testSnapshot())
	require.Len(t, rows, 2)
	assert.Equal(t, "sup-2", rows[0].Supplier.ID)
	assert.Equal(t, "sup-1", rows[1].Supplier.ID)
	assertDec(t, "800", rows[1].TotalPurchases)
	assert.Equal(t, 1, rows[1].InvoiceCount)
}

func TestSupplierPurchases_DropsUnknownSuppliers(t *testing.T) {
	snap := testSnapshot()
	snap.PurchaseInvoices = append(snap.PurchaseInvoices, PurchaseInvoice{
		ID: "pur-x", SupplierID: "sup-ghost", Date: "2024-02-01", Total: dec("77"),
	})

	rows := SupplierPurchases(fullYear(), snap)
	for _, row := range rows {
		assert.NotEqual(t, "sup-ghost", row.Supplier.ID)
	}
}

func TestAggregators_Idempotent(t *testing.T) {
	snap := testSnapshot()
	f := fullYear()

	assert.Equal(t, ProductProfitability(f, snap), ProductProfitability(f, snap))
	assert.Equal(t, CustomerProfitability(f, snap), CustomerProfitability(f, snap))
	assert.Equal(t, SupplierPurchases(f, snap), SupplierPurchases(f, snap))
}
