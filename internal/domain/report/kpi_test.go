package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSummary_FullPeriod(t *testing.T) {
	got := ComputeSummary(fullYear(), testSnapshot())

	// Sales: 200 + 2000 + 400. COGS: 20*8 + 200*9.5 + 50*10.
	assertDec(t, "2600", got.TotalSales)
	assertDec(t, "2560", got.TotalCOGS)
	assertDec(t, "40", got.GrossProfit)
	assertDec(t, "150", got.TotalExpenses)
	assertDec(t, "-110", got.NetProfit)

	// -110 / 2600 * 100
	wantMargin := dec("-110").Div(dec("2600")).Mul(dec("100"))
	assert.True(t, got.ProfitMargin.Equal(wantMargin), "want %s, got %s", wantMargin, got.ProfitMargin)
}

func TestComputeSummary_TotalSalesMatchesInvoiceTotals(t *testing.T) {
	snap := testSnapshot()
	f := Filter{FromDate: "2024-02-10", ToDate: "2024-02-15"}

	filtered := FilterSales(f, snap)
	want := dec("0")
	for _, inv := range filtered.Invoices {
		want = want.Add(inv.Total)
	}

	got := ComputeSummary(f, snap)
	assert.True(t, got.TotalSales.Equal(want), "want %s, got %s", want, got.TotalSales)
}

func TestComputeSummary_ConcreteScenario(t *testing.T) {
	// Product with conversion factor 12; purchase of 100 units @ 8 before the
	// sale date; sale of 20 units @ 10 -> avg cost 8, COGS 160, profit 40.
	snap := testSnapshot()
	f := Filter{FromDate: "2024-02-10", ToDate: "2024-02-10"}

	got := ComputeSummary(f, snap)
	assertDec(t, "200", got.TotalSales)
	assertDec(t, "160", got.TotalCOGS)
	assertDec(t, "40", got.GrossProfit)
}

func TestComputeSummary_ExpensesBoundedByDateOnly(t *testing.T) {
	snap := testSnapshot()

	// Customer and selector narrowing must not touch the expense total.
	f := fullYear()
	f.CustomerID = "cust-2"
	f.Selector = "category:home"

	got := ComputeSummary(f, snap)
	assertDec(t, "150", got.TotalExpenses)

	// Date bounds do.
	narrow := Filter{FromDate: "2024-02-01", ToDate: "2024-02-28"}
	got = ComputeSummary(narrow, snap)
	assertDec(t, "100", got.TotalExpenses)
}

func TestComputeSummary_ZeroSalesZeroMargin(t *testing.T) {
	got := ComputeSummary(Filter{FromDate: "2023-01-01", ToDate: "2023-01-31"}, testSnapshot())

	assertDec(t, "0", got.TotalSales)
	assertDec(t, "0", got.ProfitMargin)
	assertDec(t, "0", got.NetProfit)
}

func TestComputeSummary_Idempotent(t *testing.T) {
	snap := testSnapshot()
	f := fullYear()

	first := ComputeSummary(f, snap)
	second := ComputeSummary(f, snap)
	assert.Equal(t, first, second)
}
