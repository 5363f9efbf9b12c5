package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	factor := dec("12")

	tests := []struct {
		name string
		qty  string
		unit Unit
		want string
	}{
		{"smallest passes through", "20", UnitSmallest, "20"},
		{"largest multiplies by factor", "2", UnitLargest, "24"},
		{"zero quantity", "0", UnitLargest, "0"},
		{"fractional quantity", "1.5", UnitLargest, "18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDec(t, tt.want, Normalize(dec(tt.qty), tt.unit, factor))
		})
	}
}

func TestAverageUnitCost_SinglePurchase(t *testing.T) {
	v := NewCostValuator(testSnapshot())

	// 100 bags @ 8, nothing else before February.
	assertDec(t, "8", v.AverageUnitCost("p-rice", "2024-02-10"))
}

func TestAverageUnitCost_BlendsAcrossUnits(t *testing.T) {
	v := NewCostValuator(testSnapshot())

	// After 2024-03-01 the carton purchase is eligible too:
	// cost 100*8 + 2*120 = 1040 over 100 + 24 = 124 bags.
	want := dec("1040").Div(dec("124"))
	got := v.AverageUnitCost("p-rice", "2024-03-05")
	assert.True(t, got.Equal(want), "want %s, got %s", want, got)
}

func TestAverageUnitCost_NoLookAhead(t *testing.T) {
	v := NewCostValuator(testSnapshot())

	// The 2024-03-01 carton purchase must not leak into a February valuation.
	assertDec(t, "8", v.AverageUnitCost("p-rice", "2024-02-28"))

	// Pushing a purchase past the sale date can never raise the cost used
	// for that sale: the blended average is above 8 only because of the
	// pricier carton purchase.
	blended := v.AverageUnitCost("p-rice", "2024-03-05")
	assert.True(t, blended.GreaterThan(dec("8")))
}

func TestAverageUnitCost_SameDayPurchaseIsEligible(t *testing.T) {
	// Date-only granularity: a purchase dated the same day as the sale
	// counts, whatever the intraday order was.
	v := NewCostValuator(testSnapshot())
	assertDec(t, "8", v.AverageUnitCost("p-rice", "2024-01-05"))
}

func TestAverageUnitCost_EmptyAsOfUsesAllHistory(t *testing.T) {
	v := NewCostValuator(testSnapshot())

	want := dec("1040").Div(dec("124"))
	got := v.AverageUnitCost("p-rice", "")
	assert.True(t, got.Equal(want), "want %s, got %s", want, got)
}

func TestAverageUnitCost_NoHistoryIsZero(t *testing.T) {
	v := NewCostValuator(testSnapshot())

	assertDec(t, "0", v.AverageUnitCost("p-ghost", "2024-02-10"))
	// A known product before its first purchase also values at zero.
	assertDec(t, "0", v.AverageUnitCost("p-rice", "2023-12-31"))
}

func TestAverageUnitCost_IgnoresOrphanedPurchaseLines(t *testing.T) {
	snap := testSnapshot()
	snap.PurchaseItems = append(snap.PurchaseItems, PurchaseItem{
		InvoiceID: "pur-ghost", ProductID: "p-rice", Quantity: dec("1000"), Unit: UnitSmallest, UnitPrice: dec("99"),
	})

	v := NewCostValuator(snap)
	assertDec(t, "8", v.AverageUnitCost("p-rice", "2024-02-10"))
}

func TestItemCost(t *testing.T) {
	v := NewCostValuator(testSnapshot())

	// 20 bags at an average cost of 8.
	item := SalesItem{InvoiceID: "inv-1", ProductID: "p-rice", Quantity: dec("20"), Unit: UnitSmallest, UnitPrice: dec("10")}
	assertDec(t, "160", v.ItemCost(item, "2024-02-10"))

	// A carton line normalizes before costing: 1 carton = 12 bags @ 8.
	carton := SalesItem{InvoiceID: "inv-1", ProductID: "p-rice", Quantity: dec("1"), Unit: UnitLargest, UnitPrice: dec("110")}
	assertDec(t, "96", v.ItemCost(carton, "2024-02-10"))
}

func TestItemCost_UnknownProductContributesZero(t *testing.T) {
	v := NewCostValuator(testSnapshot())

	item := SalesItem{InvoiceID: "inv-1", ProductID: "p-ghost", Quantity: dec("5"), Unit: UnitSmallest, UnitPrice: dec("3")}
	assertDec(t, "0", v.ItemCost(item, "2024-02-10"))
}

func TestCostValuator_DoesNotMutateSnapshot(t *testing.T) {
	snap := testSnapshot()
	v := NewCostValuator(snap)

	first := v.AverageUnitCost("p-rice", "2024-02-10")
	second := v.AverageUnitCost("p-rice", "2024-02-10")
	assert.True(t, first.Equal(second))
	assert.Equal(t, testSnapshot(), snap)
}
