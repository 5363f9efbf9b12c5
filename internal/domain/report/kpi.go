package report

import "github.com/shopspring/decimal"

// Summary is the KPI block at the top of the reports screen. Profit and
// margin may be negative; that is a business result, not an error.
type Summary struct {
	TotalSales    decimal.Decimal
	TotalCOGS     decimal.Decimal
	GrossProfit   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	ProfitMargin  decimal.Decimal // percentage, 0 when there are no sales
}

var hundred = decimal.NewFromInt(100)

// marginPercent returns profit/sales as a percentage, or zero when sales are
// zero so a division by zero never propagates.
func marginPercent(profit, sales decimal.Decimal) decimal.Decimal {
	if !sales.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(sales).Mul(hundred)
}

// ComputeSummary rolls the filtered sales ledger and the date-bounded expense
// ledger into a single KPI summary. Cost of goods sold is valued per line at
// the weighted-average purchase cost as of each line's invoice date.
func ComputeSummary(f Filter, snap *Snapshot) Summary {
	sales := FilterSales(f, snap)
	valuator := NewCostValuator(snap)

	invoiceDates := make(map[string]string, len(sales.Invoices))
	totalSales := decimal.Zero
	for _, inv := range sales.Invoices {
		totalSales = totalSales.Add(inv.Total)
		invoiceDates[inv.ID] = inv.Date
	}

	totalCOGS := decimal.Zero
	for _, item := range sales.Items {
		totalCOGS = totalCOGS.Add(valuator.ItemCost(item, invoiceDates[item.InvoiceID]))
	}

	totalExpenses := decimal.Zero
	for _, e := range snap.Expenses {
		if f.matchesExpense(e) {
			totalExpenses = totalExpenses.Add(e.Amount)
		}
	}

	grossProfit := totalSales.Sub(totalCOGS)
	netProfit := grossProfit.Sub(totalExpenses)

	return Summary{
		TotalSales:    totalSales,
		TotalCOGS:     totalCOGS,
		GrossProfit:   grossProfit,
		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		ProfitMargin:  marginPercent(netProfit, totalSales),
	}
}
