package report

import "github.com/shopspring/decimal"

// Alert thresholds. A product sells "high" past 1000 in total sales; a margin
// under 10% counts as "low".
var (
	alertSalesFloor = decimal.NewFromInt(1000)
	alertMarginCeil = decimal.NewFromInt(10)
)

// Alert flags one product on the reports screen.
type Alert struct {
	Product      Product
	TotalSales   decimal.Decimal
	TotalCost    decimal.Decimal
	Profit       decimal.Decimal
	ProfitMargin decimal.Decimal
}

// Alerts carries the two alert lists. The predicates are disjoint: a negative
// margin excludes a product from the high-sales-low-margin bucket, so no
// product appears in both.
type Alerts struct {
	HighSalesLowMargin []Alert
	LossMaking         []Alert
}

// GenerateAlerts recomputes the per-product aggregation for the filter and
// flags high-sales-low-margin and loss-making products. Lists keep the
// aggregator's ordering.
func GenerateAlerts(f Filter, snap *Snapshot) Alerts {
	var alerts Alerts
	for _, row := range ProductProfitability(f, snap) {
		a := Alert{
			Product:      row.Product,
			TotalSales:   row.TotalSales,
			TotalCost:    row.TotalCost,
			Profit:       row.Profit,
			ProfitMargin: row.ProfitMargin,
		}
		if row.TotalSales.GreaterThan(alertSalesFloor) &&
			!row.ProfitMargin.IsNegative() &&
			row.ProfitMargin.LessThan(alertMarginCeil) {
			alerts.HighSalesLowMargin = append(alerts.HighSalesLowMargin, a)
		}
		if row.Profit.IsNegative() {
			alerts.LossMaking = append(alerts.LossMaking, a)
		}
	}
	return alerts
}
