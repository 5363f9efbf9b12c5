package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Rating classifies an entity's profitability for the reports screen.
type Rating string

const (
	RatingProfitable Rating = "profitable" // margin >= 20%
	RatingModerate   Rating = "moderate"   // margin >= 10%
	RatingLow        Rating = "low"        // 0% <= margin < 10%
	RatingLoss       Rating = "loss"       // margin < 0%
)

var (
	ratingProfitableFloor = decimal.NewFromInt(20)
	ratingModerateFloor   = decimal.NewFromInt(10)
)

// classifyMargin maps a profit margin percentage to its rating.
func classifyMargin(margin decimal.Decimal) Rating {
	switch {
	case margin.GreaterThanOrEqual(ratingProfitableFloor):
		return RatingProfitable
	case margin.GreaterThanOrEqual(ratingModerateFloor):
		return RatingModerate
	case margin.IsNegative():
		return RatingLoss
	default:
		return RatingLow
	}
}

// ProductRow is one row of the per-product profitability table. Quantities
// are in the product's smallest unit; average prices are per smallest unit.
type ProductRow struct {
	Product          Product
	TotalQuantity    decimal.Decimal
	AvgPurchasePrice decimal.Decimal
	AvgSalePrice     decimal.Decimal
	TotalCost        decimal.Decimal
	TotalSales       decimal.Decimal
	Profit           decimal.Decimal
	ProfitMargin     decimal.Decimal
	Rating           Rating
}

// CustomerRow is one row of the per-customer profitability table.
type CustomerRow struct {
	Customer     Customer
	InvoiceCount int
	TotalSales   decimal.Decimal
	TotalCost    decimal.Decimal
	Profit       decimal.Decimal
	ProfitMargin decimal.Decimal
	Rating       Rating
}

// SupplierRow is one row of the per-supplier purchases table. Profit does not
// apply on the purchase side; the row aggregates invoice totals and the paid
// and outstanding amounts instead.
type SupplierRow struct {
	Supplier         Supplier
	InvoiceCount     int
	TotalPurchases   decimal.Decimal
	TotalPaid        decimal.Decimal
	TotalOutstanding decimal.Decimal
}

// ProductProfitability groups the filtered sales items by product and values
// each group's cost of goods sold at the date-bounded weighted average. Items
// whose product is unknown are dropped. Rows come back sorted by profit,
// highest first.
func ProductProfitability(f Filter, snap *Snapshot) []ProductRow {
	sales := FilterSales(f, snap)
	valuator := NewCostValuator(snap)
	products := snap.ProductByID()

	invoiceDates := make(map[string]string, len(sales.Invoices))
	for _, inv := range sales.Invoices {
		invoiceDates[inv.ID] = inv.Date
	}

	groups := make(map[string]*ProductRow)
	order := make([]string, 0)
	for _, item := range sales.Items {
		p, ok := products[item.ProductID]
		if !ok {
			continue
		}
		row, ok := groups[item.ProductID]
		if !ok {
			row = &ProductRow{Product: p}
			groups[item.ProductID] = row
			order = append(order, item.ProductID)
		}
		row.TotalQuantity = row.TotalQuantity.Add(Normalize(item.Quantity, item.Unit, p.ConversionFactor))
		row.TotalSales = row.TotalSales.Add(item.UnitPrice.Mul(item.Quantity))
		row.TotalCost = row.TotalCost.Add(valuator.ItemCost(item, invoiceDates[item.InvoiceID]))
	}

	rows := make([]ProductRow, 0, len(groups))
	for _, id := range order {
		row := groups[id]
		if row.TotalQuantity.IsPositive() {
			row.AvgPurchasePrice = row.TotalCost.Div(row.TotalQuantity)
			row.AvgSalePrice = row.TotalSales.Div(row.TotalQuantity)
		}
		row.Profit = row.TotalSales.Sub(row.TotalCost)
		row.ProfitMargin = marginPercent(row.Profit, row.TotalSales)
		row.Rating = classifyMargin(row.ProfitMargin)
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Profit.GreaterThan(rows[j].Profit)
	})
	return rows
}

// CustomerProfitability groups the filtered invoices by customer. Each
// customer's cost is the sum of cost of goods sold over their invoices'
// retained items, valued as of each invoice's own date. Invoices whose
// customer is unknown are dropped. Rows come back sorted by profit, highest
// first.
func CustomerProfitability(f Filter, snap *Snapshot) []CustomerRow {
	sales := FilterSales(f, snap)
	valuator := NewCostValuator(snap)

	customers := make(map[string]Customer, len(snap.Customers))
	for _, c := range snap.Customers {
		customers[c.ID] = c
	}

	invoiceCustomer := make(map[string]string, len(sales.Invoices))
	invoiceDates := make(map[string]string, len(sales.Invoices))

	groups := make(map[string]*CustomerRow)
	order := make([]string, 0)
	for _, inv := range sales.Invoices {
		c, ok := customers[inv.CustomerID]
		if !ok {
			continue
		}
		invoiceCustomer[inv.ID] = inv.CustomerID
		invoiceDates[inv.ID] = inv.Date

		row, ok := groups[inv.CustomerID]
		if !ok {
			row = &CustomerRow{Customer: c}
			groups[inv.CustomerID] = row
			order = append(order, inv.CustomerID)
		}
		row.InvoiceCount++
		row.TotalSales = row.TotalSales.Add(inv.Total)
	}

	for _, item := range sales.Items {
		customerID, ok := invoiceCustomer[item.InvoiceID]
		if !ok {
			continue
		}
		row := groups[customerID]
		row.TotalCost = row.TotalCost.Add(valuator.ItemCost(item, invoiceDates[item.InvoiceID]))
	}

	rows := make([]CustomerRow, 0, len(groups))
	for _, id := range order {
		row := groups[id]
		row.Profit = row.TotalSales.Sub(row.TotalCost)
		row.ProfitMargin = marginPercent(row.Profit, row.TotalSales)
		row.Rating = classifyMargin(row.ProfitMargin)
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Profit.GreaterThan(rows[j].Profit)
	})
	return rows
}

// SupplierPurchases groups the date-bounded purchase invoices by supplier.
// Invoices whose supplier is unknown are dropped. Rows come back sorted by
// total purchases, highest first.
func SupplierPurchases(f Filter, snap *Snapshot) []SupplierRow {
	suppliers := make(map[string]Supplier, len(snap.Suppliers))
	for _, s := range snap.Suppliers {
		suppliers[s.ID] = s
	}

	groups := make(map[string]*SupplierRow)
	order := make([]string, 0)
	for _, inv := range snap.PurchaseInvoices {
		d := dateKey(inv.Date)
		if d < f.FromDate || d > f.ToDate {
			continue
		}
		s, ok := suppliers[inv.SupplierID]
		if !ok {
			continue
		}
		row, ok := groups[inv.SupplierID]
		if !ok {
			row = &SupplierRow{Supplier: s}
			groups[inv.SupplierID] = row
			order = append(order, inv.SupplierID)
		}
		row.InvoiceCount++
		row.TotalPurchases = row.TotalPurchases.Add(inv.Total)
		row.TotalPaid = row.TotalPaid.Add(inv.Paid)
		row.TotalOutstanding = row.TotalOutstanding.Add(inv.Remaining)
	}

	rows := make([]SupplierRow, 0, len(groups))
	for _, id := range order {
		rows = append(rows, *groups[id])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPurchases.GreaterThan(rows[j].TotalPurchases)
	})
	return rows
}
