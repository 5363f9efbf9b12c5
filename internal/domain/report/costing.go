package report

import "github.com/shopspring/decimal"

// Normalize converts a quantity recorded in the given unit to the product's
// smallest unit. factor is the product's conversion factor (largest-unit
// quantity expressed in smallest units).
func Normalize(qty decimal.Decimal, unit Unit, factor decimal.Decimal) decimal.Decimal {
	if unit == UnitLargest {
		return qty.Mul(factor)
	}
	return qty
}

// CostValuator values inventory at a date-bounded weighted-average purchase
// cost. It is a pure view over one snapshot: building it only indexes the
// purchase ledger, and every valuation is recomputed from scratch from that
// ledger, so identical inputs always produce identical results.
type CostValuator struct {
	products       map[string]Product
	invoiceDates   map[string]string // purchase invoice id -> YYYY-MM-DD
	itemsByProduct map[string][]PurchaseItem
}

// NewCostValuator indexes the snapshot's purchase ledger for valuation.
func NewCostValuator(snap *Snapshot) *CostValuator {
	v := &CostValuator{
		products:       snap.ProductByID(),
		invoiceDates:   make(map[string]string, len(snap.PurchaseInvoices)),
		itemsByProduct: make(map[string][]PurchaseItem, len(snap.Products)),
	}
	for _, inv := range snap.PurchaseInvoices {
		v.invoiceDates[inv.ID] = dateKey(inv.Date)
	}
	for _, item := range snap.PurchaseItems {
		v.itemsByProduct[item.ProductID] = append(v.itemsByProduct[item.ProductID], item)
	}
	return v
}

// AverageUnitCost returns the blended weighted-average cost of one smallest
// unit of the product, using only purchase lines whose invoice date is on or
// before asOf. An empty asOf makes all purchase history eligible. Products
// with no eligible purchased quantity value at zero.
//
// This is a single blended average over all eligible history, not FIFO/LIFO
// and not a moving average recomputed per purchase.
func (v *CostValuator) AverageUnitCost(productID, asOf string) decimal.Decimal {
	cutoff := dateKey(asOf)
	factor := decimal.NewFromInt(1)
	if p, ok := v.products[productID]; ok {
		factor = p.ConversionFactor
	}

	totalCost := decimal.Zero
	totalQty := decimal.Zero
	for _, item := range v.itemsByProduct[productID] {
		date, ok := v.invoiceDates[item.InvoiceID]
		if !ok {
			continue
		}
		if cutoff != "" && date > cutoff {
			continue
		}
		totalCost = totalCost.Add(item.UnitPrice.Mul(item.Quantity))
		totalQty = totalQty.Add(Normalize(item.Quantity, item.Unit, factor))
	}

	if !totalQty.IsPositive() {
		return decimal.Zero
	}
	return totalCost.Div(totalQty)
}

// ItemCost returns the cost of goods sold for one sales line: the weighted
// average unit cost as of the sale date times the normalized quantity. Items
// whose product cannot be resolved contribute zero.
func (v *CostValuator) ItemCost(item SalesItem, saleDate string) decimal.Decimal {
	p, ok := v.products[item.ProductID]
	if !ok {
		return decimal.Zero
	}
	avg := v.AverageUnitCost(item.ProductID, saleDate)
	return avg.Mul(Normalize(item.Quantity, item.Unit, p.ConversionFactor))
}
