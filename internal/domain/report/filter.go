package report

import "strings"

// Selector prefixes for the category/product narrowing convention used by the
// reports screen: "", "category:<name>" or "product:<id>".
const (
	selectorCategoryPrefix = "category:"
	selectorProductPrefix  = "product:"
)

// Filter narrows the sales ledger for one report run. FromDate and ToDate are
// inclusive YYYY-MM-DD bounds. CustomerID and Selector are optional.
//
// Empty date bounds yield an empty result set, not "all dates". The desktop
// reports screen always submits both bounds; the engine keeps that contract
// rather than inventing an open-ended range.
type Filter struct {
	FromDate   string
	ToDate     string
	CustomerID string
	Selector   string
}

// HasSelector reports whether a category or product selector is active.
func (f Filter) HasSelector() bool {
	return f.Selector != ""
}

// selectorCategory returns the category name when the selector is a category
// selector.
func (f Filter) selectorCategory() (string, bool) {
	if strings.HasPrefix(f.Selector, selectorCategoryPrefix) {
		return f.Selector[len(selectorCategoryPrefix):], true
	}
	return "", false
}

// selectorProduct returns the product id when the selector is a product
// selector.
func (f Filter) selectorProduct() (string, bool) {
	if strings.HasPrefix(f.Selector, selectorProductPrefix) {
		return f.Selector[len(selectorProductPrefix):], true
	}
	return "", false
}

// matchesInvoice reports whether an invoice falls inside the filter's date
// range and customer constraint.
func (f Filter) matchesInvoice(inv SalesInvoice) bool {
	d := dateKey(inv.Date)
	if d < f.FromDate || d > f.ToDate {
		return false
	}
	if f.CustomerID != "" && inv.CustomerID != f.CustomerID {
		return false
	}
	return true
}

// matchesItem reports whether an item passes the category/product selector.
// Category selectors resolve through the product's category; an item whose
// product is unknown cannot match a category.
func (f Filter) matchesItem(item SalesItem, products map[string]Product) bool {
	if cat, ok := f.selectorCategory(); ok {
		p, known := products[item.ProductID]
		return known && p.Category == cat
	}
	if pid, ok := f.selectorProduct(); ok {
		return item.ProductID == pid
	}
	return true
}

// FilteredSales is a mutually consistent subset of the sales ledger: every
// item belongs to a retained invoice, and when a selector is active every
// retained invoice has at least one retained item.
type FilteredSales struct {
	Invoices []SalesInvoice
	Items    []SalesItem
}

// FilterSales applies the filter to the snapshot's sales ledger.
func FilterSales(f Filter, snap *Snapshot) FilteredSales {
	products := snap.ProductByID()

	invoices := make([]SalesInvoice, 0, len(snap.SalesInvoices))
	retained := make(map[string]bool, len(snap.SalesInvoices))
	for _, inv := range snap.SalesInvoices {
		if f.matchesInvoice(inv) {
			invoices = append(invoices, inv)
			retained[inv.ID] = true
		}
	}

	items := make([]SalesItem, 0, len(snap.SalesItems))
	itemCount := make(map[string]int, len(retained))
	for _, item := range snap.SalesItems {
		if !retained[item.InvoiceID] {
			continue
		}
		if !f.matchesItem(item, products) {
			continue
		}
		items = append(items, item)
		itemCount[item.InvoiceID]++
	}

	// A selector can empty out an invoice; drop such invoices so the invoice
	// and item sets stay consistent for the aggregators.
	if f.HasSelector() {
		kept := invoices[:0]
		for _, inv := range invoices {
			if itemCount[inv.ID] > 0 {
				kept = append(kept, inv)
			}
		}
		invoices = kept
	}

	return FilteredSales{Invoices: invoices, Items: items}
}

// matchesExpense reports whether an expense falls inside the filter's date
// range. Expenses are bounded by date only; the customer and selector
// constraints never apply to them.
func (f Filter) matchesExpense(e Expense) bool {
	d := dateKey(e.Date)
	return d >= f.FromDate && d <= f.ToDate
}
