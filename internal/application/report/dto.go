package report

// ReportFilter is the query-string filter shared by all report endpoints.
// Dates are ISO strings; empty bounds are passed through untouched so the
// engine's range semantics apply unchanged.
type ReportFilter struct {
	From       string `form:"from"`
	To         string `form:"to"`
	CustomerID string `form:"customer_id"`
	Selector   string `form:"selector" binding:"omitempty,selector"`
}

// SummaryResponse is the KPI block of the profitability report.
type SummaryResponse struct {
	TotalSales    float64 `json:"total_sales"`
	TotalCOGS     float64 `json:"total_cogs"`
	GrossProfit   float64 `json:"gross_profit"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	ProfitMargin  float64 `json:"profit_margin"`
}

// ProductRowResponse is one row of the per-product profitability table.
type ProductRowResponse struct {
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	Category         string  `json:"category"`
	TotalQuantity    float64 `json:"total_quantity"`
	AvgPurchasePrice float64 `json:"avg_purchase_price"`
	AvgSalePrice     float64 `json:"avg_sale_price"`
	TotalCost        float64 `json:"total_cost"`
	TotalSales       float64 `json:"total_sales"`
	Profit           float64 `json:"profit"`
	ProfitMargin     float64 `json:"profit_margin"`
	Rating           string  `json:"rating"`
}

// CustomerRowResponse is one row of the per-customer profitability table.
type CustomerRowResponse struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	InvoiceCount int     `json:"invoice_count"`
	TotalSales   float64 `json:"total_sales"`
	TotalCost    float64 `json:"total_cost"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
	Rating       string  `json:"rating"`
}

// SupplierRowResponse is one row of the per-supplier purchases table.
type SupplierRowResponse struct {
	SupplierID       string  `json:"supplier_id"`
	SupplierName     string  `json:"supplier_name"`
	InvoiceCount     int     `json:"invoice_count"`
	TotalPurchases   float64 `json:"total_purchases"`
	TotalPaid        float64 `json:"total_paid"`
	TotalOutstanding float64 `json:"total_outstanding"`
}

// AlertResponse is one flagged product.
type AlertResponse struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	TotalSales   float64 `json:"total_sales"`
	TotalCost    float64 `json:"total_cost"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

// AlertsResponse groups the two alert lists.
type AlertsResponse struct {
	HighSalesLowMargin []AlertResponse `json:"high_sales_low_margin"`
	LossMaking         []AlertResponse `json:"loss_making"`
}

// DashboardResponse is the landing-page aggregate: entity counts plus the
// current month's KPI summary.
type DashboardResponse struct {
	Products         int             `json:"products"`
	Customers        int             `json:"customers"`
	Suppliers        int             `json:"suppliers"`
	SalesInvoices    int             `json:"sales_invoices"`
	PurchaseInvoices int             `json:"purchase_invoices"`
	Expenses         int             `json:"expenses"`
	CurrentMonth     SummaryResponse `json:"current_month"`
}
