package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/report"
)

// SnapshotLoader materializes the full in-memory state the engine computes
// over. Implemented by the persistence layer.
type SnapshotLoader interface {
	Load(ctx context.Context) (*report.Snapshot, error)
}

// ReportService runs the profitability engine over a freshly loaded snapshot
// and converts decimal results to float64 at this boundary only.
type ReportService struct {
	snapshots SnapshotLoader
}

// NewReportService creates a new ReportService
func NewReportService(snapshots SnapshotLoader) *ReportService {
	return &ReportService{snapshots: snapshots}
}

// Summary returns the KPI block for the filtered period.
func (s *ReportService) Summary(ctx context.Context, filter ReportFilter) (*SummaryResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	summary := report.ComputeSummary(filter.toDomain(), snap)
	resp := summaryResponse(summary)
	return &resp, nil
}

// Products returns the per-product profitability table, most profitable first.
func (s *ReportService) Products(ctx context.Context, filter ReportFilter) ([]ProductRowResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	rows := report.ProductProfitability(filter.toDomain(), snap)
	out := make([]ProductRowResponse, len(rows))
	for i, r := range rows {
		out[i] = ProductRowResponse{
			ProductID:        r.Product.ID,
			ProductName:      r.Product.Name,
			Category:         r.Product.Category,
			TotalQuantity:    toFloat64(r.TotalQuantity),
			AvgPurchasePrice: toFloat64(r.AvgPurchasePrice),
			AvgSalePrice:     toFloat64(r.AvgSalePrice),
			TotalCost:        toFloat64(r.TotalCost),
			TotalSales:       toFloat64(r.TotalSales),
			Profit:           toFloat64(r.Profit),
			ProfitMargin:     toFloat64(r.ProfitMargin),
			Rating:           string(r.Rating),
		}
	}
	return out, nil
}

// Customers returns the per-customer profitability table, most profitable first.
func (s *ReportService) Customers(ctx context.Context, filter ReportFilter) ([]CustomerRowResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	rows := report.CustomerProfitability(filter.toDomain(), snap)
	out := make([]CustomerRowResponse, len(rows))
	for i, r := range rows {
		out[i] = CustomerRowResponse{
			CustomerID:   r.Customer.ID,
			CustomerName: r.Customer.Name,
			InvoiceCount: r.InvoiceCount,
			TotalSales:   toFloat64(r.TotalSales),
			TotalCost:    toFloat64(r.TotalCost),
			Profit:       toFloat64(r.Profit),
			ProfitMargin: toFloat64(r.ProfitMargin),
			Rating:       string(r.Rating),
		}
	}
	return out, nil
}

// Suppliers returns the per-supplier purchase volume table.
func (s *ReportService) Suppliers(ctx context.Context, filter ReportFilter) ([]SupplierRowResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	rows := report.SupplierPurchases(filter.toDomain(), snap)
	out := make([]SupplierRowResponse, len(rows))
	for i, r := range rows {
		out[i] = SupplierRowResponse{
			SupplierID:       r.Supplier.ID,
			SupplierName:     r.Supplier.Name,
			InvoiceCount:     r.InvoiceCount,
			TotalPurchases:   toFloat64(r.TotalPurchases),
			TotalPaid:        toFloat64(r.TotalPaid),
			TotalOutstanding: toFloat64(r.TotalOutstanding),
		}
	}
	return out, nil
}

// Alerts returns the high-sales-low-margin and loss-making product lists.
func (s *ReportService) Alerts(ctx context.Context, filter ReportFilter) (*AlertsResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	alerts := report.GenerateAlerts(filter.toDomain(), snap)
	return &AlertsResponse{
		HighSalesLowMargin: alertResponses(alerts.HighSalesLowMargin),
		LossMaking:         alertResponses(alerts.LossMaking),
	}, nil
}

// Dashboard returns entity counts plus the KPI summary for the current month
// to date.
func (s *ReportService) Dashboard(ctx context.Context, now time.Time) (*DashboardResponse, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}

	filter := report.Filter{
		FromDate: now.Format("2006-01") + "-01",
		ToDate:   now.Format("2006-01-02"),
	}
	summary := report.ComputeSummary(filter, snap)

	return &DashboardResponse{
		Products:         len(snap.Products),
		Customers:        len(snap.Customers),
		Suppliers:        len(snap.Suppliers),
		SalesInvoices:    len(snap.SalesInvoices),
		PurchaseInvoices: len(snap.PurchaseInvoices),
		Expenses:         len(snap.Expenses),
		CurrentMonth:     summaryResponse(summary),
	}, nil
}

func (f ReportFilter) toDomain() report.Filter {
	return report.Filter{
		FromDate:   f.From,
		ToDate:     f.To,
		CustomerID: f.CustomerID,
		Selector:   f.Selector,
	}
}

func summaryResponse(s report.Summary) SummaryResponse {
	return SummaryResponse{
		TotalSales:    toFloat64(s.TotalSales),
		TotalCOGS:     toFloat64(s.TotalCOGS),
		GrossProfit:   toFloat64(s.GrossProfit),
		TotalExpenses: toFloat64(s.TotalExpenses),
		NetProfit:     toFloat64(s.NetProfit),
		ProfitMargin:  toFloat64(s.ProfitMargin),
	}
}

func alertResponses(alerts []report.Alert) []AlertResponse {
	out := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = AlertResponse{
			ProductID:    a.Product.ID,
			ProductName:  a.Product.Name,
			TotalSales:   toFloat64(a.TotalSales),
			TotalCost:    toFloat64(a.TotalCost),
			Profit:       toFloat64(a.Profit),
			ProfitMargin: toFloat64(a.ProfitMargin),
		}
	}
	return out
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
