package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hisabat/backend/internal/domain/catalog"
	"github.com/hisabat/backend/internal/domain/partner"
	"github.com/hisabat/backend/internal/domain/shared"
	"github.com/hisabat/backend/internal/domain/trade"
)

// SalesInvoiceService records customer invoices and keeps the customer's
// receivable balance in step with them.
type SalesInvoiceService struct {
	invoices  trade.SalesInvoiceRepository
	customers partner.CustomerRepository
	products  catalog.ProductRepository
}

// NewSalesInvoiceService creates a new SalesInvoiceService
func NewSalesInvoiceService(
	invoices trade.SalesInvoiceRepository,
	customers partner.CustomerRepository,
	products catalog.ProductRepository,
) *SalesInvoiceService {
	return &SalesInvoiceService{
		invoices:  invoices,
		customers: customers,
		products:  products,
	}
}

// Create records a sales invoice with its lines. Paid and remaining are stored
// on the invoice at creation time; the unpaid remainder is added to the
// customer's receivable balance.
func (s *SalesInvoiceService) Create(ctx context.Context, req CreateSalesInvoiceRequest) (*SalesInvoiceResponse, error) {
	customer, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer not found")
		}
		return nil, err
	}

	invoice, err := trade.NewSalesInvoice(customer.ID, req.Date)
	if err != nil {
		return nil, err
	}
	for _, line := range req.Items {
		if _, err := s.products.FindByID(ctx, line.ProductID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PRODUCT", "Product not found")
			}
			return nil, err
		}
		if _, err := invoice.AddItem(line.ProductID, line.Quantity, trade.Unit(line.Unit), line.UnitPrice); err != nil {
			return nil, err
		}
	}
	if err := invoice.RecordReceipt(req.Paid); err != nil {
		return nil, err
	}

	if err := s.invoices.Save(ctx, invoice); err != nil {
		return nil, err
	}

	customer.AdjustBalance(invoice.Remaining)
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	return salesInvoiceResponse(invoice), nil
}

// Get returns a single sales invoice with its items
func (s *SalesInvoiceService) Get(ctx context.Context, id uuid.UUID) (*SalesInvoiceResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return salesInvoiceResponse(invoice), nil
}

// List returns all sales invoices
func (s *SalesInvoiceService) List(ctx context.Context) ([]*SalesInvoiceResponse, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*SalesInvoiceResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = salesInvoiceResponse(inv)
	}
	return out, nil
}

// Delete removes a sales invoice and rolls its unpaid remainder off the
// customer's balance.
func (s *SalesInvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.invoices.Delete(ctx, id); err != nil {
		return err
	}

	customer, err := s.customers.FindByID(ctx, invoice.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	customer.AdjustBalance(invoice.Remaining.Neg())
	return s.customers.Save(ctx, customer)
}
