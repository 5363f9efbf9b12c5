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

// PurchaseInvoiceService records supplier invoices and keeps the supplier's
// payable balance in step with them.
type PurchaseInvoiceService struct {
	invoices  trade.PurchaseInvoiceRepository
	suppliers partner.SupplierRepository
	products  catalog.ProductRepository
}

// NewPurchaseInvoiceService creates a new PurchaseInvoiceService
func NewPurchaseInvoiceService(
	invoices trade.PurchaseInvoiceRepository,
	suppliers partner.SupplierRepository,
	products catalog.ProductRepository,
) *PurchaseInvoiceService {
	return &PurchaseInvoiceService{
		invoices:  invoices,
		suppliers: suppliers,
		products:  products,
	}
}

// Create records a purchase invoice with its lines. The unpaid remainder is
// added to the supplier's payable balance.
func (s *PurchaseInvoiceService) Create(ctx context.Context, req CreatePurchaseInvoiceRequest) (*PurchaseInvoiceResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, req.SupplierID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier not found")
		}
		return nil, err
	}

	invoice, err := trade.NewPurchaseInvoice(supplier.ID, req.Date)
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
	if err := invoice.RecordPayment(req.Paid); err != nil {
		return nil, err
	}

	if err := s.invoices.Save(ctx, invoice); err != nil {
		return nil, err
	}

	supplier.AdjustBalance(invoice.Remaining)
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return purchaseInvoiceResponse(invoice), nil
}

// Get returns a single purchase invoice with its items
func (s *PurchaseInvoiceService) Get(ctx context.Context, id uuid.UUID) (*PurchaseInvoiceResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return purchaseInvoiceResponse(invoice), nil
}

// List returns all purchase invoices
func (s *PurchaseInvoiceService) List(ctx context.Context) ([]*PurchaseInvoiceResponse, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*PurchaseInvoiceResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = purchaseInvoiceResponse(inv)
	}
	return out, nil
}

// Delete removes a purchase invoice and rolls its unpaid remainder off the
// supplier's balance.
func (s *PurchaseInvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.invoices.Delete(ctx, id); err != nil {
		return err
	}

	supplier, err := s.suppliers.FindByID(ctx, invoice.SupplierID)
	if err != nil {
		// The supplier may have been removed; the invoice itself is gone.
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	supplier.AdjustBalance(invoice.Remaining.Neg())
	return s.suppliers.Save(ctx, supplier)
}
