package finance

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/finance"
	"github.com/hisabat/backend/internal/domain/partner"
	"github.com/hisabat/backend/internal/domain/shared"
)

// VoucherService records payments to suppliers and receipts from customers.
// Each voucher settles part of the partner's running balance.
type VoucherService struct {
	vouchers  finance.VoucherRepository
	customers partner.CustomerRepository
	suppliers partner.SupplierRepository
}

// NewVoucherService creates a new VoucherService
func NewVoucherService(
	vouchers finance.VoucherRepository,
	customers partner.CustomerRepository,
	suppliers partner.SupplierRepository,
) *VoucherService {
	return &VoucherService{
		vouchers:  vouchers,
		customers: customers,
		suppliers: suppliers,
	}
}

// CreatePayment records money paid to a supplier and reduces the supplier's
// payable balance.
func (s *VoucherService) CreatePayment(ctx context.Context, req CreateVoucherRequest) (*VoucherResponse, error) {
	voucher, err := finance.NewVoucher(finance.VoucherPayment, req.PartnerID, req.Date, req.Amount, req.Notes)
	if err != nil {
		return nil, err
	}

	supplier, err := s.suppliers.FindByID(ctx, req.PartnerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier not found")
		}
		return nil, err
	}

	if err := s.vouchers.Save(ctx, voucher); err != nil {
		return nil, err
	}
	supplier.AdjustBalance(req.Amount.Neg())
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return voucherResponse(voucher), nil
}

// CreateReceipt records money received from a customer and reduces the
// customer's receivable balance.
func (s *VoucherService) CreateReceipt(ctx context.Context, req CreateVoucherRequest) (*VoucherResponse, error) {
	voucher, err := finance.NewVoucher(finance.VoucherReceipt, req.PartnerID, req.Date, req.Amount, req.Notes)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.FindByID(ctx, req.PartnerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer not found")
		}
		return nil, err
	}

	if err := s.vouchers.Save(ctx, voucher); err != nil {
		return nil, err
	}
	customer.AdjustBalance(req.Amount.Neg())
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return voucherResponse(voucher), nil
}

// ListPayments returns all payment vouchers
func (s *VoucherService) ListPayments(ctx context.Context) ([]*VoucherResponse, error) {
	return s.list(ctx, finance.VoucherPayment)
}

// ListReceipts returns all receipt vouchers
func (s *VoucherService) ListReceipts(ctx context.Context) ([]*VoucherResponse, error) {
	return s.list(ctx, finance.VoucherReceipt)
}

func (s *VoucherService) list(ctx context.Context, kind finance.VoucherKind) ([]*VoucherResponse, error) {
	vouchers, err := s.vouchers.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]*VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		out[i] = voucherResponse(v)
	}
	return out, nil
}

// Delete removes a voucher and rolls its amount back onto the partner balance.
func (s *VoucherService) Delete(ctx context.Context, id uuid.UUID) error {
	voucher, err := s.vouchers.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.vouchers.Delete(ctx, id); err != nil {
		return err
	}

	switch voucher.Kind {
	case finance.VoucherPayment:
		return s.adjustSupplier(ctx, voucher.PartnerID, voucher.Amount)
	case finance.VoucherReceipt:
		return s.adjustCustomer(ctx, voucher.PartnerID, voucher.Amount)
	}
	return nil
}

func (s *VoucherService) adjustSupplier(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	supplier.AdjustBalance(delta)
	return s.suppliers.Save(ctx, supplier)
}

func (s *VoucherService) adjustCustomer(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	customer.AdjustBalance(delta)
	return s.customers.Save(ctx, customer)
}
