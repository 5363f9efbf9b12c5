package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/shared"
)

// Expense is an operating expense (rent, salaries, utilities). Expenses enter
// the profitability report's net-profit calculation, bounded by date only.
type Expense struct {
	ID          uuid.UUID
	Date        string // ISO date
	Amount      decimal.Decimal
	Category    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates an expense record.
func NewExpense(date string, amount decimal.Decimal, category, description string) (*Expense, error) {
	if date == "" {
		return nil, shared.NewDomainError("INVALID_DATE", "Expense date cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}
	now := time.Now()
	return &Expense{
		ID:          uuid.New(),
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// VoucherKind separates money paid to suppliers from money received from
// customers.
type VoucherKind string

const (
	VoucherPayment VoucherKind = "payment" // paid to a supplier
	VoucherReceipt VoucherKind = "receipt" // received from a customer
)

// Voucher is a payment or receipt record against a partner. Vouchers adjust
// partner balances in the CRUD layer; the analytics engine never reads them.
type Voucher struct {
	ID        uuid.UUID
	Kind      VoucherKind
	PartnerID uuid.UUID
	Date      string
	Amount    decimal.Decimal
	Notes     string
	CreatedAt time.Time
}

// NewVoucher creates a payment or receipt voucher.
func NewVoucher(kind VoucherKind, partnerID uuid.UUID, date string, amount decimal.Decimal, notes string) (*Voucher, error) {
	if kind != VoucherPayment && kind != VoucherReceipt {
		return nil, shared.NewDomainError("INVALID_VOUCHER_KIND", "Voucher kind must be payment or receipt")
	}
	if partnerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTNER", "Partner ID cannot be empty")
	}
	if date == "" {
		return nil, shared.NewDomainError("INVALID_DATE", "Voucher date cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Voucher amount must be positive")
	}
	return &Voucher{
		ID:        uuid.New(),
		Kind:      kind,
		PartnerID: partnerID,
		Date:      date,
		Amount:    amount,
		Notes:     notes,
		CreatedAt: time.Now(),
	}, nil
}

// ExpenseRepository persists expenses.
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	List(ctx context.Context) ([]*Expense, error)
	Save(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VoucherRepository persists payment and receipt vouchers.
type VoucherRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Voucher, error)
	ListByKind(ctx context.Context, kind VoucherKind) ([]*Voucher, error)
	Save(ctx context.Context, voucher *Voucher) error
	Delete(ctx context.Context, id uuid.UUID) error
}
