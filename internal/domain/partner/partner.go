package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/shared"
)

// Customer is a buying party. Balance is the running receivable maintained by
// the invoicing and receipt flows; the analytics engine never touches it.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Address   string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer creates a customer record.
func NewCustomer(name, phone, address string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	now := time.Now()
	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AdjustBalance shifts the customer's receivable by delta (positive when an
// invoice adds debt, negative when a receipt settles it).
func (c *Customer) AdjustBalance(delta decimal.Decimal) {
	c.Balance = c.Balance.Add(delta)
	c.UpdatedAt = time.Now()
}

// Supplier is a selling party. Balance is the running payable.
type Supplier struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Address   string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSupplier creates a supplier record.
func NewSupplier(name, phone, address string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	now := time.Now()
	return &Supplier{
		ID:        uuid.New(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AdjustBalance shifts the supplier's payable by delta.
func (s *Supplier) AdjustBalance(delta decimal.Decimal) {
	s.Balance = s.Balance.Add(delta)
	s.UpdatedAt = time.Now()
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}
