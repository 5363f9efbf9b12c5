package partner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hisabat/backend/internal/domain/partner"
	"github.com/hisabat/backend/internal/domain/shared"
)

// CustomerService handles customer CRUD operations
type CustomerService struct {
	customers partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers partner.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreatePartnerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

// Get returns a single customer
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context) ([]*CustomerResponse, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = customerResponse(c)
	}
	return out, nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
		}
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	customer.UpdatedAt = time.Now()

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.customers.Delete(ctx, id)
}
