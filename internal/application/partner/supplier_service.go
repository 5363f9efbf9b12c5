package partner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hisabat/backend/internal/domain/partner"
	"github.com/hisabat/backend/internal/domain/shared"
)

// SupplierService handles supplier CRUD operations
type SupplierService struct {
	suppliers partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(suppliers partner.SupplierRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreatePartnerRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.Name, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// Get returns a single supplier
func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// List returns all suppliers
func (s *SupplierService) List(ctx context.Context) ([]*SupplierResponse, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*SupplierResponse, len(suppliers))
	for i, sup := range suppliers {
		out[i] = supplierResponse(sup)
	}
	return out, nil
}

// Update applies a partial update to a supplier
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
		}
		supplier.Name = *req.Name
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	supplier.UpdatedAt = time.Now()

	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.suppliers.Delete(ctx, id)
}
