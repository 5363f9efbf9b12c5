package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/catalog"
	"github.com/hisabat/backend/internal/domain/shared"
)

var oneFactor = decimal.NewFromInt(1)

// ProductService handles product CRUD operations
type ProductService struct {
	products catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Category, req.SmallestUnit, req.LargestUnit, req.ConversionFactor)
	if err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return productResponse(product), nil
}

// Get returns a single product
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productResponse(product), nil
}

// List returns all products
func (s *ProductService) List(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ProductResponse, len(products))
	for i, p := range products {
		out[i] = productResponse(p)
	}
	return out, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.SmallestUnit != nil {
		if *req.SmallestUnit == "" {
			return nil, shared.NewDomainError("INVALID_UNIT", "Smallest unit label cannot be empty")
		}
		product.SmallestUnit = *req.SmallestUnit
	}
	if req.LargestUnit != nil {
		product.LargestUnit = *req.LargestUnit
	}
	if req.ConversionFactor != nil {
		if req.ConversionFactor.LessThan(oneFactor) {
			return nil, shared.NewDomainError("INVALID_CONVERSION_FACTOR", "Conversion factor must be at least 1")
		}
		product.ConversionFactor = *req.ConversionFactor
	}
	product.UpdatedAt = time.Now()

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return productResponse(product), nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}
