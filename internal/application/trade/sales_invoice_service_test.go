package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabat/backend/internal/domain/catalog"
	"github.com/hisabat/backend/internal/domain/partner"
	"github.com/hisabat/backend/internal/domain/shared"
	"github.com/hisabat/backend/internal/domain/trade"
)

type fakeSalesInvoiceRepo struct {
	invoices map[uuid.UUID]*trade.SalesInvoice
}

func newFakeSalesInvoiceRepo() *fakeSalesInvoiceRepo {
	return &fakeSalesInvoiceRepo{invoices: make(map[uuid.UUID]*trade.SalesInvoice)}
}

func (r *fakeSalesInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesInvoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return inv, nil
}

func (r *fakeSalesInvoiceRepo) List(ctx context.Context) ([]*trade.SalesInvoice, error) {
	out := make([]*trade.SalesInvoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *fakeSalesInvoiceRepo) Save(ctx context.Context, invoice *trade.SalesInvoice) error {
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeSalesInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.invoices[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.invoices, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*partner.Customer
}

func newFakeCustomerRepo(customers ...*partner.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[uuid.UUID]*partner.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context) ([]*partner.Customer, error) {
	out := make([]*partner.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newFakeProductRepo(products ...*catalog.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*catalog.Product, error) {
	out := make([]*catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func newTestService(t *testing.T) (*SalesInvoiceService, *partner.Customer, *catalog.Product, *fakeSalesInvoiceRepo) {
	t.Helper()
	customer, err := partner.NewCustomer("Corner Market", "", "")
	require.NoError(t, err)
	product, err := catalog.NewProduct("Rice 5kg", "food", "bag", "carton", decimal.NewFromInt(12))
	require.NoError(t, err)

	invoices := newFakeSalesInvoiceRepo()
	svc := NewSalesInvoiceService(invoices, newFakeCustomerRepo(customer), newFakeProductRepo(product))
	return svc, customer, product, invoices
}

func TestSalesInvoiceService_Create(t *testing.T) {
	svc, customer, product, _ := newTestService(t)

	resp, err := svc.Create(context.Background(), CreateSalesInvoiceRequest{
		CustomerID: customer.ID,
		Date:       "2024-02-10",
		Paid:       decimal.NewFromInt(150),
		Items: []InvoiceItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(20), Unit: "smallest", UnitPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.Paid.Equal(decimal.NewFromInt(150)))
	assert.True(t, resp.Remaining.Equal(decimal.NewFromInt(50)))
	require.Len(t, resp.Items, 1)

	// The unpaid remainder lands on the customer's receivable balance.
	assert.True(t, customer.Balance.Equal(decimal.NewFromInt(50)))
}

func TestSalesInvoiceService_Create_UnknownCustomer(t *testing.T) {
	svc, _, product, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateSalesInvoiceRequest{
		CustomerID: uuid.New(),
		Date:       "2024-02-10",
		Items: []InvoiceItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(1), Unit: "smallest", UnitPrice: decimal.NewFromInt(10)},
		},
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CUSTOMER", domainErr.Code)
}

func TestSalesInvoiceService_Create_UnknownProduct(t *testing.T) {
	svc, customer, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateSalesInvoiceRequest{
		CustomerID: customer.ID,
		Date:       "2024-02-10",
		Items: []InvoiceItemRequest{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1), Unit: "smallest", UnitPrice: decimal.NewFromInt(10)},
		},
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PRODUCT", domainErr.Code)
}

func TestSalesInvoiceService_Delete_RestoresBalance(t *testing.T) {
	svc, customer, product, invoices := newTestService(t)

	resp, err := svc.Create(context.Background(), CreateSalesInvoiceRequest{
		CustomerID: customer.ID,
		Date:       "2024-02-10",
		Items: []InvoiceItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(20), Unit: "smallest", UnitPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)
	assert.True(t, customer.Balance.Equal(decimal.NewFromInt(200)))

	require.NoError(t, svc.Delete(context.Background(), resp.ID))
	assert.True(t, customer.Balance.IsZero())
	assert.Empty(t, invoices.invoices)

	assert.True(t, errors.Is(svc.Delete(context.Background(), resp.ID), shared.ErrNotFound))
}
