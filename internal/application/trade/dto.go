package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/trade"
)

// InvoiceItemRequest is one line of an invoice creation request
type InvoiceItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Unit      string          `json:"unit" binding:"required,oneof=smallest largest"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreatePurchaseInvoiceRequest represents a request to record a purchase invoice
type CreatePurchaseInvoiceRequest struct {
	SupplierID uuid.UUID            `json:"supplier_id" binding:"required"`
	Date       string               `json:"date" binding:"required,max=30"`
	Paid       decimal.Decimal      `json:"paid"`
	Items      []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateSalesInvoiceRequest represents a request to record a sales invoice
type CreateSalesInvoiceRequest struct {
	CustomerID uuid.UUID            `json:"customer_id" binding:"required"`
	Date       string               `json:"date" binding:"required,max=30"`
	Paid       decimal.Decimal      `json:"paid"`
	Items      []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceItemResponse is one line of an invoice in API responses
type InvoiceItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// PurchaseInvoiceResponse represents a purchase invoice in API responses
type PurchaseInvoiceResponse struct {
	ID         uuid.UUID             `json:"id"`
	SupplierID uuid.UUID             `json:"supplier_id"`
	Date       string                `json:"date"`
	Total      decimal.Decimal       `json:"total"`
	Paid       decimal.Decimal       `json:"paid"`
	Remaining  decimal.Decimal       `json:"remaining"`
	Items      []InvoiceItemResponse `json:"items"`
	CreatedAt  time.Time             `json:"created_at"`
}

func purchaseInvoiceResponse(inv *trade.PurchaseInvoice) *PurchaseInvoiceResponse {
	return &PurchaseInvoiceResponse{
		ID:         inv.ID,
		SupplierID: inv.SupplierID,
		Date:       inv.Date,
		Total:      inv.Total,
		Paid:       inv.Paid,
		Remaining:  inv.Remaining,
		Items:      itemResponses(inv.Items),
		CreatedAt:  inv.CreatedAt,
	}
}

// SalesInvoiceResponse represents a sales invoice in API responses
type SalesInvoiceResponse struct {
	ID         uuid.UUID             `json:"id"`
	CustomerID uuid.UUID             `json:"customer_id"`
	Date       string                `json:"date"`
	Total      decimal.Decimal       `json:"total"`
	Paid       decimal.Decimal       `json:"paid"`
	Remaining  decimal.Decimal       `json:"remaining"`
	Items      []InvoiceItemResponse `json:"items"`
	CreatedAt  time.Time             `json:"created_at"`
}

func salesInvoiceResponse(inv *trade.SalesInvoice) *SalesInvoiceResponse {
	return &SalesInvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Date:       inv.Date,
		Total:      inv.Total,
		Paid:       inv.Paid,
		Remaining:  inv.Remaining,
		Items:      itemResponses(inv.Items),
		CreatedAt:  inv.CreatedAt,
	}
}

func itemResponses(items []trade.LineItem) []InvoiceItemResponse {
	out := make([]InvoiceItemResponse, len(items))
	for i, item := range items {
		out[i] = InvoiceItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Unit:      string(item.Unit),
			UnitPrice: item.UnitPrice,
			Amount:    item.Amount,
		}
	}
	return out
}
