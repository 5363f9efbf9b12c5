package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hisabat/backend/internal/application/trade"
)

// PurchaseInvoiceHandler handles purchase invoice endpoints
type PurchaseInvoiceHandler struct {
	BaseHandler
	invoices *trade.PurchaseInvoiceService
}

// NewPurchaseInvoiceHandler creates a new PurchaseInvoiceHandler
func NewPurchaseInvoiceHandler(invoices *trade.PurchaseInvoiceService) *PurchaseInvoiceHandler {
	return &PurchaseInvoiceHandler{invoices: invoices}
}

// Create records a purchase invoice
// POST /api/v1/purchase-invoices
func (h *PurchaseInvoiceHandler) Create(c *gin.Context) {
	var req trade.CreatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.invoices.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single purchase invoice
// GET /api/v1/purchase-invoices/:id
func (h *PurchaseInvoiceHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.invoices.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns all purchase invoices
// GET /api/v1/purchase-invoices
func (h *PurchaseInvoiceHandler) List(c *gin.Context) {
	resp, err := h.invoices.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a purchase invoice
// DELETE /api/v1/purchase-invoices/:id
func (h *PurchaseInvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.invoices.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
