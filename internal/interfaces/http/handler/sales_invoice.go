package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hisabat/backend/internal/application/trade"
)

// SalesInvoiceHandler handles sales invoice endpoints
type SalesInvoiceHandler struct {
	BaseHandler
	invoices *trade.SalesInvoiceService
}

// NewSalesInvoiceHandler creates a new SalesInvoiceHandler
func NewSalesInvoiceHandler(invoices *trade.SalesInvoiceService) *SalesInvoiceHandler {
	return &SalesInvoiceHandler{invoices: invoices}
}

// Create records a sales invoice
// POST /api/v1/sales-invoices
func (h *SalesInvoiceHandler) Create(c *gin.Context) {
	var req trade.CreateSalesInvoiceRequest
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

// Get returns a single sales invoice
// GET /api/v1/sales-invoices/:id
func (h *SalesInvoiceHandler) Get(c *gin.Context) {
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

// List returns all sales invoices
// GET /api/v1/sales-invoices
func (h *SalesInvoiceHandler) List(c *gin.Context) {
	resp, err := h.invoices.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a sales invoice
// DELETE /api/v1/sales-invoices/:id
func (h *SalesInvoiceHandler) Delete(c *gin.Context) {
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
