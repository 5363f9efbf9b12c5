package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hisabat/backend/internal/application/finance"
)

// VoucherHandler handles payment and receipt voucher endpoints
type VoucherHandler struct {
	BaseHandler
	vouchers *finance.VoucherService
}

// NewVoucherHandler creates a new VoucherHandler
func NewVoucherHandler(vouchers *finance.VoucherService) *VoucherHandler {
	return &VoucherHandler{vouchers: vouchers}
}

// CreatePayment records money paid to a supplier
// POST /api/v1/payments
func (h *VoucherHandler) CreatePayment(c *gin.Context) {
	var req finance.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.vouchers.CreatePayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListPayments returns all payment vouchers
// GET /api/v1/payments
func (h *VoucherHandler) ListPayments(c *gin.Context) {
	resp, err := h.vouchers.ListPayments(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateReceipt records money received from a customer
// POST /api/v1/receipts
func (h *VoucherHandler) CreateReceipt(c *gin.Context) {
	var req finance.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.vouchers.CreateReceipt(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListReceipts returns all receipt vouchers
// GET /api/v1/receipts
func (h *VoucherHandler) ListReceipts(c *gin.Context) {
	resp, err := h.vouchers.ListReceipts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a voucher and restores the partner balance
// DELETE /api/v1/vouchers/:id
func (h *VoucherHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.vouchers.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
