package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hisabat/backend/internal/application/partner"
)

// SupplierHandler handles supplier endpoints
type SupplierHandler struct {
	BaseHandler
	suppliers *partner.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(suppliers *partner.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// Create creates a new supplier
// POST /api/v1/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req partner.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.suppliers.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single supplier
// GET /api/v1/suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.suppliers.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns all suppliers
// GET /api/v1/suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	resp, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update applies a partial update to a supplier
// PUT /api/v1/suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req partner.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.suppliers.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a supplier
// DELETE /api/v1/suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.suppliers.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
