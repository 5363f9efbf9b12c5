package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hisabat/backend/internal/application/finance"
)

// ExpenseHandler handles expense endpoints
type ExpenseHandler struct {
	BaseHandler
	expenses *finance.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenses *finance.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Create records an expense
// POST /api/v1/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req finance.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.expenses.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single expense
// GET /api/v1/expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.expenses.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns all expenses
// GET /api/v1/expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	resp, err := h.expenses.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update applies a partial update to an expense
// PUT /api/v1/expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req finance.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.expenses.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes an expense
// DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
