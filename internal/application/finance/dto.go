package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/finance"
)

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"required,max=30"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"max=100"`
	Description string          `json:"description" binding:"max=2000"`
}

// UpdateExpenseRequest represents a partial update to an expense
type UpdateExpenseRequest struct {
	Date        *string          `json:"date" binding:"omitempty,max=30"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func expenseResponse(e *finance.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// CreateVoucherRequest represents a request to record a payment or receipt
type CreateVoucherRequest struct {
	PartnerID uuid.UUID       `json:"partner_id" binding:"required"`
	Date      string          `json:"date" binding:"required,max=30"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Notes     string          `json:"notes" binding:"max=2000"`
}

// VoucherResponse represents a voucher in API responses
type VoucherResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	PartnerID uuid.UUID       `json:"partner_id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
}

func voucherResponse(v *finance.Voucher) *VoucherResponse {
	return &VoucherResponse{
		ID:        v.ID,
		Kind:      string(v.Kind),
		PartnerID: v.PartnerID,
		Date:      v.Date,
		Amount:    v.Amount,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}
