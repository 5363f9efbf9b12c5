package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/finance"
)

// ExpenseModel is the persistence model for the Expense domain entity.
type ExpenseModel struct {
	BaseModel
	Date        string          `gorm:"type:varchar(30);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Category    string          `gorm:"type:varchar(100);index"`
	Description string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense entity.
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		ID:          m.ID,
		Date:        m.Date,
		Amount:      m.Amount,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ExpenseModelFromDomain creates a persistence model from a domain Expense entity.
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	return &ExpenseModel{
		BaseModel: BaseModel{
			ID:        e.ID,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		},
		Date:        e.Date,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
	}
}

// VoucherModel is the persistence model for the Voucher domain entity.
type VoucherModel struct {
	BaseModel
	Kind      string          `gorm:"type:varchar(20);not null;index"`
	PartnerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date      string          `gorm:"type:varchar(30);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Notes     string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (VoucherModel) TableName() string {
	return "vouchers"
}

// ToDomain converts the persistence model to a domain Voucher entity.
func (m *VoucherModel) ToDomain() *finance.Voucher {
	return &finance.Voucher{
		ID:        m.ID,
		Kind:      finance.VoucherKind(m.Kind),
		PartnerID: m.PartnerID,
		Date:      m.Date,
		Amount:    m.Amount,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// VoucherModelFromDomain creates a persistence model from a domain Voucher entity.
func VoucherModelFromDomain(v *finance.Voucher) *VoucherModel {
	return &VoucherModel{
		BaseModel: BaseModel{
			ID:        v.ID,
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.CreatedAt,
		},
		Kind:      string(v.Kind),
		PartnerID: v.PartnerID,
		Date:      v.Date,
		Amount:    v.Amount,
		Notes:     v.Notes,
	}
}
