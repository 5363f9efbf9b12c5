package models

import (
	"github.com/shopspring/decimal"

	"github.com/hisabat/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name    string          `gorm:"type:varchar(200);not null;index"`
	Phone   string          `gorm:"type:varchar(50)"`
	Address string          `gorm:"type:text"`
	Balance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Address:   m.Address,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CustomerModelFromDomain creates a persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	return &CustomerModel{
		BaseModel: BaseModel{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		Balance: c.Balance,
	}
}

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	BaseModel
	Name    string          `gorm:"type:varchar(200);not null;index"`
	Phone   string          `gorm:"type:varchar(50)"`
	Address string          `gorm:"type:text"`
	Balance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Address:   m.Address,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SupplierModelFromDomain creates a persistence model from a domain Supplier entity.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	return &SupplierModel{
		BaseModel: BaseModel{
			ID:        s.ID,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		},
		Name:    s.Name,
		Phone:   s.Phone,
		Address: s.Address,
		Balance: s.Balance,
	}
}
