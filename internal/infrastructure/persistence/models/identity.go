package models

import (
	"github.com/hisabat/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity. Capabilities
// are stored as a comma-separated list in their sorted string form.
type UserModel struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	DisplayName  string `gorm:"type:varchar(200)"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Capabilities string `gorm:"type:text;not null;default:''"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		ID:           m.ID,
		Username:     m.Username,
		DisplayName:  m.DisplayName,
		PasswordHash: m.PasswordHash,
		Capabilities: identity.ParseCapabilitySet(m.Capabilities),
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserModelFromDomain creates a persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	return &UserModel{
		BaseModel: BaseModel{
			ID:        u.ID,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		PasswordHash: u.PasswordHash,
		Capabilities: u.Capabilities.String(),
		Active:       u.Active,
	}
}
