// Package domain contains persistence models for the supplier directory.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Supplier represents a party the business buys from and pays.
type Supplier struct {
	ID          snowflake.ID      `gorm:"primaryKey" json:"id"`
	Name        string            `gorm:"not null;index" json:"name"`
	TaxID       string            `gorm:"column:tax_id;size:13" json:"tax_id,omitempty"`
	Phone       string            `gorm:"size:32" json:"phone,omitempty"`
	Email       string            `gorm:"size:255" json:"email,omitempty"`
	Address     string            `gorm:"type:text" json:"address,omitempty"`
	BankAccount string            `gorm:"size:64" json:"bank_account,omitempty"`
	Active      bool              `gorm:"not null;default:true" json:"active"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Supplier) TableName() string { return "suppliers" }
