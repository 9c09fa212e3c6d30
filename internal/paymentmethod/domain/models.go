// Package domain contains payment method reference data. The voucher_type
// column drives how the voucher engine treats receipts paid through a
// method: "group" consolidates per supplier, "skip" excludes the receipt
// from voucher numbering, anything else gets an individual voucher.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// VoucherType classifies a payment method for voucher numbering.
type VoucherType string

const (
	VoucherTypeGroup      VoucherType = "group"
	VoucherTypeSkip       VoucherType = "skip"
	VoucherTypeIndividual VoucherType = "individual"
)

func (t VoucherType) Valid() bool {
	switch t {
	case VoucherTypeGroup, VoucherTypeSkip, VoucherTypeIndividual:
		return true
	default:
		return false
	}
}

// PaymentMethod is a way the business pays suppliers.
type PaymentMethod struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null;uniqueIndex" json:"name"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	VoucherType VoucherType  `gorm:"type:text;not null;default:'individual'" json:"voucher_type"`
	Active      bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (PaymentMethod) TableName() string { return "payment_methods" }
