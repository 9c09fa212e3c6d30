// Package domain contains supplier payment reminders. A reminder tracks
// one amount owed to a supplier; a periodic sweep flips pending reminders
// past their due date to overdue.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	supplierdomain "github.com/sahamit/backoffice/internal/supplier/domain"
	"github.com/shopspring/decimal"
)

// Status is the reminder lifecycle state.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// PaymentReminder is one scheduled payment obligation.
type PaymentReminder struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	SupplierID snowflake.ID    `gorm:"not null;index" json:"supplier_id"`
	DueDate    time.Time       `gorm:"not null;index" json:"due_date"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Note       string          `gorm:"type:text" json:"note,omitempty"`
	Status     Status          `gorm:"type:text;not null;default:'pending';index" json:"status"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	CreatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Supplier *supplierdomain.Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName sets the database table name.
func (PaymentReminder) TableName() string { return "payment_reminders" }
