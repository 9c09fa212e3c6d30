// Package domain contains persistence models for expense receipts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	branchdomain "github.com/sahamit/backoffice/internal/branch/domain"
	paymentmethoddomain "github.com/sahamit/backoffice/internal/paymentmethod/domain"
	supplierdomain "github.com/sahamit/backoffice/internal/supplier/domain"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Receipt is a posted expense document recorded against a supplier.
// CreatedAt determines billing-cycle membership; ReceiptDate orders
// receipts inside a cycle.
type Receipt struct {
	ID              snowflake.ID      `gorm:"primaryKey" json:"id"`
	ReceiptNumber   string            `gorm:"not null;index" json:"receipt_number"`
	ReceiptDate     time.Time         `gorm:"not null;index" json:"receipt_date"`
	SupplierID      snowflake.ID      `gorm:"not null;index" json:"supplier_id"`
	PaymentMethodID snowflake.ID      `gorm:"not null;index" json:"payment_method_id"`
	BranchID        snowflake.ID      `gorm:"index" json:"branch_id"`
	TotalAmount     decimal.Decimal   `gorm:"type:decimal(20,4);not null" json:"total_amount"`
	Discount        decimal.Decimal   `gorm:"type:decimal(20,4);not null;default:0" json:"discount"`
	TaxExempt       decimal.Decimal   `gorm:"type:decimal(20,4);not null;default:0" json:"tax_exempt"`
	VATRate         decimal.Decimal   `gorm:"type:decimal(7,4);not null;default:0" json:"vat_rate"`
	WithholdingRate decimal.Decimal   `gorm:"type:decimal(7,4);not null;default:0" json:"withholding_rate"`
	Note            string            `gorm:"type:text" json:"note,omitempty"`
	Metadata        datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt       time.Time         `gorm:"not null;index;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Supplier      *supplierdomain.Supplier           `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	PaymentMethod *paymentmethoddomain.PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"payment_method,omitempty"`
	Branch        *branchdomain.Branch               `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

// TableName sets the database table name.
func (Receipt) TableName() string { return "receipts" }

const displayNumberLen = 13

// DisplayNumber is the supplier-facing number shown on grids and the
// printed voucher: the last 13 characters of the full document number.
func (r Receipt) DisplayNumber() string {
	if len(r.ReceiptNumber) <= displayNumberLen {
		return r.ReceiptNumber
	}
	return r.ReceiptNumber[len(r.ReceiptNumber)-displayNumberLen:]
}
