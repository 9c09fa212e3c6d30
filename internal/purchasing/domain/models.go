// Package domain contains purchasing documents: supplier invoices and the
// delivery notes reconciled against them.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	supplierdomain "github.com/sahamit/backoffice/internal/supplier/domain"
	"github.com/shopspring/decimal"
)

// MatchStatus is the outcome of reconciling a delivery note against an
// invoice. Quantities are compared per product over all of the invoice's
// matched notes.
type MatchStatus string

const (
	// MatchStatusMatched means every invoiced quantity was delivered exactly.
	MatchStatusMatched MatchStatus = "matched"
	// MatchStatusPartial means at least one product is under-delivered.
	MatchStatusPartial MatchStatus = "partial"
	// MatchStatusOver means at least one product is over-delivered or not
	// on the invoice at all.
	MatchStatusOver MatchStatus = "over"
)

// PurchaseInvoice is a supplier's bill for goods ordered.
type PurchaseInvoice struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceNumber string          `gorm:"not null;uniqueIndex;size:64" json:"invoice_number"`
	SupplierID    snowflake.ID    `gorm:"not null;index" json:"supplier_id"`
	InvoiceDate   time.Time       `gorm:"not null;index" json:"invoice_date"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"total_amount"`
	MatchStatus   MatchStatus     `gorm:"type:text;not null;default:''" json:"match_status,omitempty"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Lines    []PurchaseInvoiceLine    `gorm:"foreignKey:InvoiceID" json:"lines,omitempty"`
	Supplier *supplierdomain.Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName sets the database table name.
func (PurchaseInvoice) TableName() string { return "purchase_invoices" }

type PurchaseInvoiceLine struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceID   snowflake.ID    `gorm:"not null;index" json:"invoice_id"`
	ProductID   snowflake.ID    `gorm:"not null;index" json:"product_id"`
	Description string          `gorm:"size:255" json:"description,omitempty"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_price"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
}

// TableName sets the database table name.
func (PurchaseInvoiceLine) TableName() string { return "purchase_invoice_lines" }

// DeliveryNote records goods physically received from a supplier. It is
// unlinked until matched against an invoice.
type DeliveryNote struct {
	ID           snowflake.ID  `gorm:"primaryKey" json:"id"`
	NoteNumber   string        `gorm:"not null;uniqueIndex;size:64" json:"note_number"`
	SupplierID   snowflake.ID  `gorm:"not null;index" json:"supplier_id"`
	DeliveryDate time.Time     `gorm:"not null;index" json:"delivery_date"`
	InvoiceID    *snowflake.ID `gorm:"index" json:"invoice_id,omitempty"`
	MatchStatus  MatchStatus   `gorm:"type:text;not null;default:''" json:"match_status,omitempty"`
	CreatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Lines    []DeliveryNoteLine       `gorm:"foreignKey:NoteID" json:"lines,omitempty"`
	Supplier *supplierdomain.Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName sets the database table name.
func (DeliveryNote) TableName() string { return "delivery_notes" }

type DeliveryNoteLine struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	NoteID    snowflake.ID    `gorm:"not null;index" json:"note_id"`
	ProductID snowflake.ID    `gorm:"not null;index" json:"product_id"`
	Quantity  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
}

// TableName sets the database table name.
func (DeliveryNoteLine) TableName() string { return "delivery_note_lines" }
