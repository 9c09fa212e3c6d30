package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	InsertInvoice(ctx context.Context, db *gorm.DB, invoice *PurchaseInvoice) error
	UpdateInvoice(ctx context.Context, db *gorm.DB, invoice *PurchaseInvoice) error
	FindInvoiceByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*PurchaseInvoice, error)
	ListInvoices(ctx context.Context, db *gorm.DB, filter ListInvoiceFilter, limit int) ([]*PurchaseInvoice, error)
	InsertNote(ctx context.Context, db *gorm.DB, note *DeliveryNote) error
	UpdateNote(ctx context.Context, db *gorm.DB, note *DeliveryNote) error
	FindNoteByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*DeliveryNote, error)
	ListNotes(ctx context.Context, db *gorm.DB, filter ListNoteFilter, limit int) ([]*DeliveryNote, error)
}

type InvoiceLineRequest struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number"`
	SupplierID    string               `json:"supplier_id"`
	InvoiceDate   time.Time            `json:"invoice_date"`
	Lines         []InvoiceLineRequest `json:"lines"`
}

type NoteLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

type CreateNoteRequest struct {
	NoteNumber   string            `json:"note_number"`
	SupplierID   string            `json:"supplier_id"`
	DeliveryDate time.Time         `json:"delivery_date"`
	Lines        []NoteLineRequest `json:"lines"`
}

type ListInvoiceFilter struct {
	SupplierID *snowflake.ID
	Status     *MatchStatus
}

type ListInvoiceRequest struct {
	SupplierID string
	Status     string
	PageSize   int
}

type ListNoteFilter struct {
	SupplierID *snowflake.ID
	Unmatched  bool
}

type ListNoteRequest struct {
	SupplierID string
	Unmatched  bool
	PageSize   int
}

type MatchRequest struct {
	InvoiceID      string `json:"invoice_id"`
	DeliveryNoteID string `json:"delivery_note_id"`
}

// MatchResult reports one reconciliation run.
type MatchResult struct {
	Invoice PurchaseInvoice `json:"invoice"`
	Note    DeliveryNote    `json:"delivery_note"`
	Status  MatchStatus     `json:"status"`
}

type Service interface {
	CreateInvoice(context.Context, CreateInvoiceRequest) (PurchaseInvoice, error)
	GetInvoice(context.Context, string) (PurchaseInvoice, error)
	ListInvoices(context.Context, ListInvoiceRequest) ([]PurchaseInvoice, error)
	CreateNote(context.Context, CreateNoteRequest) (DeliveryNote, error)
	GetNote(context.Context, string) (DeliveryNote, error)
	ListNotes(context.Context, ListNoteRequest) ([]DeliveryNote, error)
	// MatchDeliveryNote links a delivery note to an invoice of the same
	// supplier, derives the quantity reconciliation status and posts the
	// delivered quantities to the stock ledger. A note matches at most one
	// invoice.
	MatchDeliveryNote(context.Context, MatchRequest) (MatchResult, error)
}

var (
	ErrInvalidNumber    = errors.New("invalid_number")
	ErrInvalidSupplier  = errors.New("invalid_supplier")
	ErrInvalidDate      = errors.New("invalid_date")
	ErrInvalidLine      = errors.New("invalid_line")
	ErrInvalidID        = errors.New("invalid_id")
	ErrNotFound         = errors.New("not_found")
	ErrDuplicateNumber  = errors.New("duplicate_number")
	ErrAlreadyMatched   = errors.New("already_matched")
	ErrSupplierMismatch = errors.New("supplier_mismatch")
)
