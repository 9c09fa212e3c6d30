package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/tax"
	"github.com/sahamit/backoffice/pkg/db/option"
	"github.com/sahamit/backoffice/pkg/db/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, receipt *Receipt) error
	Update(ctx context.Context, db *gorm.DB, receipt *Receipt) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Receipt, error)
	List(ctx context.Context, db *gorm.DB, filter ListReceiptFilter, opts ...option.QueryOption) ([]*Receipt, error)
	// ListCycle returns the receipt batch for one billing cycle window,
	// joined with supplier and payment-method reference data, sorted by
	// (receipt_date asc, receipt_number asc). The voucher engine depends
	// on this exact ordering.
	ListCycle(ctx context.Context, db *gorm.DB, window CycleWindow, branchID *snowflake.ID, limit int) ([]*Receipt, error)
}

// CycleWindow is the half-open posting interval [Start, End) of one
// billing cycle.
type CycleWindow struct {
	Start time.Time
	End   time.Time
}

func (w CycleWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// CycleWindowFor computes the half-open billing-cycle interval containing
// cycleDate: [anchor day of the cycle month, anchor day of the next month).
// Dates before the anchor day belong to the previous month's cycle.
func CycleWindowFor(cycleDate time.Time, anchorDay int) CycleWindow {
	if anchorDay < 1 {
		anchorDay = 1
	}
	year, month, day := cycleDate.UTC().Date()
	if day < anchorDay {
		month--
	}
	start := time.Date(year, month, anchorDay, 0, 0, 0, 0, time.UTC)
	return CycleWindow{Start: start, End: start.AddDate(0, 1, 0)}
}

type CreateReceiptRequest struct {
	ReceiptNumber   string          `json:"receipt_number"`
	ReceiptDate     time.Time       `json:"receipt_date"`
	SupplierID      string          `json:"supplier_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	BranchID        string          `json:"branch_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Discount        decimal.Decimal `json:"discount"`
	TaxExempt       decimal.Decimal `json:"tax_exempt"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	WithholdingRate decimal.Decimal `json:"withholding_rate"`
	Note            string          `json:"note"`
}

type UpdateReceiptRequest struct {
	ID              string           `json:"-"`
	ReceiptNumber   *string          `json:"receipt_number"`
	ReceiptDate     *time.Time       `json:"receipt_date"`
	SupplierID      *string          `json:"supplier_id"`
	PaymentMethodID *string          `json:"payment_method_id"`
	TotalAmount     *decimal.Decimal `json:"total_amount"`
	Discount        *decimal.Decimal `json:"discount"`
	TaxExempt       *decimal.Decimal `json:"tax_exempt"`
	VATRate         *decimal.Decimal `json:"vat_rate"`
	WithholdingRate *decimal.Decimal `json:"withholding_rate"`
	Note            *string          `json:"note"`
}

type ListReceiptRequest struct {
	SupplierID string
	BranchID   string
	DateFrom   *time.Time
	DateTo     *time.Time
	PageToken  string
	PageSize   int
}

type ListReceiptFilter struct {
	SupplierID *snowflake.ID
	BranchID   *snowflake.ID
	DateFrom   *time.Time
	DateTo     *time.Time
}

// ReceiptView is a receipt with its display fields attached: the trimmed
// document number and the derived tax cascade every grid shows.
type ReceiptView struct {
	Receipt
	DisplayNo string      `json:"display_number"`
	Cascade   tax.Cascade `json:"cascade"`
}

type ListReceiptResponse struct {
	Receipts []ReceiptView        `json:"receipts"`
	PageInfo *pagination.PageInfo `json:"page_info,omitempty"`
}

type ListCycleRequest struct {
	CycleDate time.Time
	BranchID  string
}

type Service interface {
	Create(context.Context, CreateReceiptRequest) (Receipt, error)
	Update(context.Context, UpdateReceiptRequest) (Receipt, error)
	Delete(context.Context, string) error
	GetByID(context.Context, string) (ReceiptView, error)
	List(context.Context, ListReceiptRequest) (ListReceiptResponse, error)
	// ListCycle returns the sorted receipt batch of the billing cycle
	// containing CycleDate, optionally scoped to one branch.
	ListCycle(context.Context, ListCycleRequest) ([]Receipt, error)
}

var (
	ErrInvalidReceiptNumber = errors.New("invalid_receipt_number")
	ErrInvalidReceiptDate   = errors.New("invalid_receipt_date")
	ErrInvalidSupplier      = errors.New("invalid_supplier")
	ErrInvalidPaymentMethod = errors.New("invalid_payment_method")
	ErrInvalidAmount        = errors.New("invalid_amount")
	ErrInvalidRate          = errors.New("invalid_rate")
	ErrExemptExceedsTotal   = errors.New("exempt_exceeds_total")
	ErrInvalidID            = errors.New("invalid_id")
	ErrNotFound             = errors.New("not_found")
)
