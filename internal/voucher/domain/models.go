// Package domain contains the payment-voucher (ใบสำคัญจ่าย) computation
// types. Vouchers are derived per billing cycle and never persisted: the
// numbering rule is deterministic, so recomputing the same receipt batch
// always reproduces the same voucher ids.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
	paymentmethoddomain "github.com/sahamit/backoffice/internal/paymentmethod/domain"
	"github.com/sahamit/backoffice/internal/tax"
	"github.com/shopspring/decimal"
)

// Classification partitions payment methods for one voucher run. Methods
// in neither set are handled individually.
type Classification struct {
	Group map[snowflake.ID]struct{}
	Skip  map[snowflake.ID]struct{}
}

func (c Classification) IsGroup(id snowflake.ID) bool {
	_, ok := c.Group[id]
	return ok
}

func (c Classification) IsSkip(id snowflake.ID) bool {
	_, ok := c.Skip[id]
	return ok
}

// Classify partitions the payment-method reference list by voucher type.
// Recomputed on every run from current reference data; never cached.
func Classify(methods []paymentmethoddomain.PaymentMethod) Classification {
	cls := Classification{
		Group: make(map[snowflake.ID]struct{}),
		Skip:  make(map[snowflake.ID]struct{}),
	}
	for _, m := range methods {
		switch m.VoucherType {
		case paymentmethoddomain.VoucherTypeGroup:
			cls.Group[m.ID] = struct{}{}
		case paymentmethoddomain.VoucherTypeSkip:
			cls.Skip[m.ID] = struct{}{}
		}
	}
	return cls
}

// AssignedReceipt is a receipt annotated with its voucher id and derived
// display fields.
type AssignedReceipt struct {
	expensedomain.Receipt
	VoucherID string      `json:"voucher_id"`
	DisplayNo string      `json:"display_number"`
	Cascade   tax.Cascade `json:"cascade"`
}

// VoucherTotals are the print-ready sums over a voucher's members.
type VoucherTotals struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	VAT         decimal.Decimal `json:"vat"`
	Withholding decimal.Decimal `json:"withholding"`
	TotalNet    decimal.Decimal `json:"total_net"`
}

// VoucherSummary is one derived payment voucher: every receipt sharing a
// voucher id, plus aggregate totals. A voucher always pays exactly one
// supplier.
type VoucherSummary struct {
	VoucherID    string            `json:"voucher_id"`
	VoucherDate  time.Time         `json:"voucher_date"`
	SupplierID   snowflake.ID      `json:"supplier_id"`
	SupplierName string            `json:"supplier_name"`
	Members      []AssignedReceipt `json:"members"`
	Totals       VoucherTotals     `json:"totals"`
}

type PreviewRequest struct {
	CycleDate time.Time
	BranchID  string
}

type PreviewResponse struct {
	CycleStart time.Time         `json:"cycle_start"`
	CycleEnd   time.Time         `json:"cycle_end"`
	Receipts   []AssignedReceipt `json:"receipts"`
	Vouchers   []VoucherSummary  `json:"vouchers"`
}

type RenderPDFRequest struct {
	CycleDate time.Time
	BranchID  string
	VoucherID string
}

type Service interface {
	// Preview computes the voucher assignment for the billing cycle
	// containing CycleDate. BranchID optionally scopes the batch (and
	// selects the voucher-id prefix) to one branch.
	Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error)
	// RenderPDF produces the printable payment-voucher document for one
	// voucher id of the cycle.
	RenderPDF(ctx context.Context, req RenderPDFRequest) ([]byte, error)
}

var (
	ErrInvalidCycleDate = errors.New("invalid_cycle_date")
	ErrInvalidID        = errors.New("invalid_id")
	ErrVoucherNotFound  = errors.New("voucher_not_found")
)

// ValidationError reports a receipt batch that violates the voucher
// engine's preconditions. The original system computed silently wrong
// groupings instead; here the run is refused with a reason.
type ValidationError struct {
	ReceiptID snowflake.ID
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.ReceiptID != 0 {
		return fmt.Sprintf("invalid receipt batch: receipt %s: %s %s", e.ReceiptID, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid receipt batch: %s %s", e.Field, e.Reason)
}
