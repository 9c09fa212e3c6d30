package service

import (
	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
	"github.com/sahamit/backoffice/internal/voucher/domain"
	"github.com/shopspring/decimal"
)

var maxRate = decimal.NewFromInt(100)

// ValidateBatch checks the preconditions the numbering engine depends on.
// A violated batch is refused with a descriptive error instead of being
// numbered into a wrong-but-plausible grouping.
func ValidateBatch(receipts []expensedomain.Receipt) error {
	for i, receipt := range receipts {
		if receipt.SupplierID == 0 {
			return &domain.ValidationError{ReceiptID: receipt.ID, Field: "supplier_id", Reason: "is required"}
		}
		if receipt.PaymentMethodID == 0 {
			return &domain.ValidationError{ReceiptID: receipt.ID, Field: "payment_method_id", Reason: "is required"}
		}
		if receipt.VATRate.IsNegative() || receipt.VATRate.GreaterThan(maxRate) {
			return &domain.ValidationError{ReceiptID: receipt.ID, Field: "vat_rate", Reason: "must be within [0,100]"}
		}
		if receipt.WithholdingRate.IsNegative() || receipt.WithholdingRate.GreaterThan(maxRate) {
			return &domain.ValidationError{ReceiptID: receipt.ID, Field: "withholding_rate", Reason: "must be within [0,100]"}
		}
		if receipt.Discount.Add(receipt.TaxExempt).GreaterThan(receipt.TotalAmount) {
			return &domain.ValidationError{ReceiptID: receipt.ID, Field: "tax_exempt", Reason: "discount plus tax exempt exceeds total"}
		}

		if i == 0 {
			continue
		}
		prev := receipts[i-1]
		if receipt.ReceiptDate.Before(prev.ReceiptDate) {
			return &domain.ValidationError{ReceiptID: receipt.ID, Field: "receipt_date", Reason: "batch is not sorted by receipt date"}
		}
		if receipt.ReceiptDate.Equal(prev.ReceiptDate) && receipt.ReceiptNumber < prev.ReceiptNumber {
			return &domain.ValidationError{ReceiptID: receipt.ID, Field: "receipt_number", Reason: "batch is not sorted by receipt number"}
		}
	}
	return nil
}
