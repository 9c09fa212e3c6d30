// Package tax implements the receipt-level tax cascade used everywhere a
// receipt or voucher amount is displayed or printed.
package tax

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// CascadeInput carries the raw monetary fields of one receipt. VAT and
// Withholding are percentages, receipt-specific rather than global rates.
type CascadeInput struct {
	TotalAmount decimal.Decimal
	Discount    decimal.Decimal
	TaxExempt   decimal.Decimal
	VAT         decimal.Decimal
	Withholding decimal.Decimal
}

// Cascade is the derived breakdown of a receipt.
//
// The tax-exempt portion is removed from the taxable base but still counts
// toward the payable totals: TotalAfterTax and TotalNet subtract only the
// discount from the receipt total before applying VAT and withholding.
type Cascade struct {
	TaxableBase     decimal.Decimal `json:"taxable_base"`
	VATOnly         decimal.Decimal `json:"vat_only"`
	WithholdingOnly decimal.Decimal `json:"withholding_only"`
	TotalAfterTax   decimal.Decimal `json:"total_after_tax"`
	TotalNet        decimal.Decimal `json:"total_net"`
}

// Compute derives the standard breakdown from a receipt's raw fields.
// Pure; no range validation happens here. Callers that carry no
// tax-exempt amount pass a zero TaxExempt.
func Compute(in CascadeInput) Cascade {
	taxableBase := in.TotalAmount.Sub(in.Discount).Sub(in.TaxExempt)
	vatOnly := taxableBase.Mul(in.VAT).Div(hundred)
	withholdingOnly := taxableBase.Mul(in.Withholding).Div(hundred)
	totalAfterTax := in.TotalAmount.Sub(in.Discount).Add(vatOnly)
	totalNet := totalAfterTax.Sub(withholdingOnly)

	return Cascade{
		TaxableBase:     taxableBase,
		VATOnly:         vatOnly,
		WithholdingOnly: withholdingOnly,
		TotalAfterTax:   totalAfterTax,
		TotalNet:        totalNet,
	}
}
