package service

import (
	"github.com/sahamit/backoffice/internal/voucher/domain"
)

// Aggregate folds assigned receipts into per-voucher summaries, in the
// order voucher ids first appear in the input.
//
// The voucher date is taken from the last member in iteration order. The
// batch arrives sorted receipt_date ascending, so the last member is also
// the latest; the engine relies on that upstream ordering rather than
// re-deriving a maximum.
func Aggregate(assigned []domain.AssignedReceipt) []domain.VoucherSummary {
	index := make(map[string]int)
	var summaries []domain.VoucherSummary

	for _, receipt := range assigned {
		i, ok := index[receipt.VoucherID]
		if !ok {
			i = len(summaries)
			index[receipt.VoucherID] = i
			summary := domain.VoucherSummary{
				VoucherID:  receipt.VoucherID,
				SupplierID: receipt.SupplierID,
			}
			if receipt.Supplier != nil {
				summary.SupplierName = receipt.Supplier.Name
			}
			summaries = append(summaries, summary)
		}

		s := &summaries[i]
		s.Members = append(s.Members, receipt)
		s.VoucherDate = receipt.ReceiptDate
		s.Totals.TotalAmount = s.Totals.TotalAmount.Add(receipt.TotalAmount.Sub(receipt.Discount))
		s.Totals.VAT = s.Totals.VAT.Add(receipt.Cascade.VATOnly)
		s.Totals.Withholding = s.Totals.Withholding.Add(receipt.Cascade.WithholdingOnly)
	}

	for i := range summaries {
		t := &summaries[i].Totals
		t.TotalNet = t.TotalAmount.Add(t.VAT).Sub(t.Withholding)
	}

	return summaries
}
