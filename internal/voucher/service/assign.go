package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/bwmarrin/snowflake"
	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
	"github.com/sahamit/backoffice/internal/tax"
	"github.com/sahamit/backoffice/internal/voucher/domain"
)

// AssignVoucherIDs numbers a billing cycle's receipt batch.
//
// Receipts paid through a skip method are removed. Receipts paid through
// an individual method each take the next voucher id, in input order.
// Receipts paid through a group method are consolidated: every receipt of
// the same supplier shares one voucher id, suppliers numbered in the order
// they first appear. Both passes draw from one sequence starting at 1, so
// the numeric suffixes form a contiguous run across the whole cycle.
//
// The input must already be sorted (receipt_date asc, receipt_number asc);
// the returned list is re-sorted by voucher id, which is stable because
// the numeric part is zero-padded and the prefix is fixed per branch.
func AssignVoucherIDs(receipts []expensedomain.Receipt, cls domain.Classification, branchPrefix string, cycleDate time.Time) []domain.AssignedReceipt {
	assigned, seq := assignIndividuals(receipts, cls, branchPrefix, cycleDate, 1)
	grouped, _ := assignGrouped(receipts, cls, branchPrefix, cycleDate, seq)
	assigned = append(assigned, grouped...)

	sort.SliceStable(assigned, func(i, j int) bool {
		return assigned[i].VoucherID < assigned[j].VoucherID
	})
	return assigned
}

func assignIndividuals(receipts []expensedomain.Receipt, cls domain.Classification, branchPrefix string, cycleDate time.Time, seq int) ([]domain.AssignedReceipt, int) {
	var assigned []domain.AssignedReceipt
	for _, receipt := range receipts {
		if cls.IsSkip(receipt.PaymentMethodID) || cls.IsGroup(receipt.PaymentMethodID) {
			continue
		}
		assigned = append(assigned, annotate(receipt, voucherID(branchPrefix, cycleDate, seq)))
		seq++
	}
	return assigned, seq
}

func assignGrouped(receipts []expensedomain.Receipt, cls domain.Classification, branchPrefix string, cycleDate time.Time, seq int) ([]domain.AssignedReceipt, int) {
	var assigned []domain.AssignedReceipt
	// Suppliers are numbered in first-seen order of the sorted batch;
	// the sequence advances once per supplier, not once per receipt.
	supplierVoucher := make(map[snowflake.ID]string)
	for _, receipt := range receipts {
		if cls.IsSkip(receipt.PaymentMethodID) || !cls.IsGroup(receipt.PaymentMethodID) {
			continue
		}
		id, ok := supplierVoucher[receipt.SupplierID]
		if !ok {
			id = voucherID(branchPrefix, cycleDate, seq)
			supplierVoucher[receipt.SupplierID] = id
			seq++
		}
		assigned = append(assigned, annotate(receipt, id))
	}
	return assigned, seq
}

// voucherID formats <branchPrefix>PV<YY><MM><seq:3>.
func voucherID(branchPrefix string, cycleDate time.Time, seq int) string {
	return fmt.Sprintf("%sPV%02d%02d%03d", branchPrefix, cycleDate.Year()%100, int(cycleDate.Month()), seq)
}

func annotate(receipt expensedomain.Receipt, id string) domain.AssignedReceipt {
	return domain.AssignedReceipt{
		Receipt:   receipt,
		VoucherID: id,
		DisplayNo: receipt.DisplayNumber(),
		Cascade: tax.Compute(tax.CascadeInput{
			TotalAmount: receipt.TotalAmount,
			Discount:    receipt.Discount,
			TaxExempt:   receipt.TaxExempt,
			VAT:         receipt.VATRate,
			Withholding: receipt.WithholdingRate,
		}),
	}
}
