package service

import (
	"testing"
	"time"

	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	cycleDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	assigned := AssignVoucherIDs([]expensedomain.Receipt{
		testReceipt(1, "INV-001", 3, supplierA, methodCash),
		testReceipt(2, "INV-002", 5, supplierB, methodTransfer),
		testReceipt(3, "INV-003", 9, supplierB, methodTransfer),
	}, classification(), "", cycleDate)

	summaries := Aggregate(assigned)
	require.Len(t, summaries, 2)

	single := summaries[0]
	assert.Equal(t, "PV2503001", single.VoucherID)
	assert.Equal(t, supplierA, single.SupplierID)
	require.Len(t, single.Members, 1)
	assert.True(t, single.Totals.TotalAmount.Equal(decimal.RequireFromString("900")))
	assert.True(t, single.Totals.VAT.Equal(decimal.RequireFromString("63")))
	assert.True(t, single.Totals.Withholding.Equal(decimal.RequireFromString("27")))
	assert.True(t, single.Totals.TotalNet.Equal(decimal.RequireFromString("936")))

	grouped := summaries[1]
	assert.Equal(t, "PV2503002", grouped.VoucherID)
	assert.Equal(t, supplierB, grouped.SupplierID)
	require.Len(t, grouped.Members, 2)
	assert.True(t, grouped.Totals.TotalAmount.Equal(decimal.RequireFromString("1800")))
	assert.True(t, grouped.Totals.VAT.Equal(decimal.RequireFromString("126")))
	assert.True(t, grouped.Totals.Withholding.Equal(decimal.RequireFromString("54")))
	assert.True(t, grouped.Totals.TotalNet.Equal(decimal.RequireFromString("1872")))
}

func TestAggregateVoucherDateFromLastMember(t *testing.T) {
	cycleDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	assigned := AssignVoucherIDs([]expensedomain.Receipt{
		testReceipt(2, "INV-002", 5, supplierB, methodTransfer),
		testReceipt(3, "INV-003", 9, supplierB, methodTransfer),
	}, classification(), "", cycleDate)

	summaries := Aggregate(assigned)
	require.Len(t, summaries, 1)

	// The batch is sorted receipt_date ascending, so the last member
	// carries the latest date.
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), summaries[0].VoucherDate)
}

func TestAggregateSupplierName(t *testing.T) {
	cycleDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	receipt := testReceipt(1, "INV-001", 3, supplierA, methodCash)
	receipt.Supplier = &supplierRef

	assigned := AssignVoucherIDs([]expensedomain.Receipt{receipt}, classification(), "", cycleDate)
	summaries := Aggregate(assigned)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Thai Beverage Logistics", summaries[0].SupplierName)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}
