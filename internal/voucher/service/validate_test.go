package service

import (
	"errors"
	"testing"

	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
	"github.com/sahamit/backoffice/internal/voucher/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationError(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr
}

func TestValidateBatchValid(t *testing.T) {
	receipts := []expensedomain.Receipt{
		testReceipt(1, "INV-001", 3, supplierA, methodCash),
		testReceipt(2, "INV-002", 5, supplierB, methodTransfer),
	}
	assert.NoError(t, ValidateBatch(receipts))
	assert.NoError(t, ValidateBatch(nil))
}

func TestValidateBatchMissingSupplier(t *testing.T) {
	receipt := testReceipt(1, "INV-001", 3, 0, methodCash)
	verr := validationError(t, ValidateBatch([]expensedomain.Receipt{receipt}))
	assert.Equal(t, "supplier_id", verr.Field)
}

func TestValidateBatchMissingPaymentMethod(t *testing.T) {
	receipt := testReceipt(1, "INV-001", 3, supplierA, 0)
	verr := validationError(t, ValidateBatch([]expensedomain.Receipt{receipt}))
	assert.Equal(t, "payment_method_id", verr.Field)
}

func TestValidateBatchRateOutOfRange(t *testing.T) {
	receipt := testReceipt(1, "INV-001", 3, supplierA, methodCash)
	receipt.VATRate = decimal.RequireFromString("101")
	verr := validationError(t, ValidateBatch([]expensedomain.Receipt{receipt}))
	assert.Equal(t, "vat_rate", verr.Field)

	receipt = testReceipt(1, "INV-001", 3, supplierA, methodCash)
	receipt.WithholdingRate = decimal.RequireFromString("-1")
	verr = validationError(t, ValidateBatch([]expensedomain.Receipt{receipt}))
	assert.Equal(t, "withholding_rate", verr.Field)
}

func TestValidateBatchExemptExceedsTotal(t *testing.T) {
	receipt := testReceipt(1, "INV-001", 3, supplierA, methodCash)
	receipt.TaxExempt = decimal.RequireFromString("950")
	verr := validationError(t, ValidateBatch([]expensedomain.Receipt{receipt}))
	assert.Equal(t, "tax_exempt", verr.Field)
}

func TestValidateBatchUnsortedDates(t *testing.T) {
	receipts := []expensedomain.Receipt{
		testReceipt(1, "INV-001", 9, supplierA, methodCash),
		testReceipt(2, "INV-002", 3, supplierB, methodTransfer),
	}
	verr := validationError(t, ValidateBatch(receipts))
	assert.Equal(t, "receipt_date", verr.Field)
}

func TestValidateBatchUnsortedNumbersSameDate(t *testing.T) {
	receipts := []expensedomain.Receipt{
		testReceipt(1, "INV-002", 3, supplierA, methodCash),
		testReceipt(2, "INV-001", 3, supplierB, methodTransfer),
	}
	verr := validationError(t, ValidateBatch(receipts))
	assert.Equal(t, "receipt_number", verr.Field)
}
