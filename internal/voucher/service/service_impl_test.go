package service

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	branchdomain "github.com/sahamit/backoffice/internal/branch/domain"
	"github.com/sahamit/backoffice/internal/config"
	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
	paymentmethoddomain "github.com/sahamit/backoffice/internal/paymentmethod/domain"
	"github.com/sahamit/backoffice/internal/providers/pdf"
	"github.com/sahamit/backoffice/internal/voucher/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeExpenseService struct {
	expensedomain.Service

	receipts []expensedomain.Receipt
	lastReq  expensedomain.ListCycleRequest
}

func (f *fakeExpenseService) ListCycle(ctx context.Context, req expensedomain.ListCycleRequest) ([]expensedomain.Receipt, error) {
	f.lastReq = req
	return f.receipts, nil
}

type fakePaymentMethodService struct {
	paymentmethoddomain.Service

	methods []paymentmethoddomain.PaymentMethod
}

func (f *fakePaymentMethodService) List(ctx context.Context) ([]paymentmethoddomain.PaymentMethod, error) {
	return f.methods, nil
}

type fakeBranchService struct {
	branchdomain.Service

	prefixes map[snowflake.ID]string
}

func (f *fakeBranchService) PrefixMap(ctx context.Context) (map[snowflake.ID]string, error) {
	return f.prefixes, nil
}

type fakePDFProvider struct {
	lastData pdf.VoucherData
}

func (f *fakePDFProvider) GeneratePaymentVoucher(ctx context.Context, data pdf.VoucherData) (io.Reader, error) {
	f.lastData = data
	return bytes.NewReader([]byte("%PDF-stub")), nil
}

func referenceMethods() []paymentmethoddomain.PaymentMethod {
	return []paymentmethoddomain.PaymentMethod{
		{ID: methodCash, Name: "Cash", VoucherType: paymentmethoddomain.VoucherTypeIndividual},
		{ID: methodTransfer, Name: "Bank transfer", VoucherType: paymentmethoddomain.VoucherTypeGroup},
		{ID: methodDebit, Name: "Direct debit", VoucherType: paymentmethoddomain.VoucherTypeSkip},
	}
}

func newTestService(receipts []expensedomain.Receipt) (domain.Service, *fakeExpenseService, *fakePDFProvider) {
	expenses := &fakeExpenseService{receipts: receipts}
	pdfProvider := &fakePDFProvider{}
	svc := New(Params{
		Log:            zap.NewNop(),
		Config:         config.Config{CycleAnchorDay: 1, BusinessName: "Sahamit Trading Ltd., Part."},
		Expenses:       expenses,
		PaymentMethods: &fakePaymentMethodService{methods: referenceMethods()},
		Branches:       &fakeBranchService{prefixes: map[snowflake.ID]string{301: "3"}},
		PDF:            pdfProvider,
	})
	return svc, expenses, pdfProvider
}

func TestServicePreview(t *testing.T) {
	receipts := []expensedomain.Receipt{
		testReceipt(1, "INV-001", 3, supplierA, methodCash),
		testReceipt(2, "INV-002", 5, supplierB, methodTransfer),
		testReceipt(3, "INV-003", 9, supplierB, methodTransfer),
		testReceipt(4, "INV-004", 12, supplierC, methodDebit),
	}
	svc, expenses, _ := newTestService(receipts)

	resp, err := svc.Preview(context.Background(), domain.PreviewRequest{
		CycleDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), resp.CycleStart)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), resp.CycleEnd)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), expenses.lastReq.CycleDate)

	require.Len(t, resp.Receipts, 3)
	require.Len(t, resp.Vouchers, 2)
	assert.Equal(t, "PV2503001", resp.Vouchers[0].VoucherID)
	assert.Equal(t, "PV2503002", resp.Vouchers[1].VoucherID)
}

func TestServicePreviewBranchPrefix(t *testing.T) {
	receipts := []expensedomain.Receipt{
		testReceipt(1, "INV-001", 3, supplierA, methodCash),
	}
	svc, expenses, _ := newTestService(receipts)

	resp, err := svc.Preview(context.Background(), domain.PreviewRequest{
		CycleDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		BranchID:  "301",
	})
	require.NoError(t, err)
	assert.Equal(t, "301", expenses.lastReq.BranchID)
	require.Len(t, resp.Vouchers, 1)
	assert.Equal(t, "3PV2503001", resp.Vouchers[0].VoucherID)
}

func TestServicePreviewUnknownBranchHasNoPrefix(t *testing.T) {
	receipts := []expensedomain.Receipt{
		testReceipt(1, "INV-001", 3, supplierA, methodCash),
	}
	svc, _, _ := newTestService(receipts)

	resp, err := svc.Preview(context.Background(), domain.PreviewRequest{
		CycleDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		BranchID:  "999",
	})
	require.NoError(t, err)
	require.Len(t, resp.Vouchers, 1)
	assert.Equal(t, "PV2503001", resp.Vouchers[0].VoucherID)
}

func TestServicePreviewInvalidInput(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.Preview(context.Background(), domain.PreviewRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidCycleDate)

	_, err = svc.Preview(context.Background(), domain.PreviewRequest{
		CycleDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		BranchID:  "not-a-branch",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestServicePreviewRefusesInvalidBatch(t *testing.T) {
	receipts := []expensedomain.Receipt{
		testReceipt(1, "INV-001", 9, supplierA, methodCash),
		testReceipt(2, "INV-002", 3, supplierB, methodTransfer),
	}
	svc, _, _ := newTestService(receipts)

	_, err := svc.Preview(context.Background(), domain.PreviewRequest{
		CycleDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	verr := validationError(t, err)
	assert.Equal(t, "receipt_date", verr.Field)
}

func TestServiceRenderPDF(t *testing.T) {
	receipt := testReceipt(1, "INV-001", 3, supplierA, methodCash)
	receipt.Supplier = &supplierRef
	svc, _, pdfProvider := newTestService([]expensedomain.Receipt{receipt})

	out, err := svc.RenderPDF(context.Background(), domain.RenderPDFRequest{
		CycleDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		VoucherID: "PV2503001",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), out)

	data := pdfProvider.lastData
	assert.Equal(t, "Sahamit Trading Ltd., Part.", data.BusinessName)
	assert.Equal(t, "PV2503001", data.VoucherNumber)
	assert.Equal(t, "03/03/2025", data.VoucherDate)
	assert.Equal(t, "Thai Beverage Logistics", data.SupplierName)
	assert.Equal(t, "01/03/2025 - 31/03/2025", data.CyclePeriod)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, "900.00", data.Lines[0].Amount)
	assert.Equal(t, "936.00", data.Lines[0].Net)
	assert.Equal(t, "936.00", data.TotalNet)
	assert.Equal(t, "เก้าร้อยสามสิบหกบาทถ้วน", data.TotalNetWords)
}

func TestServiceRenderPDFNotFound(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.RenderPDF(context.Background(), domain.RenderPDFRequest{
		CycleDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		VoucherID: "PV2503009",
	})
	assert.ErrorIs(t, err, domain.ErrVoucherNotFound)

	_, err = svc.RenderPDF(context.Background(), domain.RenderPDFRequest{
		CycleDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "0.00", money(decimal.Zero))
	assert.Equal(t, "936.00", money(decimal.RequireFromString("936")))
	assert.Equal(t, "1,234,567.50", money(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-12,000.75", money(decimal.RequireFromString("-12000.75")))
}
