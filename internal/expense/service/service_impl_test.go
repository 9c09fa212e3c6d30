package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	branchdomain "github.com/sahamit/backoffice/internal/branch/domain"
	"github.com/sahamit/backoffice/internal/config"
	"github.com/sahamit/backoffice/internal/expense/domain"
	"github.com/sahamit/backoffice/internal/expense/repository"
	paymentmethoddomain "github.com/sahamit/backoffice/internal/paymentmethod/domain"
	supplierdomain "github.com/sahamit/backoffice/internal/supplier/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type expenseFixture struct {
	svc domain.Service
	db  *gorm.DB
}

func newExpenseFixture(t *testing.T) expenseFixture {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&supplierdomain.Supplier{},
		&paymentmethoddomain.PaymentMethod{},
		&branchdomain.Branch{},
		&domain.Receipt{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    gdb,
		Log:   zap.NewNop(),
		GenID: node,
		Config: config.Config{
			CycleAnchorDay:  1,
			CycleQueryLimit: 500,
		},
		Repo: repository.Provide(),
	})

	return expenseFixture{svc: svc, db: gdb}
}

func receiptRequest() domain.CreateReceiptRequest {
	return domain.CreateReceiptRequest{
		ReceiptNumber:   "INV-2025-0001",
		ReceiptDate:     time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		SupplierID:      "201",
		PaymentMethodID: "101",
		TotalAmount:     decimal.RequireFromString("1000"),
		Discount:        decimal.RequireFromString("100"),
		TaxExempt:       decimal.Zero,
		VATRate:         decimal.RequireFromString("7"),
		WithholdingRate: decimal.RequireFromString("3"),
	}
}

func TestCreateReceipt(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	receipt, err := f.svc.Create(ctx, receiptRequest())
	require.NoError(t, err)
	assert.NotZero(t, receipt.ID)
	assert.Equal(t, "INV-2025-0001", receipt.ReceiptNumber)

	view, err := f.svc.GetByID(ctx, receipt.ID.String())
	require.NoError(t, err)
	assert.True(t, view.Cascade.TaxableBase.Equal(decimal.RequireFromString("900")), view.Cascade.TaxableBase.String())
	assert.True(t, view.Cascade.VATOnly.Equal(decimal.RequireFromString("63")), view.Cascade.VATOnly.String())
	assert.True(t, view.Cascade.WithholdingOnly.Equal(decimal.RequireFromString("27")), view.Cascade.WithholdingOnly.String())
	assert.True(t, view.Cascade.TotalAfterTax.Equal(decimal.RequireFromString("963")), view.Cascade.TotalAfterTax.String())
	assert.True(t, view.Cascade.TotalNet.Equal(decimal.RequireFromString("936")), view.Cascade.TotalNet.String())
}

func TestCreateReceiptValidation(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	req := receiptRequest()
	req.ReceiptNumber = "  "
	_, err := f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidReceiptNumber)

	req = receiptRequest()
	req.ReceiptDate = time.Time{}
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidReceiptDate)

	req = receiptRequest()
	req.SupplierID = "not-a-supplier"
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidSupplier)

	req = receiptRequest()
	req.TotalAmount = decimal.RequireFromString("-1")
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	req = receiptRequest()
	req.VATRate = decimal.RequireFromString("101")
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	req = receiptRequest()
	req.TaxExempt = decimal.RequireFromString("950")
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrExemptExceedsTotal)
}

func TestUpdateReceipt(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	receipt, err := f.svc.Create(ctx, receiptRequest())
	require.NoError(t, err)

	amount := decimal.RequireFromString("2000")
	note := "amended total"
	updated, err := f.svc.Update(ctx, domain.UpdateReceiptRequest{
		ID:          receipt.ID.String(),
		TotalAmount: &amount,
		Note:        &note,
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(amount))
	assert.Equal(t, "amended total", updated.Note)

	// The amended amounts still pass the cascade preconditions.
	exempt := decimal.RequireFromString("5000")
	_, err = f.svc.Update(ctx, domain.UpdateReceiptRequest{ID: receipt.ID.String(), TaxExempt: &exempt})
	assert.ErrorIs(t, err, domain.ErrExemptExceedsTotal)

	_, err = f.svc.Update(ctx, domain.UpdateReceiptRequest{ID: "12345", Note: &note})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteReceipt(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	receipt, err := f.svc.Create(ctx, receiptRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, receipt.ID.String()))

	_, err = f.svc.GetByID(ctx, receipt.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = f.svc.Delete(ctx, receipt.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// insertCycleReceipt writes a receipt row directly so the test controls
// CreatedAt, which decides cycle membership.
func (f expenseFixture) insertCycleReceipt(t *testing.T, id int64, number string, receiptDate, createdAt time.Time, branchID snowflake.ID) {
	t.Helper()
	receipt := domain.Receipt{
		ID:              snowflake.ID(id),
		ReceiptNumber:   number,
		ReceiptDate:     receiptDate,
		SupplierID:      201,
		PaymentMethodID: 101,
		BranchID:        branchID,
		TotalAmount:     decimal.RequireFromString("1000"),
		VATRate:         decimal.RequireFromString("7"),
		WithholdingRate: decimal.RequireFromString("3"),
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	require.NoError(t, f.db.Create(&receipt).Error)
}

func TestListReceiptsPagination(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	march := func(d int) time.Time { return time.Date(2025, time.March, d, 10, 0, 0, 0, time.UTC) }

	f.insertCycleReceipt(t, 1, "INV-001", march(5), march(6), 0)
	f.insertCycleReceipt(t, 2, "INV-002", march(6), march(7), 0)
	f.insertCycleReceipt(t, 3, "INV-003", march(7), march(8), 0)

	resp, err := f.svc.List(ctx, domain.ListReceiptRequest{PageSize: 2})
	require.NoError(t, err)
	require.Len(t, resp.Receipts, 2)
	require.NotNil(t, resp.PageInfo)
	assert.True(t, resp.PageInfo.HasMore)

	// Newest first.
	assert.Equal(t, "INV-003", resp.Receipts[0].ReceiptNumber)
	assert.Equal(t, "INV-002", resp.Receipts[1].ReceiptNumber)

	resp, err = f.svc.List(ctx, domain.ListReceiptRequest{PageSize: 2, PageToken: resp.PageInfo.NextPageToken})
	require.NoError(t, err)
	require.Len(t, resp.Receipts, 1)
	assert.Equal(t, "INV-001", resp.Receipts[0].ReceiptNumber)
	assert.False(t, resp.PageInfo.HasMore)
}

func TestListCycle(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	march := func(d int) time.Time { return time.Date(2025, time.March, d, 10, 0, 0, 0, time.UTC) }

	f.insertCycleReceipt(t, 1, "INV-010", march(9), march(10), 0)
	f.insertCycleReceipt(t, 2, "INV-002", march(5), march(6), 0)
	f.insertCycleReceipt(t, 3, "INV-001", march(5), march(6), 0)
	// Posted in April, outside the March cycle.
	f.insertCycleReceipt(t, 4, "INV-020", march(30), time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), 0)

	receipts, err := f.svc.ListCycle(ctx, domain.ListCycleRequest{CycleDate: march(14)})
	require.NoError(t, err)
	require.Len(t, receipts, 3)

	// Sorted by receipt date then receipt number.
	assert.Equal(t, "INV-001", receipts[0].ReceiptNumber)
	assert.Equal(t, "INV-002", receipts[1].ReceiptNumber)
	assert.Equal(t, "INV-010", receipts[2].ReceiptNumber)
}

func TestListCycleBranchScope(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	march := func(d int) time.Time { return time.Date(2025, time.March, d, 10, 0, 0, 0, time.UTC) }

	f.insertCycleReceipt(t, 1, "INV-001", march(5), march(6), 301)
	f.insertCycleReceipt(t, 2, "INV-002", march(6), march(7), 0)

	receipts, err := f.svc.ListCycle(ctx, domain.ListCycleRequest{CycleDate: march(14), BranchID: "301"})
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, "INV-001", receipts[0].ReceiptNumber)

	_, err = f.svc.ListCycle(ctx, domain.ListCycleRequest{CycleDate: march(14), BranchID: "not-a-branch"})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
