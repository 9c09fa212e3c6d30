package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/sahamit/backoffice/internal/clock"
	"github.com/sahamit/backoffice/internal/reminder/domain"
	"github.com/sahamit/backoffice/internal/reminder/repository"
	supplierdomain "github.com/sahamit/backoffice/internal/supplier/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newReminderService(t *testing.T, fake *clock.FakeClock) domain.Service {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&domain.PaymentReminder{}, &supplierdomain.Supplier{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    gdb,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fake,
		Repo:  repository.Provide(),
	})
}

func TestReminderLifecycle(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	svc := newReminderService(t, fake)
	ctx := context.Background()

	reminder, err := svc.Create(ctx, domain.CreateReminderRequest{
		SupplierID: "501",
		DueDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.RequireFromString("2500"),
		Note:       "March water delivery",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, reminder.Status)

	paid, err := svc.MarkPaid(ctx, reminder.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, fake.Now(), *paid.PaidAt)

	_, err = svc.MarkPaid(ctx, reminder.ID.String())
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
}

func TestReminderCreateValidation(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	svc := newReminderService(t, fake)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateReminderRequest{
		DueDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:  decimal.RequireFromString("100"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSupplier)

	_, err = svc.Create(ctx, domain.CreateReminderRequest{
		SupplierID: "501",
		Amount:     decimal.RequireFromString("100"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDueDate)

	_, err = svc.Create(ctx, domain.CreateReminderRequest{
		SupplierID: "501",
		DueDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestMarkOverdueSweep(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	svc := newReminderService(t, fake)
	ctx := context.Background()

	early, err := svc.Create(ctx, domain.CreateReminderRequest{
		SupplierID: "501",
		DueDate:    time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.RequireFromString("1000"),
	})
	require.NoError(t, err)

	late, err := svc.Create(ctx, domain.CreateReminderRequest{
		SupplierID: "502",
		DueDate:    time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.RequireFromString("2000"),
	})
	require.NoError(t, err)

	// Nothing is due yet.
	flipped, err := svc.MarkOverdue(ctx, fake.Now())
	require.NoError(t, err)
	assert.Zero(t, flipped)

	// A week later the first reminder has lapsed.
	fake.Advance(7 * 24 * time.Hour)
	flipped, err = svc.MarkOverdue(ctx, fake.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), flipped)

	got, err := svc.GetByID(ctx, early.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOverdue, got.Status)

	got, err = svc.GetByID(ctx, late.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)

	// The sweep is idempotent.
	flipped, err = svc.MarkOverdue(ctx, fake.Now())
	require.NoError(t, err)
	assert.Zero(t, flipped)
}

func TestListDue(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 3, 8, 8, 0, 0, 0, time.UTC))
	svc := newReminderService(t, fake)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateReminderRequest{
		SupplierID: "501",
		DueDate:    time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.RequireFromString("1000"),
	})
	require.NoError(t, err)

	paidReminder, err := svc.Create(ctx, domain.CreateReminderRequest{
		SupplierID: "502",
		DueDate:    time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.RequireFromString("500"),
	})
	require.NoError(t, err)
	_, err = svc.MarkPaid(ctx, paidReminder.ID.String())
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateReminderRequest{
		SupplierID: "503",
		DueDate:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.RequireFromString("3000"),
	})
	require.NoError(t, err)

	due, err := svc.ListDue(ctx, fake.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, snowflake.ID(501), due[0].SupplierID)
}

func TestUpdatePushedDueDateResetsOverdue(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	svc := newReminderService(t, fake)
	ctx := context.Background()

	reminder, err := svc.Create(ctx, domain.CreateReminderRequest{
		SupplierID: "501",
		DueDate:    time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.RequireFromString("1000"),
	})
	require.NoError(t, err)

	fake.Advance(10 * 24 * time.Hour)
	_, err = svc.MarkOverdue(ctx, fake.Now())
	require.NoError(t, err)

	newDue := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, domain.UpdateReminderRequest{
		ID:      reminder.ID.String(),
		DueDate: &newDue,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, updated.Status)
}
