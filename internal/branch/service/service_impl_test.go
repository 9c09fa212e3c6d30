package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/sahamit/backoffice/internal/branch/domain"
	"github.com/sahamit/backoffice/internal/branch/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newBranchService(t *testing.T) domain.Service {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&domain.Branch{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    gdb,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreateBranch(t *testing.T) {
	svc := newBranchService(t)
	ctx := context.Background()

	branch, err := svc.Create(ctx, domain.CreateBranchRequest{
		Code:          "BR3",
		Name:          "Warehouse branch",
		VoucherPrefix: "3",
	})
	require.NoError(t, err)
	assert.NotZero(t, branch.ID)
	assert.Equal(t, "3", branch.VoucherPrefix)
	assert.True(t, branch.Active)

	_, err = svc.Create(ctx, domain.CreateBranchRequest{Code: "BR3", Name: "Duplicate"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)

	_, err = svc.Create(ctx, domain.CreateBranchRequest{Name: "No code"})
	assert.ErrorIs(t, err, domain.ErrInvalidCode)

	_, err = svc.Create(ctx, domain.CreateBranchRequest{Code: "BR4"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestPrefixMap(t *testing.T) {
	svc := newBranchService(t)
	ctx := context.Background()

	hq, err := svc.Create(ctx, domain.CreateBranchRequest{Code: "HQ", Name: "Head office"})
	require.NoError(t, err)
	warehouse, err := svc.Create(ctx, domain.CreateBranchRequest{Code: "BR3", Name: "Warehouse branch", VoucherPrefix: "3"})
	require.NoError(t, err)

	prefixes, err := svc.PrefixMap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3", prefixes[warehouse.ID])

	// Branches without a prefix never appear in the map.
	_, ok := prefixes[hq.ID]
	assert.False(t, ok)
}

func TestPrefixMapRefreshesOnUpdate(t *testing.T) {
	svc := newBranchService(t)
	ctx := context.Background()

	branch, err := svc.Create(ctx, domain.CreateBranchRequest{Code: "BR5", Name: "South branch", VoucherPrefix: "5"})
	require.NoError(t, err)

	prefixes, err := svc.PrefixMap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5", prefixes[branch.ID])

	// An update invalidates the cached lookup immediately.
	newPrefix := "6"
	_, err = svc.Update(ctx, domain.UpdateBranchRequest{ID: branch.ID.String(), VoucherPrefix: &newPrefix})
	require.NoError(t, err)

	prefixes, err = svc.PrefixMap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "6", prefixes[branch.ID])
}

func TestGetBranchByID(t *testing.T) {
	svc := newBranchService(t)
	ctx := context.Background()

	branch, err := svc.Create(ctx, domain.CreateBranchRequest{Code: "HQ", Name: "Head office"})
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, branch.ID.String())
	require.NoError(t, err)
	assert.Equal(t, branch.ID, found.ID)

	_, err = svc.GetByID(ctx, "12345")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
