package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/sahamit/backoffice/internal/catalog/domain"
	"github.com/sahamit/backoffice/internal/catalog/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newCatalogService(t *testing.T) domain.Service {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&domain.Product{}, &domain.StockAdjustment{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    gdb,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreateProduct(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, domain.CreateProductRequest{
		SKU:       "SKU-001",
		Name:      "Drinking water 600ml",
		Unit:      "bottle",
		SalePrice: decimal.RequireFromString("7"),
		CostPrice: decimal.RequireFromString("5.5"),
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.True(t, product.Active)

	_, err = svc.CreateProduct(ctx, domain.CreateProductRequest{SKU: "SKU-001", Name: "Duplicate"})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)

	_, err = svc.CreateProduct(ctx, domain.CreateProductRequest{Name: "No SKU"})
	assert.ErrorIs(t, err, domain.ErrInvalidSKU)

	_, err = svc.CreateProduct(ctx, domain.CreateProductRequest{
		SKU:       "SKU-002",
		Name:      "Bad price",
		SalePrice: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestUpdateProduct(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, domain.CreateProductRequest{SKU: "SKU-001", Name: "Old name"})
	require.NoError(t, err)

	name := "New name"
	price := decimal.RequireFromString("12.50")
	inactive := false
	updated, err := svc.UpdateProduct(ctx, domain.UpdateProductRequest{
		ID:        product.ID.String(),
		Name:      &name,
		SalePrice: &price,
		Active:    &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	assert.True(t, updated.SalePrice.Equal(price))
	assert.False(t, updated.Active)

	_, err = svc.UpdateProduct(ctx, domain.UpdateProductRequest{ID: "12345", Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListProducts(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, domain.CreateProductRequest{SKU: "ICE-001", Name: "Ice bag"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, domain.CreateProductRequest{SKU: "WTR-001", Name: "Water crate"})
	require.NoError(t, err)

	resp, err := svc.ListProducts(ctx, domain.ListProductRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "ICE-001", resp.Products[0].SKU)

	resp, err = svc.ListProducts(ctx, domain.ListProductRequest{Query: "Water"})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "WTR-001", resp.Products[0].SKU)
}

func TestAdjustStockAndBalance(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, domain.CreateProductRequest{SKU: "SKU-001", Name: "Crate"})
	require.NoError(t, err)
	id := product.ID.String()

	_, err = svc.AdjustStock(ctx, domain.AdjustStockRequest{
		ProductID: id,
		Quantity:  decimal.RequireFromString("10"),
		Reason:    "opening stock",
	})
	require.NoError(t, err)

	_, err = svc.AdjustStock(ctx, domain.AdjustStockRequest{
		ProductID: id,
		Quantity:  decimal.RequireFromString("-3"),
		Reason:    "sold",
	})
	require.NoError(t, err)

	balance, err := svc.StockBalance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, product.ID, balance.ProductID)
	assert.Equal(t, "SKU-001", balance.SKU)
	assert.True(t, balance.Quantity.Equal(decimal.RequireFromString("7")), balance.Quantity.String())
	assert.Len(t, balance.Recent, 2)
}

func TestAdjustStockValidation(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, domain.CreateProductRequest{SKU: "SKU-001", Name: "Crate"})
	require.NoError(t, err)

	_, err = svc.AdjustStock(ctx, domain.AdjustStockRequest{
		ProductID: product.ID.String(),
		Quantity:  decimal.Zero,
		Reason:    "noop",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.AdjustStock(ctx, domain.AdjustStockRequest{
		ProductID: product.ID.String(),
		Quantity:  decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReason)

	_, err = svc.AdjustStock(ctx, domain.AdjustStockRequest{
		ProductID: "12345",
		Quantity:  decimal.RequireFromString("1"),
		Reason:    "missing product",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	balance, err := svc.StockBalance(ctx, product.ID.String())
	require.NoError(t, err)
	assert.True(t, balance.Quantity.IsZero())
	assert.Empty(t, balance.Recent)
}
