package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/pkg/db/option"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	InsertProduct(ctx context.Context, db *gorm.DB, product *Product) error
	UpdateProduct(ctx context.Context, db *gorm.DB, product *Product) error
	FindProductByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Product, error)
	ListProducts(ctx context.Context, db *gorm.DB, filter ListProductFilter, opts ...option.QueryOption) ([]*Product, error)
	InsertAdjustment(ctx context.Context, db *gorm.DB, adjustment *StockAdjustment) error
	ListAdjustments(ctx context.Context, db *gorm.DB, productID snowflake.ID, limit int) ([]*StockAdjustment, error)
	// SumAdjustments returns the signed quantity total over a product's
	// ledger, zero when the ledger is empty.
	SumAdjustments(ctx context.Context, db *gorm.DB, productID snowflake.ID) (decimal.Decimal, error)
}

type CreateProductRequest struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	SalePrice decimal.Decimal `json:"sale_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
}

type UpdateProductRequest struct {
	ID        string           `json:"-"`
	Name      *string          `json:"name"`
	Unit      *string          `json:"unit"`
	SalePrice *decimal.Decimal `json:"sale_price"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	Active    *bool            `json:"active"`
}

type ListProductRequest struct {
	Query    string
	Active   *bool
	PageSize int
}

type ListProductFilter struct {
	Query  string
	Active *bool
}

type ListProductResponse struct {
	Products []Product `json:"products"`
}

type AdjustStockRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
	Reference string          `json:"reference"`
}

// StockBalance is the current ledger position of one product.
type StockBalance struct {
	ProductID snowflake.ID      `json:"product_id"`
	SKU       string            `json:"sku"`
	Quantity  decimal.Decimal   `json:"quantity"`
	Recent    []StockAdjustment `json:"recent_adjustments,omitempty"`
}

type Service interface {
	CreateProduct(context.Context, CreateProductRequest) (Product, error)
	UpdateProduct(context.Context, UpdateProductRequest) (Product, error)
	GetProduct(context.Context, string) (Product, error)
	ListProducts(context.Context, ListProductRequest) (ListProductResponse, error)
	// AdjustStock appends one signed movement to the product's ledger.
	// A zero quantity is refused.
	AdjustStock(context.Context, AdjustStockRequest) (StockAdjustment, error)
	StockBalance(context.Context, string) (StockBalance, error)
}

var (
	ErrInvalidSKU      = errors.New("invalid_sku")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidReason   = errors.New("invalid_reason")
	ErrNotFound        = errors.New("not_found")
	ErrDuplicateSKU    = errors.New("duplicate_sku")
)
