// Package domain contains the product catalog and its stock ledger.
// Stock is never stored as a running total; the balance is the sum of
// adjustment rows, so concurrent postings cannot lose updates.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Product is one sellable or purchasable SKU.
type Product struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	SKU       string          `gorm:"not null;uniqueIndex;size:64" json:"sku"`
	Name      string          `gorm:"not null;index" json:"name"`
	Unit      string          `gorm:"size:32" json:"unit,omitempty"`
	SalePrice decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"sale_price"`
	CostPrice decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"cost_price"`
	Active    bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// StockAdjustment is one signed movement on a product's stock ledger.
type StockAdjustment struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	ProductID snowflake.ID    `gorm:"not null;index" json:"product_id"`
	Quantity  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	Reason    string          `gorm:"not null;size:255" json:"reason"`
	Reference string          `gorm:"size:64" json:"reference,omitempty"`
	CreatedAt time.Time       `gorm:"not null;index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (StockAdjustment) TableName() string { return "stock_adjustments" }
