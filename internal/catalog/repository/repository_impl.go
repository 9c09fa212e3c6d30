package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/catalog/domain"
	"github.com/sahamit/backoffice/pkg/db/option"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertProduct(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) UpdateProduct(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Save(product).Error
}

func (r *repo) FindProductByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Product, error) {
	var product domain.Product
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *repo) ListProducts(ctx context.Context, db *gorm.DB, filter domain.ListProductFilter, opts ...option.QueryOption) ([]*domain.Product, error) {
	var products []*domain.Product
	stmt := db.WithContext(ctx).Model(&domain.Product{})
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		stmt = stmt.Where("sku LIKE ? OR name LIKE ?", pattern, pattern)
	}
	if filter.Active != nil {
		stmt = stmt.Where("active = ?", *filter.Active)
	}
	stmt = option.Apply(stmt, opts...)
	err := stmt.Order("sku asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repo) InsertAdjustment(ctx context.Context, db *gorm.DB, adjustment *domain.StockAdjustment) error {
	return db.WithContext(ctx).Create(adjustment).Error
}

func (r *repo) ListAdjustments(ctx context.Context, db *gorm.DB, productID snowflake.ID, limit int) ([]*domain.StockAdjustment, error) {
	var adjustments []*domain.StockAdjustment
	err := db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&adjustments).Error
	if err != nil {
		return nil, err
	}
	return adjustments, nil
}

func (r *repo) SumAdjustments(ctx context.Context, db *gorm.DB, productID snowflake.ID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := db.WithContext(ctx).
		Model(&domain.StockAdjustment{}).
		Where("product_id = ?", productID).
		Select("SUM(quantity)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
