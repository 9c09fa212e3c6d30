package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	branchdomain "github.com/sahamit/backoffice/internal/branch/domain"
	catalogdomain "github.com/sahamit/backoffice/internal/catalog/domain"
	paymentmethoddomain "github.com/sahamit/backoffice/internal/paymentmethod/domain"
	supplierdomain "github.com/sahamit/backoffice/internal/supplier/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EnsureReferenceData seeds the reference rows the voucher engine needs:
// the standard payment methods and the branch table including the legacy
// branch whose voucher ids carry the "3" prefix.
func EnsureReferenceData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensurePaymentMethods(ctx, tx, node); err != nil {
			return err
		}
		return ensureBranches(ctx, tx, node)
	})
}

func ensurePaymentMethods(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	methods := []paymentmethoddomain.PaymentMethod{
		{Name: "Cash", Description: "Paid in cash on delivery", VoucherType: paymentmethoddomain.VoucherTypeIndividual},
		{Name: "Bank transfer", Description: "Consolidated monthly transfer per supplier", VoucherType: paymentmethoddomain.VoucherTypeGroup},
		{Name: "Direct debit", Description: "Drawn by the supplier, no voucher issued", VoucherType: paymentmethoddomain.VoucherTypeSkip},
	}

	for _, method := range methods {
		var existing paymentmethoddomain.PaymentMethod
		err := tx.WithContext(ctx).
			Where("name = ?", method.Name).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		method.ID = node.Generate()
		method.Active = true
		method.CreatedAt = now
		method.UpdatedAt = now
		if err := tx.WithContext(ctx).Create(&method).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureBranches(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	branches := []branchdomain.Branch{
		{Code: "HQ", Name: "Head office", VoucherPrefix: ""},
		{Code: "BR3", Name: "Warehouse branch", VoucherPrefix: "3"},
	}

	for _, branch := range branches {
		var existing branchdomain.Branch
		err := tx.WithContext(ctx).
			Where("code = ?", branch.Code).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		branch.ID = node.Generate()
		branch.Active = true
		branch.CreatedAt = now
		branch.UpdatedAt = now
		if err := tx.WithContext(ctx).Create(&branch).Error; err != nil {
			return err
		}
	}
	return nil
}

// EnsureDemoData seeds a few suppliers and products for local development.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		suppliers := []supplierdomain.Supplier{
			{Name: "Siam Beverage Co., Ltd.", TaxID: "0105536000111"},
			{Name: "Chao Phraya Ice Works", TaxID: "0105536000222"},
		}
		for _, supplier := range suppliers {
			var existing supplierdomain.Supplier
			err := tx.WithContext(ctx).
				Where("name = ?", supplier.Name).
				First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			now := time.Now().UTC()
			supplier.ID = node.Generate()
			supplier.Active = true
			supplier.CreatedAt = now
			supplier.UpdatedAt = now
			if err := tx.WithContext(ctx).Create(&supplier).Error; err != nil {
				return err
			}
		}

		products := []catalogdomain.Product{
			{SKU: "WTR-600", Name: "Drinking water 600ml", Unit: "bottle", SalePrice: decimal.RequireFromString("7"), CostPrice: decimal.RequireFromString("5.5")},
			{SKU: "ICE-10KG", Name: "Ice bag 10kg", Unit: "bag", SalePrice: decimal.RequireFromString("40"), CostPrice: decimal.RequireFromString("28")},
		}
		for _, product := range products {
			var existing catalogdomain.Product
			err := tx.WithContext(ctx).
				Where("sku = ?", product.SKU).
				First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			now := time.Now().UTC()
			product.ID = node.Generate()
			product.Active = true
			product.CreatedAt = now
			product.UpdatedAt = now
			if err := tx.WithContext(ctx).Create(&product).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
