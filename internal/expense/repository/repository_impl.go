package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/expense/domain"
	"github.com/sahamit/backoffice/pkg/db/option"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, receipt *domain.Receipt) error {
	return db.WithContext(ctx).Create(receipt).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, receipt *domain.Receipt) error {
	return db.WithContext(ctx).Save(receipt).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Receipt{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Receipt, error) {
	var receipt domain.Receipt
	err := db.WithContext(ctx).
		Preload("Supplier").
		Preload("PaymentMethod").
		Preload("Branch").
		Where("id = ?", id).
		First(&receipt).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &receipt, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListReceiptFilter, opts ...option.QueryOption) ([]*domain.Receipt, error) {
	var receipts []*domain.Receipt
	stmt := db.WithContext(ctx).
		Model(&domain.Receipt{}).
		Preload("Supplier").
		Preload("PaymentMethod")
	if filter.SupplierID != nil {
		stmt = stmt.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.BranchID != nil {
		stmt = stmt.Where("branch_id = ?", *filter.BranchID)
	}
	if filter.DateFrom != nil {
		stmt = stmt.Where("receipt_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		stmt = stmt.Where("receipt_date <= ?", *filter.DateTo)
	}
	stmt = option.Apply(stmt, opts...)
	if err := stmt.Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *repo) ListCycle(ctx context.Context, db *gorm.DB, window domain.CycleWindow, branchID *snowflake.ID, limit int) ([]*domain.Receipt, error) {
	var receipts []*domain.Receipt
	stmt := db.WithContext(ctx).
		Model(&domain.Receipt{}).
		Preload("Supplier").
		Preload("PaymentMethod").
		Where("created_at >= ? AND created_at < ?", window.Start, window.End)
	if branchID != nil {
		stmt = stmt.Where("branch_id = ?", *branchID)
	}
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}
	err := stmt.
		Order("receipt_date asc, receipt_number asc").
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}
