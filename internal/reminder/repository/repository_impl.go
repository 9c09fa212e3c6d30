package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/reminder/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, reminder *domain.PaymentReminder) error {
	return db.WithContext(ctx).Create(reminder).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, reminder *domain.PaymentReminder) error {
	return db.WithContext(ctx).Omit("Supplier").Save(reminder).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.PaymentReminder{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.PaymentReminder, error) {
	var reminder domain.PaymentReminder
	err := db.WithContext(ctx).
		Preload("Supplier").
		Where("id = ?", id).
		First(&reminder).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListReminderFilter, limit int) ([]*domain.PaymentReminder, error) {
	var reminders []*domain.PaymentReminder
	stmt := db.WithContext(ctx).Model(&domain.PaymentReminder{}).Preload("Supplier")
	if filter.SupplierID != nil {
		stmt = stmt.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Status != nil {
		stmt = stmt.Where("status = ?", *filter.Status)
	}
	if filter.DueBefore != nil {
		stmt = stmt.Where("due_date <= ?", *filter.DueBefore)
	}
	err := stmt.Order("due_date asc, id asc").Limit(limit).Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *repo) MarkOverdue(ctx context.Context, db *gorm.DB, asOf time.Time) (int64, error) {
	result := db.WithContext(ctx).
		Model(&domain.PaymentReminder{}).
		Where("status = ? AND due_date < ?", domain.StatusPending, asOf).
		Updates(map[string]interface{}{
			"status":     domain.StatusOverdue,
			"updated_at": asOf,
		})
	return result.RowsAffected, result.Error
}
