package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/paymentmethod/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, method *domain.PaymentMethod) error {
	return db.WithContext(ctx).Create(method).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, method *domain.PaymentMethod) error {
	return db.WithContext(ctx).Save(method).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&method).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]*domain.PaymentMethod, error) {
	var methods []*domain.PaymentMethod
	err := db.WithContext(ctx).
		Model(&domain.PaymentMethod{}).
		Order("name asc, id asc").
		Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}
