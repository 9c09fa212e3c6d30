package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/branch/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, branch *domain.Branch) error {
	return db.WithContext(ctx).Create(branch).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, branch *domain.Branch) error {
	return db.WithContext(ctx).Save(branch).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Branch, error) {
	var branch domain.Branch
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&branch).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]*domain.Branch, error) {
	var branches []*domain.Branch
	err := db.WithContext(ctx).
		Model(&domain.Branch{}).
		Order("code asc").
		Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}
