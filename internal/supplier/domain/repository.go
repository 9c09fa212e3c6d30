package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/pkg/db/option"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, supplier *Supplier) error
	Update(ctx context.Context, db *gorm.DB, supplier *Supplier) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Supplier, error)
	List(ctx context.Context, db *gorm.DB, filter ListSupplierFilter, opts ...option.QueryOption) ([]*Supplier, error)
}
