// Package domain contains branch reference data. A branch may carry a
// voucher prefix that is prepended to every voucher id issued for its
// receipts; most branches have none.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Branch is a business location receipts are posted against.
type Branch struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	Code          string       `gorm:"not null;uniqueIndex;size:16" json:"code"`
	Name          string       `gorm:"not null" json:"name"`
	VoucherPrefix string       `gorm:"size:4;not null;default:''" json:"voucher_prefix"`
	Active        bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Branch) TableName() string { return "branches" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, branch *Branch) error
	Update(ctx context.Context, db *gorm.DB, branch *Branch) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Branch, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]*Branch, error)
}

type CreateBranchRequest struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	VoucherPrefix string `json:"voucher_prefix"`
}

type UpdateBranchRequest struct {
	ID            string  `json:"-"`
	Name          *string `json:"name"`
	VoucherPrefix *string `json:"voucher_prefix"`
	Active        *bool   `json:"active"`
}

type Service interface {
	Create(context.Context, CreateBranchRequest) (Branch, error)
	Update(context.Context, UpdateBranchRequest) (Branch, error)
	GetByID(context.Context, string) (Branch, error)
	List(context.Context) ([]Branch, error)
	// PrefixMap returns the branch id to voucher prefix lookup used by
	// the voucher numbering engine. Seeded from branch rows and cached
	// briefly; prefixes change rarely.
	PrefixMap(context.Context) (map[snowflake.ID]string, error)
}

var (
	ErrInvalidCode   = errors.New("invalid_code")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
	ErrDuplicateCode = errors.New("duplicate_code")
)
