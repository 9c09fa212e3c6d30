package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, method *PaymentMethod) error
	Update(ctx context.Context, db *gorm.DB, method *PaymentMethod) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*PaymentMethod, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]*PaymentMethod, error)
}

type CreatePaymentMethodRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	VoucherType VoucherType `json:"voucher_type"`
}

type UpdatePaymentMethodRequest struct {
	ID          string       `json:"-"`
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	VoucherType *VoucherType `json:"voucher_type"`
	Active      *bool        `json:"active"`
}

type Service interface {
	Create(context.Context, CreatePaymentMethodRequest) (PaymentMethod, error)
	Update(context.Context, UpdatePaymentMethodRequest) (PaymentMethod, error)
	GetByID(context.Context, string) (PaymentMethod, error)
	// List returns the full reference list. The voucher engine classifies
	// from this on every run; it is never cached (reference data may have
	// changed between cycles).
	List(context.Context) ([]PaymentMethod, error)
}

var (
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidVoucherType = errors.New("invalid_voucher_type")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
	ErrDuplicateName      = errors.New("duplicate_name")
)
