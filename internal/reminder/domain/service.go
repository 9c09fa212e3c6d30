package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, reminder *PaymentReminder) error
	Update(ctx context.Context, db *gorm.DB, reminder *PaymentReminder) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*PaymentReminder, error)
	List(ctx context.Context, db *gorm.DB, filter ListReminderFilter, limit int) ([]*PaymentReminder, error)
	// MarkOverdue flips every pending reminder whose due date is before
	// asOf to overdue, returning the number of rows changed.
	MarkOverdue(ctx context.Context, db *gorm.DB, asOf time.Time) (int64, error)
}

type CreateReminderRequest struct {
	SupplierID string          `json:"supplier_id"`
	DueDate    time.Time       `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
}

type UpdateReminderRequest struct {
	ID      string           `json:"-"`
	DueDate *time.Time       `json:"due_date"`
	Amount  *decimal.Decimal `json:"amount"`
	Note    *string          `json:"note"`
}

type ListReminderFilter struct {
	SupplierID *snowflake.ID
	Status     *Status
	DueBefore  *time.Time
}

type ListReminderRequest struct {
	SupplierID string
	Status     string
	PageSize   int
}

type Service interface {
	Create(context.Context, CreateReminderRequest) (PaymentReminder, error)
	Update(context.Context, UpdateReminderRequest) (PaymentReminder, error)
	Delete(context.Context, string) error
	GetByID(context.Context, string) (PaymentReminder, error)
	List(context.Context, ListReminderRequest) ([]PaymentReminder, error)
	// ListDue returns unpaid reminders due on or before asOf.
	ListDue(ctx context.Context, asOf time.Time) ([]PaymentReminder, error)
	MarkPaid(context.Context, string) (PaymentReminder, error)
	// MarkOverdue runs the sweep against the given instant and reports the
	// number of reminders flipped.
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

var (
	ErrInvalidSupplier = errors.New("invalid_supplier")
	ErrInvalidDueDate  = errors.New("invalid_due_date")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
	ErrAlreadyPaid     = errors.New("already_paid")
)
