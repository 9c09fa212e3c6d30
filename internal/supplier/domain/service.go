package domain

import (
	"context"
	"errors"
)

type CreateSupplierRequest struct {
	Name        string `json:"name"`
	TaxID       string `json:"tax_id"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	BankAccount string `json:"bank_account"`
}

type UpdateSupplierRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	TaxID       *string `json:"tax_id"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	BankAccount *string `json:"bank_account"`
	Active      *bool   `json:"active"`
}

type ListSupplierRequest struct {
	Name     string
	Active   *bool
	PageSize int
}

type ListSupplierFilter struct {
	Name   string
	Active *bool
}

type ListSupplierResponse struct {
	Suppliers []Supplier `json:"suppliers"`
}

type Service interface {
	Create(context.Context, CreateSupplierRequest) (Supplier, error)
	Update(context.Context, UpdateSupplierRequest) (Supplier, error)
	GetByID(context.Context, string) (Supplier, error)
	List(context.Context, ListSupplierRequest) (ListSupplierResponse, error)
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
