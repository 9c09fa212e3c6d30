package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/purchasing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertInvoice(ctx context.Context, db *gorm.DB, invoice *domain.PurchaseInvoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) UpdateInvoice(ctx context.Context, db *gorm.DB, invoice *domain.PurchaseInvoice) error {
	return db.WithContext(ctx).Omit("Lines", "Supplier").Save(invoice).Error
}

func (r *repo) FindInvoiceByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.PurchaseInvoice, error) {
	var invoice domain.PurchaseInvoice
	err := db.WithContext(ctx).
		Preload("Lines").
		Preload("Supplier").
		Where("id = ?", id).
		First(&invoice).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *repo) ListInvoices(ctx context.Context, db *gorm.DB, filter domain.ListInvoiceFilter, limit int) ([]*domain.PurchaseInvoice, error) {
	var invoices []*domain.PurchaseInvoice
	stmt := db.WithContext(ctx).Model(&domain.PurchaseInvoice{}).Preload("Lines")
	if filter.SupplierID != nil {
		stmt = stmt.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Status != nil {
		stmt = stmt.Where("match_status = ?", *filter.Status)
	}
	err := stmt.Order("invoice_date desc, id desc").Limit(limit).Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) InsertNote(ctx context.Context, db *gorm.DB, note *domain.DeliveryNote) error {
	return db.WithContext(ctx).Create(note).Error
}

func (r *repo) UpdateNote(ctx context.Context, db *gorm.DB, note *domain.DeliveryNote) error {
	return db.WithContext(ctx).Omit("Lines", "Supplier").Save(note).Error
}

func (r *repo) FindNoteByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.DeliveryNote, error) {
	var note domain.DeliveryNote
	err := db.WithContext(ctx).
		Preload("Lines").
		Preload("Supplier").
		Where("id = ?", id).
		First(&note).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *repo) ListNotes(ctx context.Context, db *gorm.DB, filter domain.ListNoteFilter, limit int) ([]*domain.DeliveryNote, error) {
	var notes []*domain.DeliveryNote
	stmt := db.WithContext(ctx).Model(&domain.DeliveryNote{}).Preload("Lines")
	if filter.SupplierID != nil {
		stmt = stmt.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Unmatched {
		stmt = stmt.Where("invoice_id IS NULL")
	}
	err := stmt.Order("delivery_date desc, id desc").Limit(limit).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}
