package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/sahamit/backoffice/internal/catalog/domain"
	"github.com/sahamit/backoffice/internal/purchasing/domain"
	"github.com/sahamit/backoffice/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Repo        domain.Repository
	CatalogRepo catalogdomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	repo        domain.Repository
	catalogRepo catalogdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("purchasing.service"),
		genID:       p.GenID,
		repo:        p.Repo,
		catalogRepo: p.CatalogRepo,
	}
}

func (s *Service) CreateInvoice(ctx context.Context, req domain.CreateInvoiceRequest) (domain.PurchaseInvoice, error) {
	number := strings.TrimSpace(req.InvoiceNumber)
	if number == "" {
		return domain.PurchaseInvoice{}, domain.ErrInvalidNumber
	}
	supplierID, err := snowflake.ParseString(strings.TrimSpace(req.SupplierID))
	if err != nil || supplierID == 0 {
		return domain.PurchaseInvoice{}, domain.ErrInvalidSupplier
	}
	if req.InvoiceDate.IsZero() {
		return domain.PurchaseInvoice{}, domain.ErrInvalidDate
	}
	if len(req.Lines) == 0 {
		return domain.PurchaseInvoice{}, domain.ErrInvalidLine
	}

	now := time.Now().UTC()
	invoice := domain.PurchaseInvoice{
		ID:            s.genID.Generate(),
		InvoiceNumber: number,
		SupplierID:    supplierID,
		InvoiceDate:   req.InvoiceDate.UTC(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	total := decimal.Zero
	for _, line := range req.Lines {
		productID, err := snowflake.ParseString(strings.TrimSpace(line.ProductID))
		if err != nil || productID == 0 {
			return domain.PurchaseInvoice{}, domain.ErrInvalidLine
		}
		if !line.Quantity.IsPositive() || line.UnitPrice.IsNegative() {
			return domain.PurchaseInvoice{}, domain.ErrInvalidLine
		}
		amount := line.Quantity.Mul(line.UnitPrice)
		total = total.Add(amount)
		invoice.Lines = append(invoice.Lines, domain.PurchaseInvoiceLine{
			ID:          s.genID.Generate(),
			InvoiceID:   invoice.ID,
			ProductID:   productID,
			Description: strings.TrimSpace(line.Description),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      amount,
		})
	}
	invoice.TotalAmount = total

	if err := s.repo.InsertInvoice(ctx, s.db, &invoice); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.PurchaseInvoice{}, domain.ErrDuplicateNumber
		}
		return domain.PurchaseInvoice{}, err
	}

	return invoice, nil
}

func (s *Service) GetInvoice(ctx context.Context, rawID string) (domain.PurchaseInvoice, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.PurchaseInvoice{}, err
	}

	item, err := s.repo.FindInvoiceByID(ctx, s.db, id)
	if err != nil {
		return domain.PurchaseInvoice{}, err
	}
	if item == nil {
		return domain.PurchaseInvoice{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) ListInvoices(ctx context.Context, req domain.ListInvoiceRequest) ([]domain.PurchaseInvoice, error) {
	filter := domain.ListInvoiceFilter{}
	if raw := strings.TrimSpace(req.SupplierID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return nil, domain.ErrInvalidSupplier
		}
		filter.SupplierID = &id
	}
	if raw := strings.TrimSpace(req.Status); raw != "" {
		status := domain.MatchStatus(raw)
		filter.Status = &status
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.ListInvoices(ctx, s.db, filter, pageSize)
	if err != nil {
		return nil, err
	}

	invoices := make([]domain.PurchaseInvoice, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		invoices = append(invoices, *item)
	}
	return invoices, nil
}

func (s *Service) CreateNote(ctx context.Context, req domain.CreateNoteRequest) (domain.DeliveryNote, error) {
	number := strings.TrimSpace(req.NoteNumber)
	if number == "" {
		return domain.DeliveryNote{}, domain.ErrInvalidNumber
	}
	supplierID, err := snowflake.ParseString(strings.TrimSpace(req.SupplierID))
	if err != nil || supplierID == 0 {
		return domain.DeliveryNote{}, domain.ErrInvalidSupplier
	}
	if req.DeliveryDate.IsZero() {
		return domain.DeliveryNote{}, domain.ErrInvalidDate
	}
	if len(req.Lines) == 0 {
		return domain.DeliveryNote{}, domain.ErrInvalidLine
	}

	now := time.Now().UTC()
	note := domain.DeliveryNote{
		ID:           s.genID.Generate(),
		NoteNumber:   number,
		SupplierID:   supplierID,
		DeliveryDate: req.DeliveryDate.UTC(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for _, line := range req.Lines {
		productID, err := snowflake.ParseString(strings.TrimSpace(line.ProductID))
		if err != nil || productID == 0 {
			return domain.DeliveryNote{}, domain.ErrInvalidLine
		}
		if !line.Quantity.IsPositive() {
			return domain.DeliveryNote{}, domain.ErrInvalidLine
		}
		note.Lines = append(note.Lines, domain.DeliveryNoteLine{
			ID:        s.genID.Generate(),
			NoteID:    note.ID,
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	if err := s.repo.InsertNote(ctx, s.db, &note); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.DeliveryNote{}, domain.ErrDuplicateNumber
		}
		return domain.DeliveryNote{}, err
	}

	return note, nil
}

func (s *Service) GetNote(ctx context.Context, rawID string) (domain.DeliveryNote, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.DeliveryNote{}, err
	}

	item, err := s.repo.FindNoteByID(ctx, s.db, id)
	if err != nil {
		return domain.DeliveryNote{}, err
	}
	if item == nil {
		return domain.DeliveryNote{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) ListNotes(ctx context.Context, req domain.ListNoteRequest) ([]domain.DeliveryNote, error) {
	filter := domain.ListNoteFilter{Unmatched: req.Unmatched}
	if raw := strings.TrimSpace(req.SupplierID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return nil, domain.ErrInvalidSupplier
		}
		filter.SupplierID = &id
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.ListNotes(ctx, s.db, filter, pageSize)
	if err != nil {
		return nil, err
	}

	notes := make([]domain.DeliveryNote, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		notes = append(notes, *item)
	}
	return notes, nil
}

func (s *Service) MatchDeliveryNote(ctx context.Context, req domain.MatchRequest) (domain.MatchResult, error) {
	invoiceID, err := parseID(req.InvoiceID)
	if err != nil {
		return domain.MatchResult{}, err
	}
	noteID, err := parseID(req.DeliveryNoteID)
	if err != nil {
		return domain.MatchResult{}, err
	}

	var result domain.MatchResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoice, err := s.repo.FindInvoiceByID(ctx, tx, invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrNotFound
		}
		note, err := s.repo.FindNoteByID(ctx, tx, noteID)
		if err != nil {
			return err
		}
		if note == nil {
			return domain.ErrNotFound
		}
		if note.InvoiceID != nil {
			return domain.ErrAlreadyMatched
		}
		if note.SupplierID != invoice.SupplierID {
			return domain.ErrSupplierMismatch
		}

		status := reconcile(invoice.Lines, note.Lines)
		now := time.Now().UTC()

		note.InvoiceID = &invoice.ID
		note.MatchStatus = status
		note.UpdatedAt = now
		if err := s.repo.UpdateNote(ctx, tx, note); err != nil {
			return err
		}

		invoice.MatchStatus = status
		invoice.UpdatedAt = now
		if err := s.repo.UpdateInvoice(ctx, tx, invoice); err != nil {
			return err
		}

		// Received quantities land on the stock ledger in the same
		// transaction as the match itself.
		for _, line := range note.Lines {
			adjustment := catalogdomain.StockAdjustment{
				ID:        s.genID.Generate(),
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Reason:    "goods received",
				Reference: note.NoteNumber,
				CreatedAt: now,
			}
			if err := s.catalogRepo.InsertAdjustment(ctx, tx, &adjustment); err != nil {
				return err
			}
		}

		result = domain.MatchResult{Invoice: *invoice, Note: *note, Status: status}
		return nil
	})
	if err != nil {
		return domain.MatchResult{}, err
	}

	s.log.Info("delivery note matched",
		zap.String("invoice_number", result.Invoice.InvoiceNumber),
		zap.String("note_number", result.Note.NoteNumber),
		zap.String("status", string(result.Status)),
	)

	return result, nil
}

// reconcile compares one note's delivered quantities against the invoiced
// quantities per product. Over-delivery anywhere dominates; otherwise any
// shortfall makes the match partial.
func reconcile(invoiced []domain.PurchaseInvoiceLine, delivered []domain.DeliveryNoteLine) domain.MatchStatus {
	want := make(map[snowflake.ID]decimal.Decimal, len(invoiced))
	for _, line := range invoiced {
		want[line.ProductID] = want[line.ProductID].Add(line.Quantity)
	}
	got := make(map[snowflake.ID]decimal.Decimal, len(delivered))
	for _, line := range delivered {
		got[line.ProductID] = got[line.ProductID].Add(line.Quantity)
	}

	status := domain.MatchStatusMatched
	for productID, quantity := range got {
		if quantity.GreaterThan(want[productID]) {
			return domain.MatchStatusOver
		}
	}
	for productID, quantity := range want {
		if got[productID].LessThan(quantity) {
			status = domain.MatchStatusPartial
		}
	}
	return status
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
