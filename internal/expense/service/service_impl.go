package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/config"
	"github.com/sahamit/backoffice/internal/expense/domain"
	"github.com/sahamit/backoffice/internal/tax"
	"github.com/sahamit/backoffice/pkg/db/option"
	"github.com/sahamit/backoffice/pkg/db/pagination"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Config config.Config
	Repo   domain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       domain.Repository
	anchorDay  int
	cycleLimit int
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("expense.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		anchorDay:  p.Config.CycleAnchorDay,
		cycleLimit: p.Config.CycleQueryLimit,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateReceiptRequest) (domain.Receipt, error) {
	number := strings.TrimSpace(req.ReceiptNumber)
	if number == "" {
		return domain.Receipt{}, domain.ErrInvalidReceiptNumber
	}
	if req.ReceiptDate.IsZero() {
		return domain.Receipt{}, domain.ErrInvalidReceiptDate
	}

	supplierID, err := snowflake.ParseString(strings.TrimSpace(req.SupplierID))
	if err != nil || supplierID == 0 {
		return domain.Receipt{}, domain.ErrInvalidSupplier
	}
	paymentMethodID, err := snowflake.ParseString(strings.TrimSpace(req.PaymentMethodID))
	if err != nil || paymentMethodID == 0 {
		return domain.Receipt{}, domain.ErrInvalidPaymentMethod
	}

	var branchID snowflake.ID
	if raw := strings.TrimSpace(req.BranchID); raw != "" {
		branchID, err = snowflake.ParseString(raw)
		if err != nil {
			return domain.Receipt{}, domain.ErrInvalidID
		}
	}

	if err := validateAmounts(req.TotalAmount, req.Discount, req.TaxExempt, req.VATRate, req.WithholdingRate); err != nil {
		return domain.Receipt{}, err
	}

	now := time.Now().UTC()
	receipt := domain.Receipt{
		ID:              s.genID.Generate(),
		ReceiptNumber:   number,
		ReceiptDate:     req.ReceiptDate.UTC(),
		SupplierID:      supplierID,
		PaymentMethodID: paymentMethodID,
		BranchID:        branchID,
		TotalAmount:     req.TotalAmount,
		Discount:        req.Discount,
		TaxExempt:       req.TaxExempt,
		VATRate:         req.VATRate,
		WithholdingRate: req.WithholdingRate,
		Note:            strings.TrimSpace(req.Note),
		Metadata:        datatypes.JSONMap{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, &receipt); err != nil {
		return domain.Receipt{}, err
	}

	return receipt, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateReceiptRequest) (domain.Receipt, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Receipt{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Receipt{}, err
	}
	if item == nil {
		return domain.Receipt{}, domain.ErrNotFound
	}

	if req.ReceiptNumber != nil {
		number := strings.TrimSpace(*req.ReceiptNumber)
		if number == "" {
			return domain.Receipt{}, domain.ErrInvalidReceiptNumber
		}
		item.ReceiptNumber = number
	}
	if req.ReceiptDate != nil {
		if req.ReceiptDate.IsZero() {
			return domain.Receipt{}, domain.ErrInvalidReceiptDate
		}
		item.ReceiptDate = req.ReceiptDate.UTC()
	}
	if req.SupplierID != nil {
		supplierID, err := snowflake.ParseString(strings.TrimSpace(*req.SupplierID))
		if err != nil || supplierID == 0 {
			return domain.Receipt{}, domain.ErrInvalidSupplier
		}
		item.SupplierID = supplierID
	}
	if req.PaymentMethodID != nil {
		paymentMethodID, err := snowflake.ParseString(strings.TrimSpace(*req.PaymentMethodID))
		if err != nil || paymentMethodID == 0 {
			return domain.Receipt{}, domain.ErrInvalidPaymentMethod
		}
		item.PaymentMethodID = paymentMethodID
	}
	if req.TotalAmount != nil {
		item.TotalAmount = *req.TotalAmount
	}
	if req.Discount != nil {
		item.Discount = *req.Discount
	}
	if req.TaxExempt != nil {
		item.TaxExempt = *req.TaxExempt
	}
	if req.VATRate != nil {
		item.VATRate = *req.VATRate
	}
	if req.WithholdingRate != nil {
		item.WithholdingRate = *req.WithholdingRate
	}
	if req.Note != nil {
		item.Note = strings.TrimSpace(*req.Note)
	}

	if err := validateAmounts(item.TotalAmount, item.Discount, item.TaxExempt, item.VATRate, item.WithholdingRate); err != nil {
		return domain.Receipt{}, err
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Receipt{}, err
	}

	return *item, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.ReceiptView, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.ReceiptView{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.ReceiptView{}, err
	}
	if item == nil {
		return domain.ReceiptView{}, domain.ErrNotFound
	}

	return viewOf(*item), nil
}

func (s *Service) List(ctx context.Context, req domain.ListReceiptRequest) (domain.ListReceiptResponse, error) {
	filter := domain.ListReceiptFilter{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	}
	if raw := strings.TrimSpace(req.SupplierID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return domain.ListReceiptResponse{}, domain.ErrInvalidSupplier
		}
		filter.SupplierID = &id
	}
	if raw := strings.TrimSpace(req.BranchID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return domain.ListReceiptResponse{}, domain.ErrInvalidID
		}
		filter.BranchID = &id
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: pageSize}

	items, err := s.repo.List(ctx, s.db, filter,
		option.WithOrder("created_at desc, id desc"),
		option.ApplyPagination(page),
	)
	if err != nil {
		return domain.ListReceiptResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(item *domain.Receipt) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        item.ID.String(),
			CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo.HasMore {
		items = items[:pageSize]
	}

	views := make([]domain.ReceiptView, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		views = append(views, viewOf(*item))
	}

	return domain.ListReceiptResponse{Receipts: views, PageInfo: pageInfo}, nil
}

func (s *Service) ListCycle(ctx context.Context, req domain.ListCycleRequest) ([]domain.Receipt, error) {
	if req.CycleDate.IsZero() {
		return nil, domain.ErrInvalidReceiptDate
	}

	var branchID *snowflake.ID
	if raw := strings.TrimSpace(req.BranchID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil || id == 0 {
			return nil, domain.ErrInvalidID
		}
		branchID = &id
	}

	window := domain.CycleWindowFor(req.CycleDate, s.anchorDay)
	items, err := s.repo.ListCycle(ctx, s.db, window, branchID, s.cycleLimit)
	if err != nil {
		return nil, err
	}

	receipts := make([]domain.Receipt, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		receipts = append(receipts, *item)
	}

	return receipts, nil
}

func viewOf(receipt domain.Receipt) domain.ReceiptView {
	return domain.ReceiptView{
		Receipt:   receipt,
		DisplayNo: receipt.DisplayNumber(),
		Cascade: tax.Compute(tax.CascadeInput{
			TotalAmount: receipt.TotalAmount,
			Discount:    receipt.Discount,
			TaxExempt:   receipt.TaxExempt,
			VAT:         receipt.VATRate,
			Withholding: receipt.WithholdingRate,
		}),
	}
}

func validateAmounts(total, discount, exempt, vat, withholding decimal.Decimal) error {
	if total.IsNegative() || discount.IsNegative() || exempt.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if vat.IsNegative() || vat.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidRate
	}
	if withholding.IsNegative() || withholding.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidRate
	}
	if discount.Add(exempt).GreaterThan(total) {
		return domain.ErrExemptExceedsTotal
	}
	return nil
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
