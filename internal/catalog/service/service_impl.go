package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/catalog/domain"
	"github.com/sahamit/backoffice/pkg/db"
	"github.com/sahamit/backoffice/pkg/db/option"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("catalog.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		return domain.Product{}, domain.ErrInvalidSKU
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}
	if req.SalePrice.IsNegative() || req.CostPrice.IsNegative() {
		return domain.Product{}, domain.ErrInvalidPrice
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:        s.genID.Generate(),
		SKU:       sku,
		Name:      name,
		Unit:      strings.TrimSpace(req.Unit),
		SalePrice: req.SalePrice,
		CostPrice: req.CostPrice,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.InsertProduct(ctx, s.db, &product); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Product{}, domain.ErrDuplicateSKU
		}
		return domain.Product{}, err
	}

	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, req domain.UpdateProductRequest) (domain.Product, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Product{}, err
	}

	item, err := s.repo.FindProductByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if item == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Product{}, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Unit != nil {
		item.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.SalePrice != nil {
		if req.SalePrice.IsNegative() {
			return domain.Product{}, domain.ErrInvalidPrice
		}
		item.SalePrice = *req.SalePrice
	}
	if req.CostPrice != nil {
		if req.CostPrice.IsNegative() {
			return domain.Product{}, domain.ErrInvalidPrice
		}
		item.CostPrice = *req.CostPrice
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProduct(ctx, s.db, item); err != nil {
		return domain.Product{}, err
	}

	return *item, nil
}

func (s *Service) GetProduct(ctx context.Context, rawID string) (domain.Product, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Product{}, err
	}

	item, err := s.repo.FindProductByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if item == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) ListProducts(ctx context.Context, req domain.ListProductRequest) (domain.ListProductResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.ListProducts(ctx, s.db, domain.ListProductFilter{
		Query:  strings.TrimSpace(req.Query),
		Active: req.Active,
	}, option.WithLimit(pageSize))
	if err != nil {
		return domain.ListProductResponse{}, err
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		products = append(products, *item)
	}

	return domain.ListProductResponse{Products: products}, nil
}

func (s *Service) AdjustStock(ctx context.Context, req domain.AdjustStockRequest) (domain.StockAdjustment, error) {
	id, err := parseID(req.ProductID)
	if err != nil {
		return domain.StockAdjustment{}, err
	}
	if req.Quantity.IsZero() {
		return domain.StockAdjustment{}, domain.ErrInvalidQuantity
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return domain.StockAdjustment{}, domain.ErrInvalidReason
	}

	product, err := s.repo.FindProductByID(ctx, s.db, id)
	if err != nil {
		return domain.StockAdjustment{}, err
	}
	if product == nil {
		return domain.StockAdjustment{}, domain.ErrNotFound
	}

	adjustment := domain.StockAdjustment{
		ID:        s.genID.Generate(),
		ProductID: id,
		Quantity:  req.Quantity,
		Reason:    reason,
		Reference: strings.TrimSpace(req.Reference),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.InsertAdjustment(ctx, s.db, &adjustment); err != nil {
		return domain.StockAdjustment{}, err
	}

	return adjustment, nil
}

const recentAdjustmentLimit = 20

func (s *Service) StockBalance(ctx context.Context, rawID string) (domain.StockBalance, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.StockBalance{}, err
	}

	product, err := s.repo.FindProductByID(ctx, s.db, id)
	if err != nil {
		return domain.StockBalance{}, err
	}
	if product == nil {
		return domain.StockBalance{}, domain.ErrNotFound
	}

	total, err := s.repo.SumAdjustments(ctx, s.db, id)
	if err != nil {
		return domain.StockBalance{}, err
	}

	recent, err := s.repo.ListAdjustments(ctx, s.db, id, recentAdjustmentLimit)
	if err != nil {
		return domain.StockBalance{}, err
	}

	balance := domain.StockBalance{
		ProductID: id,
		SKU:       product.SKU,
		Quantity:  total,
	}
	for _, adjustment := range recent {
		if adjustment == nil {
			continue
		}
		balance.Recent = append(balance.Recent, *adjustment)
	}

	return balance, nil
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
