package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/paymentmethod/domain"
	"github.com/sahamit/backoffice/pkg/db"
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
		log:   p.Log.Named("paymentmethod.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePaymentMethodRequest) (domain.PaymentMethod, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.PaymentMethod{}, domain.ErrInvalidName
	}

	voucherType := req.VoucherType
	if voucherType == "" {
		voucherType = domain.VoucherTypeIndividual
	}
	if !voucherType.Valid() {
		return domain.PaymentMethod{}, domain.ErrInvalidVoucherType
	}

	now := time.Now().UTC()
	method := domain.PaymentMethod{
		ID:          s.genID.Generate(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		VoucherType: voucherType,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &method); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.PaymentMethod{}, domain.ErrDuplicateName
		}
		return domain.PaymentMethod{}, err
	}

	return method, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdatePaymentMethodRequest) (domain.PaymentMethod, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.PaymentMethod{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.PaymentMethod{}, err
	}
	if item == nil {
		return domain.PaymentMethod{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.PaymentMethod{}, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.VoucherType != nil {
		if !req.VoucherType.Valid() {
			return domain.PaymentMethod{}, domain.ErrInvalidVoucherType
		}
		item.VoucherType = *req.VoucherType
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.PaymentMethod{}, domain.ErrDuplicateName
		}
		return domain.PaymentMethod{}, err
	}

	return *item, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.PaymentMethod, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.PaymentMethod{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.PaymentMethod{}, err
	}
	if item == nil {
		return domain.PaymentMethod{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) List(ctx context.Context) ([]domain.PaymentMethod, error) {
	items, err := s.repo.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	methods := make([]domain.PaymentMethod, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		methods = append(methods, *item)
	}

	return methods, nil
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
