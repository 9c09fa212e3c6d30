package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/branch/domain"
	"github.com/sahamit/backoffice/internal/cache"
	"github.com/sahamit/backoffice/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const prefixCacheTTL = 5 * time.Minute

const prefixCacheKey = "voucher_prefixes"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	prefixes cache.Cache[string, map[snowflake.ID]string]
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("branch.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		prefixes: cache.NewTTLCache[string, map[snowflake.ID]string](),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateBranchRequest) (domain.Branch, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return domain.Branch{}, domain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Branch{}, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	branch := domain.Branch{
		ID:            s.genID.Generate(),
		Code:          code,
		Name:          name,
		VoucherPrefix: strings.TrimSpace(req.VoucherPrefix),
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &branch); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Branch{}, domain.ErrDuplicateCode
		}
		return domain.Branch{}, err
	}
	s.prefixes.Delete(prefixCacheKey)

	return branch, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateBranchRequest) (domain.Branch, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Branch{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Branch{}, err
	}
	if item == nil {
		return domain.Branch{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Branch{}, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.VoucherPrefix != nil {
		item.VoucherPrefix = strings.TrimSpace(*req.VoucherPrefix)
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Branch{}, err
	}
	s.prefixes.Delete(prefixCacheKey)

	return *item, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Branch, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Branch{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Branch{}, err
	}
	if item == nil {
		return domain.Branch{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Branch, error) {
	items, err := s.repo.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	branches := make([]domain.Branch, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		branches = append(branches, *item)
	}

	return branches, nil
}

func (s *Service) PrefixMap(ctx context.Context) (map[snowflake.ID]string, error) {
	if cached, ok := s.prefixes.Get(prefixCacheKey); ok {
		return cached, nil
	}

	items, err := s.repo.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	prefixes := make(map[snowflake.ID]string, len(items))
	for _, item := range items {
		if item == nil || item.VoucherPrefix == "" {
			continue
		}
		prefixes[item.ID] = item.VoucherPrefix
	}

	s.prefixes.Set(prefixCacheKey, prefixes, prefixCacheTTL)
	return prefixes, nil
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
