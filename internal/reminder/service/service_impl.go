package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/clock"
	"github.com/sahamit/backoffice/internal/reminder/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("reminder.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateReminderRequest) (domain.PaymentReminder, error) {
	supplierID, err := snowflake.ParseString(strings.TrimSpace(req.SupplierID))
	if err != nil || supplierID == 0 {
		return domain.PaymentReminder{}, domain.ErrInvalidSupplier
	}
	if req.DueDate.IsZero() {
		return domain.PaymentReminder{}, domain.ErrInvalidDueDate
	}
	if !req.Amount.IsPositive() {
		return domain.PaymentReminder{}, domain.ErrInvalidAmount
	}

	now := s.clock.Now()
	reminder := domain.PaymentReminder{
		ID:         s.genID.Generate(),
		SupplierID: supplierID,
		DueDate:    req.DueDate.UTC(),
		Amount:     req.Amount,
		Note:       strings.TrimSpace(req.Note),
		Status:     domain.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &reminder); err != nil {
		return domain.PaymentReminder{}, err
	}

	return reminder, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateReminderRequest) (domain.PaymentReminder, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.PaymentReminder{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.PaymentReminder{}, err
	}
	if item == nil {
		return domain.PaymentReminder{}, domain.ErrNotFound
	}
	if item.Status == domain.StatusPaid {
		return domain.PaymentReminder{}, domain.ErrAlreadyPaid
	}

	if req.DueDate != nil {
		if req.DueDate.IsZero() {
			return domain.PaymentReminder{}, domain.ErrInvalidDueDate
		}
		item.DueDate = req.DueDate.UTC()
		// A pushed-out due date makes an overdue reminder pending again;
		// the next sweep re-evaluates it.
		if item.Status == domain.StatusOverdue && !item.DueDate.Before(s.clock.Now()) {
			item.Status = domain.StatusPending
		}
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return domain.PaymentReminder{}, domain.ErrInvalidAmount
		}
		item.Amount = *req.Amount
	}
	if req.Note != nil {
		item.Note = strings.TrimSpace(*req.Note)
	}
	item.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.PaymentReminder{}, err
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

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.PaymentReminder, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.PaymentReminder{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.PaymentReminder{}, err
	}
	if item == nil {
		return domain.PaymentReminder{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListReminderRequest) ([]domain.PaymentReminder, error) {
	filter := domain.ListReminderFilter{}
	if raw := strings.TrimSpace(req.SupplierID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return nil, domain.ErrInvalidSupplier
		}
		filter.SupplierID = &id
	}
	if raw := strings.TrimSpace(req.Status); raw != "" {
		status := domain.Status(raw)
		switch status {
		case domain.StatusPending, domain.StatusPaid, domain.StatusOverdue:
		default:
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = &status
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	return s.collect(ctx, filter, pageSize)
}

func (s *Service) ListDue(ctx context.Context, asOf time.Time) ([]domain.PaymentReminder, error) {
	if asOf.IsZero() {
		asOf = s.clock.Now()
	}
	status := domain.StatusPending
	due := asOf.UTC()

	pending, err := s.collect(ctx, domain.ListReminderFilter{Status: &status, DueBefore: &due}, 200)
	if err != nil {
		return nil, err
	}
	overdueStatus := domain.StatusOverdue
	overdue, err := s.collect(ctx, domain.ListReminderFilter{Status: &overdueStatus}, 200)
	if err != nil {
		return nil, err
	}
	return append(overdue, pending...), nil
}

func (s *Service) MarkPaid(ctx context.Context, rawID string) (domain.PaymentReminder, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.PaymentReminder{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.PaymentReminder{}, err
	}
	if item == nil {
		return domain.PaymentReminder{}, domain.ErrNotFound
	}
	if item.Status == domain.StatusPaid {
		return domain.PaymentReminder{}, domain.ErrAlreadyPaid
	}

	now := s.clock.Now()
	item.Status = domain.StatusPaid
	item.PaidAt = &now
	item.UpdatedAt = now

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.PaymentReminder{}, err
	}

	return *item, nil
}

func (s *Service) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	if asOf.IsZero() {
		asOf = s.clock.Now()
	}

	flipped, err := s.repo.MarkOverdue(ctx, s.db, asOf.UTC())
	if err != nil {
		return 0, err
	}
	if flipped > 0 {
		s.log.Info("reminders marked overdue", zap.Int64("count", flipped))
	}
	return flipped, nil
}

func (s *Service) collect(ctx context.Context, filter domain.ListReminderFilter, limit int) ([]domain.PaymentReminder, error) {
	items, err := s.repo.List(ctx, s.db, filter, limit)
	if err != nil {
		return nil, err
	}
	reminders := make([]domain.PaymentReminder, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		reminders = append(reminders, *item)
	}
	return reminders, nil
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
