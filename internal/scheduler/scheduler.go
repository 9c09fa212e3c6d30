// Package scheduler runs the periodic background jobs: currently the
// overdue reminder sweep.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/sahamit/backoffice/internal/clock"
	"github.com/sahamit/backoffice/internal/config"
	reminderdomain "github.com/sahamit/backoffice/internal/reminder/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("scheduler: missing dependency")

const sweepTimeout = time.Minute

type Params struct {
	fx.In

	Log       *zap.Logger
	Config    config.Config
	Clock     clock.Clock
	Reminders reminderdomain.Service
}

type Scheduler struct {
	log       *zap.Logger
	clock     clock.Clock
	interval  time.Duration
	reminders reminderdomain.Service
}

func New(p Params) (*Scheduler, error) {
	if p.Log == nil || p.Clock == nil || p.Reminders == nil {
		return nil, ErrInvalidConfig
	}
	interval := time.Duration(p.Config.ReminderSweepHours) * time.Hour
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{
		log:       p.Log.Named("scheduler").With(zap.String("component", "scheduler")),
		clock:     p.Clock,
		interval:  interval,
		reminders: p.Reminders,
	}, nil
}

// RunForever sweeps once at startup and then on every tick until the
// context is cancelled.
func (s *Scheduler) RunForever(ctx context.Context) {
	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *Scheduler) Sweep(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, sweepTimeout)
	defer cancel()

	flipped, err := s.reminders.MarkOverdue(ctx, s.clock.Now())
	if err != nil {
		s.log.Error("reminder sweep failed", zap.Error(err))
		return
	}
	s.log.Debug("reminder sweep completed", zap.Int64("flipped", flipped))
}
