package reminder

import (
	"github.com/sahamit/backoffice/internal/reminder/repository"
	"github.com/sahamit/backoffice/internal/reminder/service"
	"go.uber.org/fx"
)

var Module = fx.Module("reminder.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
