package expense

import (
	"github.com/sahamit/backoffice/internal/expense/repository"
	"github.com/sahamit/backoffice/internal/expense/service"
	"go.uber.org/fx"
)

var Module = fx.Module("expense.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
