package supplier

import (
	"github.com/sahamit/backoffice/internal/supplier/repository"
	"github.com/sahamit/backoffice/internal/supplier/service"
	"go.uber.org/fx"
)

var Module = fx.Module("supplier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
