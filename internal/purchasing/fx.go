package purchasing

import (
	"github.com/sahamit/backoffice/internal/purchasing/repository"
	"github.com/sahamit/backoffice/internal/purchasing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("purchasing.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
