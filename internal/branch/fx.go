package branch

import (
	"github.com/sahamit/backoffice/internal/branch/repository"
	"github.com/sahamit/backoffice/internal/branch/service"
	"go.uber.org/fx"
)

var Module = fx.Module("branch.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
