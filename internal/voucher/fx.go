package voucher

import (
	"github.com/sahamit/backoffice/internal/voucher/service"
	"go.uber.org/fx"
)

var Module = fx.Module("voucher",
	fx.Provide(service.New),
)
