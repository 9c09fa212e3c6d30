package paymentmethod

import (
	"github.com/sahamit/backoffice/internal/paymentmethod/repository"
	"github.com/sahamit/backoffice/internal/paymentmethod/service"
	"go.uber.org/fx"
)

var Module = fx.Module("paymentmethod.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
