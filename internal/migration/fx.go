package migration

import (
	"github.com/sahamit/backoffice/internal/config"
	"github.com/sahamit/backoffice/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if err := AutoMigrate(conn); err != nil {
			return err
		}

		if err := seed.EnsureReferenceData(conn); err != nil {
			return err
		}
		if cfg.SeedDemoData {
			return seed.EnsureDemoData(conn)
		}
		return nil
	}),
)
