package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/sahamit/backoffice/internal/clock"
	"github.com/sahamit/backoffice/internal/config"
	"github.com/sahamit/backoffice/internal/migration"
	"github.com/sahamit/backoffice/internal/observability"
	"github.com/sahamit/backoffice/internal/scheduler"
	"github.com/sahamit/backoffice/internal/server"
	"github.com/sahamit/backoffice/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		// Functional domains
		migration.Module,
		scheduler.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
