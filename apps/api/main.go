package main

import (
	"github.com/a13312860897-create/invomate-sub001/internal/clock"
	"github.com/a13312860897-create/invomate-sub001/internal/config"
	"github.com/a13312860897-create/invomate-sub001/internal/invoice"
	invoicedomain "github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	"github.com/a13312860897-create/invomate-sub001/internal/logger"
	"github.com/a13312860897-create/invomate-sub001/internal/reporting"
	"github.com/a13312860897-create/invomate-sub001/internal/server"
	"github.com/a13312860897-create/invomate-sub001/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		db.Module,
		fx.Provide(RegisterSnowflake),

		invoice.Module,
		reporting.Module,

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(AutoMigrate),
		fx.Invoke(func(s *server.Server) {
			s.RegisterRoutes()
		}),
		fx.Invoke(server.RunHTTP),
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

func AutoMigrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(&invoicedomain.Invoice{})
}
