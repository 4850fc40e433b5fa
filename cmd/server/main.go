// Command server runs the Chonost Manuscript OS API: a REST service over
// the Unified Linking Model of manuscripts, typed nodes and typed edges.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/chonost/manuscript-os/domain/edges"
	"github.com/chonost/manuscript-os/domain/health"
	"github.com/chonost/manuscript-os/domain/manuscripts"
	"github.com/chonost/manuscript-os/domain/nodes"
	"github.com/chonost/manuscript-os/internal/config"
	"github.com/chonost/manuscript-os/internal/database"
	"github.com/chonost/manuscript-os/internal/migrate"
	"github.com/chonost/manuscript-os/internal/server"
	"github.com/chonost/manuscript-os/internal/version"
	"github.com/chonost/manuscript-os/pkg/logger"
)

func main() {
	// Optional .env for local development; ignore when absent.
	_ = godotenv.Load()

	app := fx.New(
		logger.Module,
		config.Module,
		database.Module,
		migrate.Module,
		server.Module,

		health.Module,
		manuscripts.Module,
		nodes.Module,
		edges.Module,

		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log.With(logger.Scope("fx"))}
		}),

		fx.Invoke(func(log *slog.Logger) {
			log.Info("service starting",
				slog.String("service", version.Service),
				slog.String("version", version.Version),
			)
		}),
	)

	app.Run()
}
