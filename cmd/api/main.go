package main

import (
	"context"
	"net/http"

	"github.com/VorteXproCR/Expense-Tracker/internal/api"
	"github.com/VorteXproCR/Expense-Tracker/internal/api/middleware"
	v1 "github.com/VorteXproCR/Expense-Tracker/internal/api/v1"
	"github.com/VorteXproCR/Expense-Tracker/internal/config"
	"github.com/VorteXproCR/Expense-Tracker/internal/database"
	"github.com/VorteXproCR/Expense-Tracker/internal/repository"
	"github.com/VorteXproCR/Expense-Tracker/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			database.NewConnection,

			repository.NewExpenseRepository,
			repository.NewEventLogRepository,
			repository.NewTransactionManager,

			service.NewExpenseService,

			v1.NewHandler,
			newFiberApp,
		),
		fx.Invoke(migrate, startServer, startMetricsServer),
	).Run()
}

func newFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
}

func migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := database.Migrate(db); err != nil {
		logger.Error("Migration failed", zap.Error(err))
		return err
	}

	logger.Info("Database migration completed")
	return nil
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting API server", zap.String("port", cfg.API.Port))
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func startMetricsServer(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	server := &http.Server{Addr: cfg.Metrics.Port, Handler: promhttp.Handler()}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting metrics server", zap.String("port", cfg.Metrics.Port))
			go server.ListenAndServe()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
