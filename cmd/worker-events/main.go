package main

import (
	"context"
	"time"

	"github.com/VorteXproCR/Expense-Tracker/internal/config"
	"github.com/VorteXproCR/Expense-Tracker/internal/publishers"
	"github.com/VorteXproCR/Expense-Tracker/internal/repository"
	"github.com/VorteXproCR/Expense-Tracker/internal/service"
	"github.com/VorteXproCR/Expense-Tracker/pkg/mq"
	"github.com/VorteXproCR/Expense-Tracker/pkg/mysql"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			NewConnectionDB,
			NewMQConnection,
			NewMQPublisher,

			repository.NewEventLogRepository,

			service.NewOutboxService,

			NewEventPublisher,
		),
		fx.Invoke(runEventPublisher),
	).Run()
}

func runEventPublisher(cfg *config.Config, publisher publishers.EventPublisher, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	interval := cfg.Events.PollInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.EventQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			logger.Info("queue declared", zap.String("queue", publishers.EventQueue))

			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						if err := publisher.Publish(appCtx); err != nil {
							logger.Error("failed to publish expense events", zap.Error(err))
						}
					case <-appCtx.Done():
						logger.Info("publisher context cancelled")
						return
					}
				}
			}()

			logger.Info("event publisher started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping event publisher")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

func NewEventPublisher(svc service.OutboxService, publisher mq.Publisher, cfg *config.Config,
	logger *zap.Logger) publishers.EventPublisher {
	return publishers.NewEventPublisher(svc, publisher, cfg.Events.BatchSize, logger)
}
