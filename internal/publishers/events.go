package publishers

import (
	"context"
	"encoding/json"

	"github.com/VorteXproCR/Expense-Tracker/internal/service"
	"github.com/VorteXproCR/Expense-Tracker/pkg/mq"
	"go.uber.org/zap"
)

const EventQueue = "expense.events"

type EventPublisher interface {
	Publish(ctx context.Context) error
}

type eventPublisher struct {
	service   service.OutboxService
	publisher mq.Publisher
	batchSize int
	logger    *zap.Logger
}

func NewEventPublisher(service service.OutboxService, publisher mq.Publisher, batchSize int, logger *zap.Logger) EventPublisher {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &eventPublisher{service: service, publisher: publisher, batchSize: batchSize, logger: logger}
}

func (e *eventPublisher) Publish(ctx context.Context) error {
	events, err := e.service.FindEventsToQueue(ctx, e.batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	e.logger.Info("Publishing expense events", zap.Int("count", len(events)))

	successCount := 0
	for _, event := range events {
		body, _ := json.Marshal(event)
		if err := e.publisher.Publish(ctx, "", EventQueue, body); err != nil {
			e.logger.Error("Failed to publish event",
				zap.Error(err),
				zap.Int64("eventID", event.EventID))
			continue
		}

		if err := e.service.MarkEventAsQueued(ctx, event.EventID); err != nil {
			continue
		}

		successCount++
	}

	if successCount > 0 {
		e.logger.Info("Successfully published expense events",
			zap.Int("published", successCount),
			zap.Int("total", len(events)))
	}

	return nil
}
