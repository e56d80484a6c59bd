package service

import (
	"context"
	"time"

	"github.com/VorteXproCR/Expense-Tracker/internal/repository"
	"go.uber.org/zap"
)

type OutboxService interface {
	FindEventsToQueue(ctx context.Context, limit int) ([]PublishEventCommand, error)
	MarkEventAsQueued(ctx context.Context, eventID int64) error
}

type outbox struct {
	eventRepo repository.EventLogRepository
	logger    *zap.Logger
}

func NewOutboxService(eventRepo repository.EventLogRepository, logger *zap.Logger) OutboxService {
	return &outbox{eventRepo: eventRepo, logger: logger}
}

func (o *outbox) FindEventsToQueue(ctx context.Context, limit int) ([]PublishEventCommand, error) {
	o.logger.Debug("Finding events to publish", zap.Int("batchSize", limit))

	events, err := o.eventRepo.FindUnpublished(limit)
	if err != nil {
		o.logger.Error("Failed to find unpublished events", zap.Error(err))
		return nil, err
	}

	if len(events) == 0 {
		o.logger.Debug("No events found to publish")
		return nil, nil
	}

	commands := make([]PublishEventCommand, 0, len(events))
	for _, event := range events {
		commands = append(commands, PublishEventCommand{
			EventID:    event.ID,
			ExpenseID:  event.ExpenseID,
			Type:       string(event.Type),
			OccurredAt: event.CreatedAt.Format(time.RFC3339),
		})
	}

	return commands, nil
}

func (o *outbox) MarkEventAsQueued(ctx context.Context, eventID int64) error {
	if err := o.eventRepo.MarkPublished(ctx, eventID); err != nil {
		o.logger.Error("Failed to mark event as published",
			zap.Int64("eventID", eventID),
			zap.Error(err))
		return err
	}

	return nil
}
