package mocks

import (
	"context"

	"github.com/VorteXproCR/Expense-Tracker/internal/service"
	"github.com/stretchr/testify/mock"
)

type OutboxService struct {
	mock.Mock
}

func (m *OutboxService) FindEventsToQueue(ctx context.Context, limit int) ([]service.PublishEventCommand, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PublishEventCommand), args.Error(1)
}

func (m *OutboxService) MarkEventAsQueued(ctx context.Context, eventID int64) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
