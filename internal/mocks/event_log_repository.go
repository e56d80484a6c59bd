package mocks

import (
	"context"

	"github.com/VorteXproCR/Expense-Tracker/internal/model"
	"github.com/stretchr/testify/mock"
)

type EventLogRepository struct {
	mock.Mock
}

func (m *EventLogRepository) Create(ctx context.Context, event *model.EventLog) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventLogRepository) FindUnpublished(limit int) ([]model.EventLog, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EventLog), args.Error(1)
}

func (m *EventLogRepository) MarkPublished(ctx context.Context, eventID int64) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
