package repository

import (
	"context"
	"time"

	"github.com/VorteXproCR/Expense-Tracker/internal/model"
	"gorm.io/gorm"
)

type EventLogRepository interface {
	Create(ctx context.Context, event *model.EventLog) error
	FindUnpublished(limit int) ([]model.EventLog, error)
	MarkPublished(ctx context.Context, eventID int64) error
}

type EventLog struct {
	db *gorm.DB
}

func NewEventLogRepository(db *gorm.DB) EventLogRepository {
	return &EventLog{db: db}
}

func (e *EventLog) Create(ctx context.Context, event *model.EventLog) error {
	db := GetTx(ctx, e.db)
	return db.Create(event).Error
}

func (e *EventLog) FindUnpublished(limit int) ([]model.EventLog, error) {
	var events []model.EventLog

	err := e.db.Where("published = ?", false).
		Order("id ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (e *EventLog) MarkPublished(ctx context.Context, eventID int64) error {
	db := GetTx(ctx, e.db)

	now := time.Now()
	result := db.Model(&model.EventLog{}).
		Where("id = ? AND published = ?", eventID, false).
		Updates(map[string]interface{}{
			"published":    true,
			"published_at": &now,
			"updated_at":   now,
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
