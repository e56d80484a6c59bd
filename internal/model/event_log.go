package model

import "time"

type EventType string

const (
	EventTypeExpenseCreated EventType = "EXPENSE_CREATED"
	EventTypeExpenseDeleted EventType = "EXPENSE_DELETED"
)

// EventLog is the transactional outbox: rows are inserted in the same
// database transaction as the expense mutation they describe and drained
// to the queue by cmd/worker-events.
type EventLog struct {
	ID          int64      `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	ExpenseID   int64      `gorm:"column:expense_id;index"`
	Type        EventType  `gorm:"column:event_type;size:32"`
	Published   bool       `gorm:"column:published;index"`
	PublishedAt *time.Time `gorm:"column:published_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}
