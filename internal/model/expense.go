package model

import "time"

type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

// Categories lists every valid expense category. "All" is a query
// sentinel, not a category, and never appears here.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryEntertainment,
	CategoryHealth,
	CategoryOther,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryShopping, CategoryBills,
		CategoryEntertainment, CategoryHealth, CategoryOther:
		return true
	default:
		return false
	}
}

type Expense struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	IdempotencyKey string    `gorm:"column:idempotency_key;size:128;uniqueIndex:idx_idempotency_key"`
	AmountPaisa    int64     `gorm:"column:amount_paisa"`
	Category       Category  `gorm:"column:category;size:32;index:idx_category_date,priority:1"`
	Description    string    `gorm:"column:description;size:500"`
	Date           time.Time `gorm:"column:date;type:date;index:idx_category_date,priority:2"`
	CreatedAt      time.Time `gorm:"column:created_at;index"`
}
