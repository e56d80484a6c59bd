package repository

import (
	"context"
	"errors"

	"github.com/VorteXproCR/Expense-Tracker/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("EXPENSE_NOT_FOUND")
var ErrExpenseDuplicate = errors.New("EXPENSE_DUPLICATE")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

// ListFilter narrows and orders the read path. An empty Category means no
// category filtering; Ascending false is the newest-first default.
type ListFilter struct {
	Category  model.Category
	Ascending bool
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	GetByIdempotencyKey(key string) (*model.Expense, error)
	GetByID(id int64) (*model.Expense, error)
	List(filter ListFilter) ([]model.Expense, error)
	SumAmountPaisa(filter ListFilter) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type Expense struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &Expense{db: db}
}

func (e *Expense) Create(ctx context.Context, expense *model.Expense) error {
	db := GetTx(ctx, e.db)
	err := db.Create(expense).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrExpenseDuplicate
	}

	return err
}

func (e *Expense) GetByIdempotencyKey(key string) (*model.Expense, error) {
	var expense model.Expense

	err := e.db.Where("idempotency_key = ?", key).First(&expense).Error
	if err == nil {
		return &expense, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrExpenseNotFound
	}

	return nil, err
}

func (e *Expense) GetByID(id int64) (*model.Expense, error) {
	var expense model.Expense

	err := e.db.Where("id = ?", id).First(&expense).Error
	if err == nil {
		return &expense, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrExpenseNotFound
	}

	return nil, err
}

func (e *Expense) List(filter ListFilter) ([]model.Expense, error) {
	var expenses []model.Expense

	// created_at breaks date ties in the same direction as the date sort.
	order := "date DESC, created_at DESC"
	if filter.Ascending {
		order = "date ASC, created_at ASC"
	}

	err := e.scope(filter).
		Order(order).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (e *Expense) SumAmountPaisa(filter ListFilter) (int64, error) {
	var total int64

	err := e.scope(filter).
		Select("COALESCE(SUM(amount_paisa), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (e *Expense) Delete(ctx context.Context, id int64) error {
	db := GetTx(ctx, e.db)

	result := db.Where("id = ?", id).Delete(&model.Expense{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

func (e *Expense) scope(filter ListFilter) *gorm.DB {
	query := e.db.Model(&model.Expense{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	return query
}
