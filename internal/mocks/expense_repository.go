package mocks

import (
	"context"

	"github.com/VorteXproCR/Expense-Tracker/internal/model"
	"github.com/VorteXproCR/Expense-Tracker/internal/repository"
	"github.com/stretchr/testify/mock"
)

type ExpenseRepository struct {
	mock.Mock
}

func (m *ExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *ExpenseRepository) GetByIdempotencyKey(key string) (*model.Expense, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *ExpenseRepository) GetByID(id int64) (*model.Expense, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *ExpenseRepository) List(filter repository.ListFilter) ([]model.Expense, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *ExpenseRepository) SumAmountPaisa(filter repository.ListFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
