package mocks

import (
	"context"

	"github.com/VorteXproCR/Expense-Tracker/internal/service"
	"github.com/stretchr/testify/mock"
)

type ExpenseService struct {
	mock.Mock
}

func (m *ExpenseService) CreateExpense(ctx context.Context, cmd service.CreateExpenseCommand) (service.CreateExpenseResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.CreateExpenseResponse), args.Error(1)
}

func (m *ExpenseService) ListExpenses(ctx context.Context, query service.ListExpensesQuery) (service.ListExpensesResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(service.ListExpensesResponse), args.Error(1)
}

func (m *ExpenseService) DeleteExpense(ctx context.Context, cmd service.DeleteExpenseCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
