package service

import "github.com/VorteXproCR/Expense-Tracker/internal/model"

// CreateExpenseResponse reports the persisted record. Replayed is true
// when the record was created by an earlier request with the same
// idempotency key and this call returned it unchanged.
type CreateExpenseResponse struct {
	Expense  model.Expense
	Replayed bool
}

type ListExpensesResponse struct {
	Expenses   []model.Expense
	TotalPaisa int64
}
