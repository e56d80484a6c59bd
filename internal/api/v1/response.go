package v1

import (
	"time"

	"github.com/VorteXproCR/Expense-Tracker/internal/model"
)

type ExpenseResponse struct {
	ID             int64  `json:"id"`
	IdempotencyKey string `json:"idempotencyKey"`
	Amount         int64  `json:"amount"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	CreatedAt      string `json:"createdAt"`
}

func toExpenseResponse(e model.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:             e.ID,
		IdempotencyKey: e.IdempotencyKey,
		Amount:         e.AmountPaisa,
		Category:       string(e.Category),
		Description:    e.Description,
		Date:           e.Date.Format("2006-01-02"),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func toExpenseResponses(expenses []model.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out
}
