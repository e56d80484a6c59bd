package service

// CreateExpenseCommand carries one logical create request. Amount is a
// pointer so a missing field is distinguishable from an explicit zero.
type CreateExpenseCommand struct {
	IdempotencyKey string
	Amount         *float64
	Category       string
	Description    string
	Date           string
}

type ListExpensesQuery struct {
	Category string
	Sort     string
}

type DeleteExpenseCommand struct {
	ExpenseID int64
}

type PublishEventCommand struct {
	EventID    int64  `json:"event_id"`
	ExpenseID  int64  `json:"expense_id"`
	Type       string `json:"type"`
	OccurredAt string `json:"occurred_at"`
}
