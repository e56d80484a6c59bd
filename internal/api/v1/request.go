package v1

// CreateExpenseRequest mirrors the wire contract: amount is a decimal
// number that the service converts to integer paisa, date is YYYY-MM-DD.
// Amount is a pointer so that an absent field is not mistaken for zero.
type CreateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
}
