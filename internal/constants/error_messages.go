package constants

const (
	ErrCodeIdempotencyKeyRequired = "IDEMPOTENCY_KEY_REQUIRED"
	ErrCodeInvalidRequestBody     = "INVALID_REQUEST_BODY"
	ErrCodeAmountRequired         = "AMOUNT_REQUIRED"
	ErrCodeAmountInvalid          = "AMOUNT_INVALID"
	ErrCodeCategoryRequired       = "CATEGORY_REQUIRED"
	ErrCodeCategoryInvalid        = "CATEGORY_INVALID"
	ErrCodeDateRequired           = "DATE_REQUIRED"
	ErrCodeDateInvalid            = "DATE_INVALID"
	ErrCodeDescriptionTooLong     = "DESCRIPTION_TOO_LONG"
	ErrCodeExpenseNotFound        = "EXPENSE_NOT_FOUND"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

const (
	ErrMsgIdempotencyKeyRequired = "Idempotency key is required. Include X-Idempotency-Key header."
	ErrMsgInvalidRequestBody     = "failed to parse request body"
	ErrMsgAmountRequired         = "Amount is required"
	ErrMsgAmountInvalid          = "Amount must be a non-negative number"
	ErrMsgCategoryRequired       = "Category is required"
	ErrMsgCategoryInvalid        = "Category is not a valid expense category"
	ErrMsgDateRequired           = "Date is required"
	ErrMsgDateInvalid            = "Date must be a valid YYYY-MM-DD date"
	ErrMsgDescriptionTooLong     = "Description must be at most 500 characters"
	ErrMsgExpenseNotFound        = "Expense not found"
	ErrMsgInternalError          = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeIdempotencyKeyRequired: ErrMsgIdempotencyKeyRequired,
	ErrCodeInvalidRequestBody:     ErrMsgInvalidRequestBody,
	ErrCodeAmountRequired:         ErrMsgAmountRequired,
	ErrCodeAmountInvalid:          ErrMsgAmountInvalid,
	ErrCodeCategoryRequired:       ErrMsgCategoryRequired,
	ErrCodeCategoryInvalid:        ErrMsgCategoryInvalid,
	ErrCodeDateRequired:           ErrMsgDateRequired,
	ErrCodeDateInvalid:            ErrMsgDateInvalid,
	ErrCodeDescriptionTooLong:     ErrMsgDescriptionTooLong,
	ErrCodeExpenseNotFound:        ErrMsgExpenseNotFound,
	ErrCodeInternalError:          ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeIdempotencyKeyRequired, ErrCodeInvalidRequestBody,
		ErrCodeAmountRequired, ErrCodeAmountInvalid,
		ErrCodeCategoryRequired, ErrCodeCategoryInvalid,
		ErrCodeDateRequired, ErrCodeDateInvalid,
		ErrCodeDescriptionTooLong:
		return 400
	case ErrCodeExpenseNotFound:
		return 404
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
