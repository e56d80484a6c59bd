package middleware

import (
	"errors"

	"github.com/VorteXproCR/Expense-Tracker/internal/constants"
	"github.com/VorteXproCR/Expense-Tracker/internal/service"
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every endpoint answers with. Success payloads
// fill Data (and Total on the list endpoint); failures fill Error and Code.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Total   *float64    `json:"total,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Success: false,
			Error:   constants.GetErrorMessage(constants.ErrCodeInternalError),
			Code:    constants.ErrCodeInternalError,
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == 500 && err.Code != constants.ErrCodeInternalError {
		errorCode = constants.ErrCodeInternalError
	}

	return c.Status(status).JSON(Response{
		Success: false,
		Error:   constants.GetErrorMessage(errorCode),
		Code:    errorCode,
	})
}
