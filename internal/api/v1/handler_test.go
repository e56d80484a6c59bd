package v1_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VorteXproCR/Expense-Tracker/internal/api"
	"github.com/VorteXproCR/Expense-Tracker/internal/api/middleware"
	v1 "github.com/VorteXproCR/Expense-Tracker/internal/api/v1"
	"github.com/VorteXproCR/Expense-Tracker/internal/constants"
	"github.com/VorteXproCR/Expense-Tracker/internal/mocks"
	"github.com/VorteXproCR/Expense-Tracker/internal/model"
	"github.com/VorteXproCR/Expense-Tracker/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestApp(svc *mocks.ExpenseService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	api.SetupRoutes(app, v1.NewHandler(zap.NewNop(), svc))
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

func createRequest(body string, key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/expenses", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-Idempotency-Key", key)
	}
	return req
}

func TestHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 with the created expense", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		created := model.Expense{
			ID:             42,
			IdempotencyKey: "key-123",
			AmountPaisa:    1250,
			Category:       model.CategoryFood,
			Description:    "lunch",
			Date:           time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt:      time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC),
		}

		mockService.On("CreateExpense", mock.Anything, mock.MatchedBy(func(cmd service.CreateExpenseCommand) bool {
			return cmd.IdempotencyKey == "key-123" &&
				cmd.Amount != nil && *cmd.Amount == 12.50 &&
				cmd.Category == "Food" &&
				cmd.Date == "2026-08-15"
		})).Return(service.CreateExpenseResponse{Expense: created}, nil)

		resp, err := app.Test(createRequest(`{"amount":12.50,"category":"Food","description":"lunch","date":"2026-08-15"}`, "key-123"))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		envelope := decodeEnvelope(t, resp)
		assert.Equal(t, true, envelope["success"])

		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, float64(42), data["id"])
		assert.Equal(t, float64(1250), data["amount"])
		assert.Equal(t, "Food", data["category"])
		assert.Equal(t, "2026-08-15", data["date"])

		mockService.AssertExpectations(t)
	})

	t.Run("returns 200 with a message on idempotent replay", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		existing := model.Expense{ID: 7, IdempotencyKey: "key-123", AmountPaisa: 500, Category: model.CategoryFood}
		mockService.On("CreateExpense", mock.Anything, mock.Anything).
			Return(service.CreateExpenseResponse{Expense: existing, Replayed: true}, nil)

		resp, err := app.Test(createRequest(`{"amount":5,"category":"Food","date":"2026-08-15"}`, "key-123"))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		envelope := decodeEnvelope(t, resp)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, "Expense already created (idempotent response)", envelope["message"])

		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, float64(7), data["id"])
	})

	t.Run("rejects a request without the idempotency key header", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		resp, err := app.Test(createRequest(`{"amount":5,"category":"Food","date":"2026-08-15"}`, ""))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		envelope := decodeEnvelope(t, resp)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, constants.ErrCodeIdempotencyKeyRequired, envelope["code"])

		mockService.AssertNotCalled(t, "CreateExpense", mock.Anything, mock.Anything)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		resp, err := app.Test(createRequest(`{"amount":`, "key-123"))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		envelope := decodeEnvelope(t, resp)
		assert.Equal(t, constants.ErrCodeInvalidRequestBody, envelope["code"])

		mockService.AssertNotCalled(t, "CreateExpense", mock.Anything, mock.Anything)
	})

	t.Run("maps validation errors to 400 with the field code", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		svcErr := service.NewServiceError(constants.ErrCodeCategoryInvalid, errors.New(constants.ErrMsgCategoryInvalid))
		mockService.On("CreateExpense", mock.Anything, mock.Anything).
			Return(service.CreateExpenseResponse{}, svcErr)

		resp, err := app.Test(createRequest(`{"amount":5,"category":"Gambling","date":"2026-08-15"}`, "key-123"))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		envelope := decodeEnvelope(t, resp)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, constants.ErrCodeCategoryInvalid, envelope["code"])
	})

	t.Run("maps database errors to 500 without leaking detail", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		svcErr := service.NewServiceError(service.ErrCodeDatabase, errors.New("dial tcp: connection refused"))
		mockService.On("CreateExpense", mock.Anything, mock.Anything).
			Return(service.CreateExpenseResponse{}, svcErr)

		resp, err := app.Test(createRequest(`{"amount":5,"category":"Food","date":"2026-08-15"}`, "key-123"))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		envelope := decodeEnvelope(t, resp)
		assert.Equal(t, constants.ErrCodeInternalError, envelope["code"])

		body, _ := json.Marshal(envelope)
		assert.NotContains(t, string(body), "connection refused")
	})
}

func TestHandler_ListExpenses(t *testing.T) {
	t.Run("returns expenses with the total in display units", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		expenses := []model.Expense{
			{ID: 2, AmountPaisa: 1250, Category: model.CategoryFood, Date: time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)},
			{ID: 1, AmountPaisa: 500, Category: model.CategoryTransport, Date: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)},
		}

		mockService.On("ListExpenses", mock.Anything, service.ListExpensesQuery{}).
			Return(service.ListExpensesResponse{Expenses: expenses, TotalPaisa: 1750}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		envelope := decodeEnvelope(t, resp)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, 17.5, envelope["total"])

		data := envelope["data"].([]interface{})
		assert.Len(t, data, 2)
	})

	t.Run("passes category and sort through to the service", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		mockService.On("ListExpenses", mock.Anything, service.ListExpensesQuery{Category: "Food", Sort: "date_asc"}).
			Return(service.ListExpensesResponse{Expenses: []model.Expense{}, TotalPaisa: 0}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/expenses?category=Food&sort=date_asc", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		envelope := decodeEnvelope(t, resp)
		assert.Equal(t, 0.0, envelope["total"])

		mockService.AssertExpectations(t)
	})
}

func TestHandler_DeleteExpense(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		mockService.On("DeleteExpense", mock.Anything, service.DeleteExpenseCommand{ExpenseID: 42}).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/expenses/42", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		envelope := decodeEnvelope(t, resp)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, "Expense deleted successfully", envelope["message"])
	})

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		svcErr := service.NewServiceError(constants.ErrCodeExpenseNotFound, errors.New(constants.ErrMsgExpenseNotFound))
		mockService.On("DeleteExpense", mock.Anything, service.DeleteExpenseCommand{ExpenseID: 99}).Return(svcErr)

		req := httptest.NewRequest(http.MethodDelete, "/api/expenses/99", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		envelope := decodeEnvelope(t, resp)
		assert.Equal(t, constants.ErrCodeExpenseNotFound, envelope["code"])
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		mockService := &mocks.ExpenseService{}
		app := newTestApp(mockService)

		req := httptest.NewRequest(http.MethodDelete, "/api/expenses/abc", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		mockService.AssertNotCalled(t, "DeleteExpense", mock.Anything, mock.Anything)
	})
}

func TestHandler_Health(t *testing.T) {
	mockService := &mocks.ExpenseService{}
	app := newTestApp(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "ok", envelope["status"])
}
