package v1

import (
	"strconv"

	"github.com/VorteXproCR/Expense-Tracker/internal/api/middleware"
	"github.com/VorteXproCR/Expense-Tracker/internal/constants"
	"github.com/VorteXproCR/Expense-Tracker/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	expensesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "expense_tracker_expenses_created_total",
		Help: "Expenses persisted by the create endpoint",
	})

	expensesReplayedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "expense_tracker_expenses_replayed_total",
		Help: "Create requests answered from an existing idempotency key",
	})

	expensesDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "expense_tracker_expenses_deleted_total",
		Help: "Expenses removed by the delete endpoint",
	})
)

type Handler struct {
	logger  *zap.Logger
	service service.ExpenseService
}

func NewHandler(logger *zap.Logger, service service.ExpenseService) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "message": "Expense Tracker API is running"})
}

func (h *Handler) CreateExpense(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request CreateExpenseRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(middleware.Response{
			Success: false,
			Error:   constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
			Code:    constants.ErrCodeInvalidRequestBody,
		})
	}

	cmd := service.CreateExpenseCommand{
		IdempotencyKey: middleware.IdempotencyKey(c),
		Amount:         request.Amount,
		Category:       request.Category,
		Description:    request.Description,
		Date:           request.Date,
	}

	resp, err := h.service.CreateExpense(ctx, cmd)
	if err != nil {
		return err
	}

	if resp.Replayed {
		expensesReplayedTotal.Inc()
		return c.Status(fiber.StatusOK).JSON(middleware.Response{
			Success: true,
			Data:    toExpenseResponse(resp.Expense),
			Message: "Expense already created (idempotent response)",
		})
	}

	expensesCreatedTotal.Inc()
	h.logger.Info("Expense created successfully",
		zap.Int64("expenseID", resp.Expense.ID),
		zap.String("category", string(resp.Expense.Category)))

	return c.Status(fiber.StatusCreated).JSON(middleware.Response{
		Success: true,
		Data:    toExpenseResponse(resp.Expense),
	})
}

func (h *Handler) ListExpenses(c *fiber.Ctx) error {
	ctx := c.UserContext()

	query := service.ListExpensesQuery{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}

	resp, err := h.service.ListExpenses(ctx, query)
	if err != nil {
		return err
	}

	total := service.ToRupees(resp.TotalPaisa)

	return c.Status(fiber.StatusOK).JSON(middleware.Response{
		Success: true,
		Data:    toExpenseResponses(resp.Expenses),
		Total:   &total,
	})
}

func (h *Handler) DeleteExpense(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(middleware.Response{
			Success: false,
			Error:   constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
			Code:    constants.ErrCodeInvalidRequestBody,
		})
	}

	if err := h.service.DeleteExpense(ctx, service.DeleteExpenseCommand{ExpenseID: id}); err != nil {
		return err
	}

	expensesDeletedTotal.Inc()

	return c.Status(fiber.StatusOK).JSON(middleware.Response{
		Success: true,
		Message: "Expense deleted successfully",
	})
}
