package service

import (
	"context"
	"errors"
	"time"

	"github.com/VorteXproCR/Expense-Tracker/internal/constants"
	"github.com/VorteXproCR/Expense-Tracker/internal/model"
	"github.com/VorteXproCR/Expense-Tracker/internal/repository"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

const (
	SortDateAsc  = "date_asc"
	SortDateDesc = "date_desc"
)

// CategoryAll is the reserved filter sentinel meaning "no filtering".
const CategoryAll = "All"

type ExpenseService interface {
	CreateExpense(ctx context.Context, cmd CreateExpenseCommand) (CreateExpenseResponse, error)
	ListExpenses(ctx context.Context, query ListExpensesQuery) (ListExpensesResponse, error)
	DeleteExpense(ctx context.Context, cmd DeleteExpenseCommand) error
}

type expense struct {
	expenseRepo repository.ExpenseRepository
	eventRepo   repository.EventLogRepository
	txManager   repository.TxManager
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, eventRepo repository.EventLogRepository,
	txManager repository.TxManager, logger *zap.Logger) ExpenseService {
	return &expense{expenseRepo: expenseRepo, eventRepo: eventRepo, txManager: txManager, logger: logger}
}

// CreateExpense persists at most one record per idempotency key. A replay
// of an already-processed key returns the original record as a success;
// a duplicate-key collision with a concurrent request does the same. The
// pre-check alone is not safe under concurrency and the unique index
// alone would surface as a conflict error, so both layers are required.
func (e *expense) CreateExpense(ctx context.Context, cmd CreateExpenseCommand) (CreateExpenseResponse, error) {
	existing, err := e.expenseRepo.GetByIdempotencyKey(cmd.IdempotencyKey)
	if err == nil {
		e.logger.Info("Idempotent replay, returning existing expense",
			zap.Int64("expenseID", existing.ID),
			zap.String("idempotencyKey", cmd.IdempotencyKey))
		return CreateExpenseResponse{Expense: *existing, Replayed: true}, nil
	}

	if !errors.Is(err, repository.ErrExpenseNotFound) {
		e.logger.Error("Failed to look up idempotency key",
			zap.Error(err),
			zap.String("idempotencyKey", cmd.IdempotencyKey))
		return CreateExpenseResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	record, err := e.validate(cmd)
	if err != nil {
		return CreateExpenseResponse{}, err
	}

	event := model.EventLog{
		Type:      model.EventTypeExpenseCreated,
		Published: false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err = e.txManager.WithTx(ctx, func(ctx context.Context) error {
		err := e.expenseRepo.Create(ctx, record)
		if err != nil && errors.Is(err, repository.ErrExpenseDuplicate) {
			e.logger.Warn("Duplicate idempotency key lost insert race",
				zap.String("idempotencyKey", cmd.IdempotencyKey))
			return repository.ErrExpenseDuplicate
		}

		if err != nil {
			e.logger.Warn("Failed to create expense", zap.Error(err))
			return NewServiceError(ErrCodeDatabase, err)
		}

		event.ExpenseID = record.ID

		if err := e.eventRepo.Create(ctx, &event); err != nil {
			e.logger.Warn("Failed to create outbox event", zap.Error(err))
			return NewServiceError(ErrCodeDatabase, err)
		}

		return nil
	})

	if err == nil {
		e.logger.Info("Expense created",
			zap.Int64("expenseID", record.ID),
			zap.Int64("amountPaisa", record.AmountPaisa),
			zap.String("category", string(record.Category)),
			zap.String("idempotencyKey", cmd.IdempotencyKey))
		return CreateExpenseResponse{Expense: *record}, nil
	}

	// A concurrent request with the same key won the race. Recover its
	// record and answer exactly as the pre-check replay path would.
	if errors.Is(err, repository.ErrExpenseDuplicate) {
		winner, fetchErr := e.expenseRepo.GetByIdempotencyKey(cmd.IdempotencyKey)
		if fetchErr != nil {
			e.logger.Error("Failed to recover expense after duplicate-key race",
				zap.Error(fetchErr),
				zap.String("idempotencyKey", cmd.IdempotencyKey))
			return CreateExpenseResponse{}, NewServiceError(ErrCodeDatabase, fetchErr)
		}

		return CreateExpenseResponse{Expense: *winner, Replayed: true}, nil
	}

	e.logger.Error("Expense transaction failed",
		zap.String("idempotencyKey", cmd.IdempotencyKey),
		zap.Error(err))
	return CreateExpenseResponse{}, err
}

// validate checks business fields in a fixed order so the first failing
// field names the error, and builds the record to persist.
func (e *expense) validate(cmd CreateExpenseCommand) (*model.Expense, error) {
	if cmd.Amount == nil {
		return nil, NewServiceError(constants.ErrCodeAmountRequired, errors.New(constants.ErrMsgAmountRequired))
	}

	if cmd.Category == "" {
		return nil, NewServiceError(constants.ErrCodeCategoryRequired, errors.New(constants.ErrMsgCategoryRequired))
	}

	category := model.Category(cmd.Category)
	if !category.Valid() {
		return nil, NewServiceError(constants.ErrCodeCategoryInvalid, errors.New(constants.ErrMsgCategoryInvalid))
	}

	if cmd.Date == "" {
		return nil, NewServiceError(constants.ErrCodeDateRequired, errors.New(constants.ErrMsgDateRequired))
	}

	date, err := time.Parse(dateLayout, cmd.Date)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDateInvalid, errors.New(constants.ErrMsgDateInvalid))
	}

	paisa := ToPaisa(*cmd.Amount)
	if paisa < 0 {
		return nil, NewServiceError(constants.ErrCodeAmountInvalid, errors.New(constants.ErrMsgAmountInvalid))
	}

	if len(cmd.Description) > 500 {
		return nil, NewServiceError(constants.ErrCodeDescriptionTooLong, errors.New(constants.ErrMsgDescriptionTooLong))
	}

	return &model.Expense{
		IdempotencyKey: cmd.IdempotencyKey,
		AmountPaisa:    paisa,
		Category:       category,
		Description:    cmd.Description,
		Date:           date,
		CreatedAt:      time.Now(),
	}, nil
}

// ListExpenses returns the filtered records plus the paisa sum over
// exactly the same filtered set, never the unfiltered grand total.
func (e *expense) ListExpenses(ctx context.Context, query ListExpensesQuery) (ListExpensesResponse, error) {
	filter := repository.ListFilter{
		Ascending: query.Sort == SortDateAsc,
	}
	if query.Category != "" && query.Category != CategoryAll {
		filter.Category = model.Category(query.Category)
	}

	expenses, err := e.expenseRepo.List(filter)
	if err != nil {
		e.logger.Error("Failed to list expenses", zap.Error(err))
		return ListExpensesResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	total, err := e.expenseRepo.SumAmountPaisa(filter)
	if err != nil {
		e.logger.Error("Failed to sum expenses", zap.Error(err))
		return ListExpensesResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	return ListExpensesResponse{Expenses: expenses, TotalPaisa: total}, nil
}

func (e *expense) DeleteExpense(ctx context.Context, cmd DeleteExpenseCommand) error {
	event := model.EventLog{
		ExpenseID: cmd.ExpenseID,
		Type:      model.EventTypeExpenseDeleted,
		Published: false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := e.txManager.WithTx(ctx, func(ctx context.Context) error {
		err := e.expenseRepo.Delete(ctx, cmd.ExpenseID)
		if err != nil && errors.Is(err, repository.ErrExpenseNotFound) {
			return NewServiceError(constants.ErrCodeExpenseNotFound, err)
		}

		if err != nil {
			e.logger.Error("Failed to delete expense",
				zap.Int64("expenseID", cmd.ExpenseID),
				zap.Error(err))
			return NewServiceError(ErrCodeDatabase, err)
		}

		if err := e.eventRepo.Create(ctx, &event); err != nil {
			e.logger.Error("Failed to create outbox event for delete",
				zap.Int64("expenseID", cmd.ExpenseID),
				zap.Error(err))
			return NewServiceError(ErrCodeDatabase, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	e.logger.Info("Expense deleted", zap.Int64("expenseID", cmd.ExpenseID))
	return nil
}
