package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/VorteXproCR/Expense-Tracker/pkg/httpclient"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const idempotencyKeyHeader = "X-Idempotency-Key"

type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// Expense is the wire shape the API answers with. Amount is integer paisa.
type Expense struct {
	ID             int64  `json:"id"`
	IdempotencyKey string `json:"idempotencyKey"`
	Amount         int64  `json:"amount"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	CreatedAt      string `json:"createdAt"`
}

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
}

type CreateExpenseResult struct {
	Expense  Expense
	Replayed bool
}

type envelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data,omitempty"`
	Total    *float64        `json:"total,omitempty"`
	Message  string          `json:"message,omitempty"`
	ErrorMsg string          `json:"error,omitempty"`
	Code     string          `json:"code,omitempty"`
}

// APIError carries the machine-readable code from a rejected request.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

type Client struct {
	cfg    Config
	http   httpclient.HTTPClient
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 500 * time.Millisecond
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{cfg: cfg, http: httpclient.NewHTTPClient(cfg.Timeout), logger: logger}
}

// withRetry runs one attempt function up to MaxRetries times with
// exponential backoff. Every failure is treated as retryable: transport
// errors and non-success responses alike. Safe for creates because the
// idempotency key makes replays harmless.
func (c *Client) withRetry(ctx context.Context, op string, attempt func() error) error {
	var lastErr error

	for i := 1; i <= c.cfg.MaxRetries; i++ {
		err := attempt()
		if err == nil {
			return nil
		}

		lastErr = err
		c.logger.Warn("Request attempt failed",
			zap.Error(err),
			zap.String("operation", op),
			zap.Int("attempt", i))

		if i < c.cfg.MaxRetries {
			delay := time.Duration(1<<(i-1)) * c.cfg.RetryBaseDelay

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	c.logger.Error("All retry attempts exhausted",
		zap.Error(lastErr),
		zap.String("operation", op),
		zap.Int("maxRetries", c.cfg.MaxRetries))

	return lastErr
}

func decodeEnvelope(resp *http.Response) (envelope, error) {
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		return envelope{}, &APIError{Status: resp.StatusCode, Code: env.Code, Message: env.ErrorMsg}
	}

	return env, nil
}

// CreateExpense submits one logical expense. It generates a single
// idempotency key up front and replays it on every retry attempt, so a
// response lost to a timeout cannot turn into a second record.
func (c *Client) CreateExpense(ctx context.Context, req CreateExpenseRequest) (CreateExpenseResult, error) {
	key := uuid.NewString()
	body, err := json.Marshal(req)
	if err != nil {
		return CreateExpenseResult{}, err
	}

	headers := map[string]string{
		"Content-Type":       "application/json",
		idempotencyKeyHeader: key,
	}

	var result CreateExpenseResult
	err = c.withRetry(ctx, "create expense", func() error {
		resp, err := c.http.Post(ctx, c.cfg.BaseURL+"/api/expenses", bytes.NewReader(body), headers)
		if err != nil {
			return err
		}

		status := resp.StatusCode
		env, err := decodeEnvelope(resp)
		if err != nil {
			return err
		}

		var expense Expense
		if err := json.Unmarshal(env.Data, &expense); err != nil {
			return fmt.Errorf("decode expense: %w", err)
		}

		result = CreateExpenseResult{Expense: expense, Replayed: status == http.StatusOK}
		return nil
	})
	if err != nil {
		return CreateExpenseResult{}, err
	}

	return result, nil
}

// ListExpenses returns the matching expenses plus the server-computed
// total in display units.
func (c *Client) ListExpenses(ctx context.Context, category, sort string) ([]Expense, float64, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if sort != "" {
		query.Set("sort", sort)
	}

	endpoint := c.cfg.BaseURL + "/api/expenses"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var expenses []Expense
	var total float64
	err := c.withRetry(ctx, "list expenses", func() error {
		resp, err := c.http.Get(ctx, endpoint, nil)
		if err != nil {
			return err
		}

		env, err := decodeEnvelope(resp)
		if err != nil {
			return err
		}

		if err := json.Unmarshal(env.Data, &expenses); err != nil {
			return fmt.Errorf("decode expenses: %w", err)
		}

		if env.Total != nil {
			total = *env.Total
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("%s/api/expenses/%d", c.cfg.BaseURL, id)

	return c.withRetry(ctx, "delete expense", func() error {
		resp, err := c.http.Delete(ctx, endpoint, nil)
		if err != nil {
			return err
		}

		_, err = decodeEnvelope(resp)
		return err
	})
}

func (c *Client) Health(ctx context.Context) error {
	return c.withRetry(ctx, "health check", func() error {
		resp, err := c.http.Get(ctx, c.cfg.BaseURL+"/api/health", nil)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("health check failed with status %d", resp.StatusCode)
		}

		return nil
	})
}
