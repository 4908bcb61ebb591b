package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/atozflooring/po-extract/internal/config"
	"github.com/atozflooring/po-extract/internal/payload"
)

const defaultRequestTimeout = 60 * time.Second

// ExportError carries the remote response context for a failed RFMS call.
type ExportError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *ExportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: rfms returned %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// OrderAPI is the slice of the RFMS API the export flow needs.
type OrderAPI interface {
	CreateOrder(ctx context.Context, order *payload.Order) (id string, raw json.RawMessage, err error)
	CreateCustomer(ctx context.Context, customer *payload.Customer) (id string, err error)
	LinkOrders(ctx context.Context, ids []string) error
}

// Client talks to the RFMS v2 API. Authentication is HTTP basic with the
// store identifier and API key.
type Client struct {
	baseURL string
	storeID string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: cfg.RFMSBaseURL,
		storeID: cfg.RFMSStoreID,
		apiKey:  cfg.RFMSAPIKey,
		http:    &http.Client{Timeout: defaultRequestTimeout},
		logger:  logger,
	}
}

// CreateOrder posts the order and returns the RFMS order id.
func (c *Client) CreateOrder(ctx context.Context, order *payload.Order) (string, json.RawMessage, error) {
	raw, err := c.post(ctx, "create order", "/order", order)
	if err != nil {
		return "", nil, err
	}

	var resp struct {
		OrderID string `json:"orderId"`
		ID      string `json:"id"`
		Result  string `json:"result"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", raw, &ExportError{Op: "create order", Err: fmt.Errorf("decode response: %w", err)}
	}

	id := resp.OrderID
	if id == "" {
		id = resp.ID
	}
	if id == "" {
		id = resp.Result
	}
	if id == "" {
		return "", raw, &ExportError{Op: "create order", Body: string(raw), Err: fmt.Errorf("no order id in response")}
	}

	c.logger.Info("order created", "order_id", id, "po_number", order.PONumber)
	return id, raw, nil
}

// CreateCustomer posts a new job-site customer and returns its id.
func (c *Client) CreateCustomer(ctx context.Context, customer *payload.Customer) (string, error) {
	raw, err := c.post(ctx, "create customer", "/customer", customer)
	if err != nil {
		return "", err
	}

	var resp struct {
		CustomerID string `json:"customerId"`
		ID         string `json:"id"`
		Result     string `json:"result"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &ExportError{Op: "create customer", Err: fmt.Errorf("decode response: %w", err)}
	}

	id := resp.CustomerID
	if id == "" {
		id = resp.ID
	}
	if id == "" {
		id = resp.Result
	}

	c.logger.Info("customer created", "customer_id", id)
	return id, nil
}

// LinkOrders joins the billing-group orders so RFMS invoices them together.
func (c *Client) LinkOrders(ctx context.Context, ids []string) error {
	_, err := c.post(ctx, "link orders", "/order/link", map[string]any{
		"orderIds": ids,
	})
	if err != nil {
		return err
	}
	c.logger.Info("orders linked", "order_ids", ids)
	return nil
}

func (c *Client) post(ctx context.Context, op, path string, body any) (json.RawMessage, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, &ExportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, &ExportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.storeID, c.apiKey)

	c.logger.Debug("rfms request", "op", op, "url", c.baseURL+path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ExportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &ExportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ExportError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
