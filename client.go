package tradebook

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Client is a client for the ledger backend REST API.
//
// A Client is safe for concurrent use.
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

// NewClient returns a client for the backend at baseURL (e.g.
// "http://localhost:5001"). A nil hc uses a default http.Client.
func NewClient(baseURL string, hc *http.Client) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend url %q: scheme must be http or https", baseURL)
	}
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{base: base, http: hc, log: zap.NewNop()}, nil
}

// WithLogger sets the logger used for request diagnostics and returns c.
func (c *Client) WithLogger(log *zap.Logger) *Client {
	if log != nil {
		c.log = log
	}
	return c
}

// ListTransactions returns all transactions in the order sent by the backend.
func (c *Client) ListTransactions(ctx context.Context) ([]Transaction, error) {
	var txs []Transaction
	if err := c.jdo(ctx, http.MethodGet, "/api/transactions", nil, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// CreateTransaction records a new transaction and returns it as created by
// the backend. Any 2xx status is a success, the returned Transaction is
// zero if the backend sent no body.
func (c *Client) CreateTransaction(ctx context.Context, tx NewTransaction) (Transaction, error) {
	var created Transaction
	if err := c.jdo(ctx, http.MethodPost, "/api/transactions", nil, tx, &created); err != nil {
		return Transaction{}, err
	}
	return created, nil
}

// DeleteTransaction deletes the transaction with the given id.
func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	return c.jdo(ctx, http.MethodDelete, "/api/transactions/"+strconv.Itoa(id), nil, nil, nil)
}

// DeleteAllTransactions deletes every transaction. The backend reports the
// outcome in the Result.
func (c *Client) DeleteAllTransactions(ctx context.Context) (Result, error) {
	return c.jresult(ctx, http.MethodDelete, "/api/transactions/delete-all", nil)
}

// Statistics returns the backend statistics with revenues bucketed by period.
func (c *Client) Statistics(ctx context.Context, period Period) (Statistics, error) {
	var stats Statistics
	query := url.Values{"period": {period.String()}}
	if err := c.jdo(ctx, http.MethodGet, "/api/statistics", query, nil, &stats); err != nil {
		return Statistics{}, err
	}
	return stats, nil
}

// Import sends a batch of parsed records in a single request. The backend
// reports the aggregate outcome in the Result.
func (c *Client) Import(ctx context.Context, records []ImportRecord) (Result, error) {
	body := struct {
		Transactions []ImportRecord `json:"transactions"`
	}{records}
	return c.jresult(ctx, http.MethodPost, "/api/import-data", body)
}
