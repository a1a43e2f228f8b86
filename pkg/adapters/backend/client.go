package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aescanero/chequemgmt-frontend/pkg/domain"
	"go.uber.org/zap"
)

// Backend operations, used as metric labels and in errors
const (
	OpList   = "list"
	OpAdd    = "add"
	OpRemove = "remove"
	OpPing   = "ping"
)

// Call outcomes reported to the metrics recorder
const (
	OutcomeOK             = "ok"
	OutcomeStatusError    = "status_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
)

const maxErrorBody = 1024

// Metrics receives backend call observations
type Metrics interface {
	ObserveBackendCall(operation, outcome string, duration time.Duration)
}

// StatusError is returned when the backend answers with a non-200 status
type StatusError struct {
	Op         string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s: unexpected status %d: %s", e.Op, e.URL, e.StatusCode, e.Body)
}

// Config holds backend client configuration
type Config struct {
	BaseURL string
	// Zero means no timeout
	Timeout    time.Duration
	HTTPClient *http.Client
	Metrics    Metrics
	Logger     *zap.Logger
}

// Client talks to the cheque backend over HTTP
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	metrics    Metrics
	logger     *zap.Logger
}

// NewClient creates a new backend client
func NewClient(cfg *Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("backend base URL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL: %w", err)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("invalid backend base URL %q: query and fragment are not allowed", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: httpClient,
		metrics:    cfg.Metrics,
		logger:     logger,
	}, nil
}

// BaseURL returns the normalised backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the full URL for a backend path such as "/list"
func (c *Client) Endpoint(path string) string {
	return c.baseURL + path
}

// List fetches every cheque record from the backend
func (c *Client) List(ctx context.Context) ([]domain.Cheque, error) {
	endpoint := c.Endpoint("/list")

	var cheques []domain.Cheque
	err := c.do(ctx, OpList, http.MethodGet, endpoint, nil, "", func(body io.Reader) error {
		if err := json.NewDecoder(body).Decode(&cheques); err != nil {
			return fmt.Errorf("failed to decode cheque list from %s: %w", endpoint, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cheques == nil {
		cheques = []domain.Cheque{}
	}
	return cheques, nil
}

// Add asks the backend to store a cheque record. Values travel as query parameters.
func (c *Client) Add(ctx context.Context, chequeNo string, approvalGranted bool) error {
	params := url.Values{}
	params.Set("chequeNo", chequeNo)
	params.Set("approvalGranted", strconv.FormatBool(approvalGranted))

	endpoint := c.Endpoint("/add") + "?" + params.Encode()
	return c.do(ctx, OpAdd, http.MethodPost, endpoint, nil, "", nil)
}

// Remove asks the backend to delete a cheque record. The cheque number is sent form-encoded.
func (c *Client) Remove(ctx context.Context, chequeNo string) error {
	form := url.Values{}
	form.Set("chequeNo", chequeNo)

	return c.do(ctx, OpRemove, http.MethodPost, c.Endpoint("/remove"),
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", nil)
}

// Ping checks that the backend answers its list endpoint with 200
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, OpPing, http.MethodGet, c.Endpoint("/list"), nil, "", nil)
}

// do performs a single backend call. decode, when set, consumes a 200 body.
func (c *Client) do(
	ctx context.Context,
	op, method, endpoint string,
	body io.Reader,
	contentType string,
	decode func(io.Reader) error,
) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	outcome := OutcomeOK
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveBackendCall(op, outcome, time.Since(start))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		outcome = OutcomeTransportError
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = OutcomeTransportError
		return fmt.Errorf("backend %s %s: %w", op, endpoint, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend response",
		zap.String("operation", op),
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		outcome = OutcomeStatusError
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Op:         op,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if decode != nil {
		if err := decode(resp.Body); err != nil {
			outcome = OutcomeDecodeError
			return err
		}
		return nil
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
