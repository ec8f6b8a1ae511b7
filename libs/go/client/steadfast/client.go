package steadfast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	httpClient "github.com/chokka/chokka-api/libs/go/client/http"
	"github.com/chokka/chokka-api/libs/go/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Steadfast (Packzy) merchant API
	DefaultBaseURL = "https://portal.packzy.com/api/v1"
	defaultTimeout = 20 * time.Second

	// BulkOrderNote is attached to every parcel created in bulk
	BulkOrderNote = "Handle with care"
	// DefaultNote is used when a single consignment has no note
	DefaultNote = "None"
)

// ErrNotConfigured is returned when API credentials are missing
var ErrNotConfigured = errors.New("steadfast api credentials are not configured")

// APIError represents a rejection by the Steadfast API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Steadfast Rejected: %s (status %d)", e.Message, e.StatusCode)
}

// Client talks to the Steadfast courier API
type Client struct {
	apiKey     string
	secretKey  string
	httpClient *httpClient.HTTPClient
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	baseURL string
	extra   []httpClient.ClientOption
}

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithHTTPOptions passes options through to the underlying HTTP client
func WithHTTPOptions(opts ...httpClient.ClientOption) Option {
	return func(o *clientOptions) {
		o.extra = append(o.extra, opts...)
	}
}

// NewClient creates a new Steadfast API client
func NewClient(apiKey, secretKey string, opts ...Option) *Client {
	o := &clientOptions{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(o)
	}

	clientOpts := []httpClient.ClientOption{
		httpClient.WithBaseURL(o.baseURL),
		httpClient.WithTimeout(defaultTimeout),
		httpClient.WithDefaultHeader("Api-Key", apiKey),
		httpClient.WithDefaultHeader("Secret-Key", secretKey),
		httpClient.WithMiddleware(httpClient.TracingMiddleware("steadfast")),
	}
	clientOpts = append(clientOpts, o.extra...)

	return &Client{
		apiKey:     apiKey,
		secretKey:  secretKey,
		httpClient: httpClient.NewHTTPClient(clientOpts...),
	}
}

func (c *Client) configured() bool {
	return c.apiKey != "" && c.secretKey != ""
}

// CreateOrder creates a single consignment
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}
	if req.Note == "" {
		req.Note = DefaultNote
	}

	body, err := c.do(ctx, http.MethodPost, "/create_order", req)
	if err != nil {
		return nil, errors.Wrap(err, "steadfast create order")
	}

	var out CreateOrderResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode steadfast create order response")
	}

	logger.Info("Steadfast consignment created",
		zap.String("invoice", req.Invoice),
		zap.Int("status", out.Status),
		zap.Bool("has_consignment", out.Consignment != nil))

	return &out, nil
}

type bulkOrderPayload struct {
	Data string `json:"data"`
}

// CreateBulkOrders submits several consignments at once. The API expects the
// array JSON-encoded inside a string field named data.
func (c *Client) CreateBulkOrders(ctx context.Context, items []CreateOrderRequest) (*BulkOrderResponse, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}
	if len(items) == 0 {
		return nil, errors.New("no orders to submit")
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode bulk order items")
	}

	body, err := c.do(ctx, http.MethodPost, "/create_order/bulk-order", bulkOrderPayload{Data: string(encoded)})
	if err != nil {
		return nil, errors.Wrap(err, "steadfast bulk order")
	}

	out, err := parseBulkResponse(body)
	if err != nil {
		return nil, err
	}

	logger.Info("Steadfast bulk order submitted",
		zap.Int("items", len(items)),
		zap.Int("status", out.Status),
		zap.Int("results", len(out.Results)),
		zap.Bool("accepted", out.Accepted))

	return out, nil
}

func parseBulkResponse(body []byte) (*BulkOrderResponse, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var results []BulkOrderResult
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return nil, errors.Wrap(err, "failed to decode steadfast bulk response")
		}
		return &BulkOrderResponse{Results: results, IsArray: true, Accepted: true}, nil
	}

	var out BulkOrderResponse
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode steadfast bulk response")
	}
	out.Accepted = out.Status == http.StatusOK
	return &out, nil
}

// GetStatusByTrackingCode fetches the delivery status of one consignment
func (c *Client) GetStatusByTrackingCode(ctx context.Context, trackingCode string) (*StatusResponse, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}
	if trackingCode == "" {
		return nil, errors.New("tracking code is required")
	}

	body, err := c.do(ctx, http.MethodGet, "/status_by_trackingcode/"+url.PathEscape(trackingCode), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "steadfast status for %s", trackingCode)
	}

	var out StatusResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode steadfast status response")
	}
	if out.Status != 0 && out.Status != http.StatusOK {
		return nil, &APIError{StatusCode: out.Status, Message: "status lookup failed"}
	}

	return &out, nil
}

// do performs the request and returns the raw body. HTTP errors carrying a
// JSON message are turned into APIError.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	resp, err := c.httpClient.DoRequest(ctx, method, path, payload)
	if err != nil {
		var httpErr *httpClient.HTTPError
		if errors.As(err, &httpErr) {
			return nil, &APIError{StatusCode: httpErr.StatusCode, Message: extractMessage([]byte(httpErr.Body), httpErr.Status)}
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read steadfast response")
	}
	return body, nil
}

func extractMessage(body []byte, fallback string) string {
	var parsed struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		if len(body) > 0 {
			return string(body)
		}
		return fallback
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	for field, msgs := range parsed.Errors {
		if len(msgs) > 0 {
			return field + ": " + msgs[0]
		}
	}
	return fallback
}
