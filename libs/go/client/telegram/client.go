package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	httpClient "github.com/chokka/chokka-api/libs/go/client/http"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the Telegram Bot API host
	DefaultBaseURL = "https://api.telegram.org"
	defaultTimeout = 10 * time.Second

	ParseModeMarkdown = "Markdown"
)

// ErrNotConfigured is returned when no bot token is set
var ErrNotConfigured = errors.New("telegram bot token is not configured")

// SendMessageRequest is the body of a sendMessage call
type SendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

// apiResponse is the envelope every Bot API method answers with
type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// APIError is returned when Telegram answers with ok=false
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

// Client sends messages through a Telegram bot
type Client struct {
	token      string
	httpClient *httpClient.HTTPClient
}

// NewClient creates a bot client. baseURL may be empty for the public API.
func NewClient(token, baseURL string, opts ...httpClient.ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	clientOpts := []httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithTimeout(defaultTimeout),
		httpClient.WithMiddleware(httpClient.TracingMiddleware("telegram", token)),
		httpClient.WithRedactedSecret(token),
	}
	clientOpts = append(clientOpts, opts...)
	return &Client{
		token:      token,
		httpClient: httpClient.NewHTTPClient(clientOpts...),
	}
}

// SendMessage posts text to a single chat
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) error {
	if c.token == "" {
		return ErrNotConfigured
	}

	resp, err := c.httpClient.Post(ctx, "/bot"+c.token+"/sendMessage", req)
	if err != nil {
		var httpErr *httpClient.HTTPError
		if errors.As(err, &httpErr) {
			var body apiResponse
			if jsonErr := json.Unmarshal([]byte(httpErr.Body), &body); jsonErr == nil && body.Description != "" {
				return &APIError{Code: body.ErrorCode, Description: body.Description}
			}
			// the URL contains the token, keep it out of the error
			return &APIError{Code: httpErr.StatusCode, Description: httpErr.Status}
		}
		// the URL contains the token, keep only the underlying cause
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return errors.Wrapf(err, "telegram sendMessage to chat %s", req.ChatID)
	}

	var body apiResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &body); err != nil {
		return errors.Wrap(err, "failed to decode telegram response")
	}
	if !body.OK {
		return &APIError{Code: body.ErrorCode, Description: body.Description}
	}
	return nil
}
