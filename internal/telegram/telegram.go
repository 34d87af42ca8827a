// Package telegram declares the Bot API wire objects and talks to the Bot
// API over HTTP.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultAPIURL = "https://api.telegram.org"

// Client calls Bot API methods. It is safe for concurrent use.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

// WithAPIURL points the client at a Bot API server other than the public
// one, e.g. a local bot API server or a test server.
func WithAPIURL(apiURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(apiURL, "/") + "/bot" + c.token + "/"
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient returns a client for the bot identified by token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		baseURL:    DefaultAPIURL + "/bot" + token + "/",
		httpClient: &http.Client{Timeout: 75 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	OK          bool                `json:"ok"`
	Result      json.RawMessage     `json:"result,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Description string              `json:"description,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// APIError is an unsuccessful Bot API response.
type APIError struct {
	Method      string
	Code        int
	Description string
	Parameters  *ResponseParameters
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: %s: %d %s", e.Method, e.Code, e.Description)
}

// RetryAfter returns how long the server asked us to wait, or zero.
func (e *APIError) RetryAfter() time.Duration {
	if e.Parameters == nil || e.Parameters.RetryAfter == nil {
		return 0
	}
	return time.Duration(*e.Parameters.RetryAfter) * time.Second
}

// Call invokes method with params and returns the raw "result" value.
// Parameters whose value is nil (including typed nil pointers and slices)
// are left out of the request.
func (c *Client) Call(ctx context.Context, method string, params map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(cleanParams(params))
	if err != nil {
		return nil, fmt.Errorf("telegram: %s: marshal: %w", method, err)
	}
	c.logger.Debug("telegram API call", zap.String("method", method), zap.Int("bytes", len(body)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+method, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("telegram: %s: new request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram: %s: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("telegram: %s: read body: %w", method, err)
	}

	var r apiResponse
	if err := json.Unmarshal(data, &r); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("telegram: %s: unexpected status %d: %s", method, resp.StatusCode, truncate(string(data), 200))
		}
		return nil, fmt.Errorf("telegram: %s: unmarshal: %w", method, err)
	}
	if !r.OK {
		code := r.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		apiErr := &APIError{Method: method, Code: code, Description: r.Description, Parameters: r.Parameters}
		c.logger.Warn("telegram API error",
			zap.String("method", method),
			zap.Int("code", code),
			zap.String("description", r.Description),
		)
		return nil, apiErr
	}
	return r.Result, nil
}

// callInto calls method and decodes the result into a T with the schema
// decoder, so union results resolve to their concrete variant.
func callInto[T any](ctx context.Context, c *Client, method string, params map[string]any) (T, error) {
	var out T
	raw, err := c.Call(ctx, method, params)
	if err != nil {
		return out, err
	}
	if err := registry.Decode(raw, &out); err != nil {
		return out, fmt.Errorf("telegram: %s: decode result: %w", method, err)
	}
	return out, nil
}

func cleanParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		if isNil(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// DisplayName formats a user for logs and replies.
func DisplayName(user *User) string {
	if user == nil {
		return "Unknown"
	}
	if Deref(user.Username) != "" {
		return "@" + *user.Username
	}
	if first := Deref(user.FirstName); first != "" {
		if last := Deref(user.LastName); last != "" {
			return first + " " + last
		}
		return first
	}
	return "Unknown"
}

// ParseChatIDs splits a comma-separated list of chat ids or @usernames.
// Empty entries are skipped.
func ParseChatIDs(list string) ([]ChatID, error) {
	var ids []ChatID
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "@") {
			ids = append(ids, ChatIDUsername(part))
			continue
		}
		var id ChatID
		if err := id.UnmarshalJSON([]byte(part)); err != nil {
			return nil, fmt.Errorf("telegram: chat id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
