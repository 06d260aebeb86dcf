package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/PIAAR/PlayerXSpotty/internal/errors"
)

// DefaultBaseURL is the Spotify Web API base URL.
const DefaultBaseURL = "https://api.spotify.com/v1"

// DefaultTimeout bounds each outbound request. The backend defines no
// timeout of its own; a hung request surfaces as apperrors.ErrTimeout.
const DefaultTimeout = 30 * time.Second

// Client is a Spotify Web API client authenticated with a static bearer
// token. Every call is a single request/response: no retries, no backoff,
// no token refresh.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	verbose    bool
	logFunc    func(format string, args ...interface{})
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a new client. The token must be non-empty; it is attached to
// every request as an Authorization bearer header.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty access token", apperrors.ErrNotAuthenticated)
	}

	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetVerbose enables verbose logging of outbound requests.
func (c *Client) SetVerbose(verbose bool, logFunc func(format string, args ...interface{})) {
	c.verbose = verbose
	c.logFunc = logFunc
}

func (c *Client) log(format string, args ...interface{}) {
	if c.verbose && c.logFunc != nil {
		c.logFunc(format, args...)
	}
}

// Get performs a GET request against the API.
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	return c.request(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST request against the API.
func (c *Client) Post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.request(ctx, http.MethodPost, path, body, result)
}

// Put performs a PUT request against the API.
func (c *Client) Put(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.request(ctx, http.MethodPut, path, body, result)
}

// request issues exactly one outbound HTTP call. A 2xx response is success;
// anything else is returned as *APIError with the backend payload verbatim.
func (c *Client) request(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = strings.NewReader(string(jsonBody))
	}

	fullURL := c.baseURL + path

	if jsonBody != nil {
		c.log("[spotify] %s %s\n  body: %s", method, fullURL, string(jsonBody))
	} else {
		c.log("[spotify] %s %s", method, fullURL)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrTimeout, err)
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log("[spotify] response: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log("[spotify] response body: %s", string(respBody))
		return newAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 && resp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// isTimeout reports whether a transport error was a timeout, including a
// context deadline expiring mid-request.
func isTimeout(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// APIError is a non-2xx response from the backend. Payload holds the
// response body verbatim; Message is the parsed error.message when the
// payload follows the documented error envelope.
type APIError struct {
	Status  int
	Payload []byte
	Message string
}

func newAPIError(status int, payload []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		Payload: append([]byte(nil), payload...),
	}

	var envelope struct {
		Error struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil {
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("spotify api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("spotify api error %d: %s", e.Status, string(e.Payload))
}

// IsNoActiveDevice returns true if the error indicates the target device was
// not found or no device is active.
func (e *APIError) IsNoActiveDevice() bool {
	return e.Status == http.StatusNotFound
}

// IsNoActiveDeviceError checks if an error is a "no active device" error.
func IsNoActiveDeviceError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.IsNoActiveDevice()
	}
	return false
}

// IsRestrictionError checks if an error is a 403 "restriction violated"
// error, which the backend returns for non-premium accounts and for resume
// commands against playback that is already active.
func IsRestrictionError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Status == http.StatusForbidden
	}
	return false
}

// IsRateLimitedError checks if an error is a 429 rate limit response.
func IsRateLimitedError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Status == http.StatusTooManyRequests
	}
	return false
}

// BuildURL builds a URL path with query parameters.
func BuildURL(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}

	u, _ := url.Parse(path)
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
