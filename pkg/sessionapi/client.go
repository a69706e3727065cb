package sessionapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/tendant/simple-notes/pkg/errors"
)

// DefaultPrefix is the path prefix the session endpoints are mounted under.
const DefaultPrefix = "/api/session"

// Client is the remote session API consumed by the credential screens.
// Both operations block until the call settles; any non-nil error is a failure.
type Client interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string) error
}

// ClientFuncs adapts a pair of functions to Client. A nil function succeeds.
type ClientFuncs struct {
	LoginFunc    func(ctx context.Context, email, password string) error
	RegisterFunc func(ctx context.Context, email, password string) error
}

func (f ClientFuncs) Login(ctx context.Context, email, password string) error {
	if f.LoginFunc == nil {
		return nil
	}
	return f.LoginFunc(ctx, email, password)
}

func (f ClientFuncs) Register(ctx context.Context, email, password string) error {
	if f.RegisterFunc == nil {
		return nil
	}
	return f.RegisterFunc(ctx, email, password)
}

// CredentialsRequest is the JSON body of both session calls.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse is the JSON body the session API returns on failure.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPClient implements Client over JSON/HTTP.
type HTTPClient struct {
	baseURL    string
	prefix     string
	httpClient *http.Client
}

// Option configures an HTTPClient
type Option func(*HTTPClient)

// WithHTTPClient sets the underlying *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithPrefix sets the path prefix of the session endpoints
func WithPrefix(prefix string) Option {
	return func(c *HTTPClient) {
		c.prefix = "/" + strings.Trim(prefix, "/")
		if c.prefix == "/" {
			c.prefix = ""
		}
	}
}

// NewHTTPClient creates a client for the session API at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		prefix:     DefaultPrefix,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login implements Client
func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	return c.post(ctx, "/login", CredentialsRequest{Email: email, Password: password})
}

// Register implements Client
func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	return c.post(ctx, "/register", CredentialsRequest{Email: email, Password: password})
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return apperrors.InternalWrap(err, "failed to encode request")
	}

	url := c.baseURL + c.prefix + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return apperrors.InternalWrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("Session API request failed", "url", url, "error", err)
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "session API unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// Tokens in the body are not kept.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var errBody ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&errBody); err != nil {
		slog.Debug("Session API error body not JSON", "status", resp.StatusCode, "error", err)
	}

	code := apperrors.ErrorCode(errBody.Code)
	if code == "" {
		code = apperrors.MapHTTPStatusToErrorCode(resp.StatusCode)
	}
	message := errBody.Error
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	slog.Debug("Session API rejected request", "url", url, "status", resp.StatusCode, "code", code)
	return apperrors.New(code, message).WithDetail("status", resp.StatusCode)
}
