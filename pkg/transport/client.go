package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/log"
)

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "folio/1.0"

// HTTPClient abstracts HTTP request execution for testing and custom transports.
// The standard *http.Client satisfies this interface.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token for the next request.
// An empty token means the request is sent unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

// Token calls f.
func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource {
	return TokenFunc(func(context.Context) (string, error) { return token, nil })
}

// Config holds the settings of a Client.
type Config struct {
	// BaseURL is the API origin, e.g. https://api.example.com. A trailing slash is trimmed.
	BaseURL string

	// Timeout bounds every request, including reading the response body.
	// Zero leaves the lifetime to the caller's context.
	Timeout time.Duration

	UserAgent string
}

// Client sends requests to the portfolio API.
type Client struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	http      HTTPClient
	tokens    TokenSource
	logger    log.Logger
}

// NewClient creates a Client. A nil httpClient uses http.DefaultClient, a nil
// tokens source sends every request unauthenticated and a nil logger discards output.
func NewClient(cfg Config, httpClient HTTPClient, tokens TokenSource, logger log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if tokens == nil {
		tokens = StaticToken("")
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   cfg.Timeout,
		userAgent: ua,
		http:      httpClient,
		tokens:    tokens,
		logger:    logger,
	}
}

// BaseURL returns the normalized API origin.
func (c *Client) BaseURL() string { return c.baseURL }

// Resource returns a view of c whose request paths are relative to basePath.
func (c *Client) Resource(basePath string) *Resource {
	return &Resource{client: c, basePath: "/" + strings.Trim(basePath, "/")}
}

// Do performs one request. path is relative to the base URL. body may be nil.
// When out is non-nil the JSON response is decoded into it; a {"data": ...}
// envelope is unwrapped first.
func (c *Client) Do(ctx context.Context, method, path string, body Body, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		r, ct, err := body.encode()
		if err != nil {
			return &Error{Kind: KindEncode, Method: method, Path: path, Message: "Could not encode request", Cause: err}
		}
		reader, contentType = r, ct
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindEncode, Method: method, Path: path, Message: "Could not build request", Cause: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// Read per request so a login or logout since the last call is honoured.
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.Warn("token unavailable, sending unauthenticated",
			log.String("path", path),
			log.Err(err))
		token = ""
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		kind, msg := KindNetwork, "Network Error"
		if ctxErr := ctx.Err(); ctxErr != nil {
			kind, msg = KindCanceled, "Request canceled"
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				msg = "Request timed out"
			}
		}
		c.logger.Debug("request failed",
			log.String("method", method),
			log.String("path", path),
			log.String("request_id", requestID),
			log.Duration("elapsed", time.Since(start)),
			log.Err(err))
		return &Error{Kind: kind, Method: method, Path: path, Message: msg, Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Status: resp.StatusCode, Method: method, Path: path, Message: "Network Error", Cause: err}
	}

	c.logger.Debug("request",
		log.String("method", method),
		log.String("path", path),
		log.Int("status", resp.StatusCode),
		log.String("request_id", requestID),
		log.Duration("elapsed", time.Since(start)))

	if resp.StatusCode/100 != 2 {
		return statusError(method, path, resp.StatusCode, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := decode(respBody, out); err != nil {
		return &Error{Kind: KindDecode, Status: resp.StatusCode, Method: method, Path: path, Message: "Unexpected response from server", Body: respBody, Cause: err}
	}
	return nil
}

// decode unmarshals body into out, unwrapping a top-level "data" member when present.
func decode(body []byte, out interface{}) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		if data, ok := envelope["data"]; ok {
			return json.Unmarshal(data, out)
		}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Resource is a Client scoped to one API base path such as /api/skills.
type Resource struct {
	client   *Client
	basePath string
}

// Path returns the resource base path joined with sub.
func (r *Resource) Path(sub string) string {
	sub = strings.Trim(sub, "/")
	if sub == "" {
		return r.basePath
	}
	return r.basePath + "/" + sub
}

// Get issues a GET to sub, relative to the base path.
func (r *Resource) Get(ctx context.Context, sub string, out interface{}) error {
	return r.client.Do(ctx, http.MethodGet, r.Path(sub), nil, out)
}

// Post issues a POST to sub.
func (r *Resource) Post(ctx context.Context, sub string, body Body, out interface{}) error {
	return r.client.Do(ctx, http.MethodPost, r.Path(sub), body, out)
}

// Put issues a PUT to sub.
func (r *Resource) Put(ctx context.Context, sub string, body Body, out interface{}) error {
	return r.client.Do(ctx, http.MethodPut, r.Path(sub), body, out)
}

// Patch issues a PATCH to sub.
func (r *Resource) Patch(ctx context.Context, sub string, body Body, out interface{}) error {
	return r.client.Do(ctx, http.MethodPatch, r.Path(sub), body, out)
}

// Delete issues a DELETE to sub.
func (r *Resource) Delete(ctx context.Context, sub string, out interface{}) error {
	return r.client.Do(ctx, http.MethodDelete, r.Path(sub), nil, out)
}
