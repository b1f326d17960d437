package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"AdminDashboard/internal/cli/auth"

	"go.uber.org/zap"
)

// Client: HTTP-клиент админ-API с базовым адресом и JSON-заголовками по умолчанию.
type Client struct {
	baseURL string
	hc      *http.Client
	logger  *zap.SugaredLogger
}

type options struct {
	hc      *http.Client
	timeout time.Duration
	logger  *zap.SugaredLogger
	headers http.Header
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient uses hc as the underlying client; its Transport is wrapped, not replaced.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.hc = hc }
}

// WithTimeout sets the overall request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the request logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithHeader adds a default header sent with every request.
func WithHeader(key, value string) Option {
	return func(o *options) { o.headers.Set(key, value) }
}

// New builds a client for baseURL. It performs no I/O and never fails; an invalid
// base URL surfaces as an error from the first request.
func New(baseURL string, src auth.Source, opts ...Option) *Client {
	o := options{
		headers: http.Header{
			"Content-Type": []string{"application/json"},
			"Accept":       []string{"application/json"},
		},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop().Sugar()
	}

	hc := &http.Client{}
	if o.hc != nil {
		c := *o.hc
		hc = &c
	}
	if o.timeout > 0 {
		hc.Timeout = o.timeout
	}
	baseURL = strings.TrimRight(baseURL, "/")
	hc.Transport = &Transport{
		Base:    hc.Transport,
		Source:  src,
		Headers: o.headers,
		Host:    baseHost(baseURL),
		Logger:  o.logger,
	}

	return &Client{
		baseURL: baseURL,
		hc:      hc,
		logger:  o.logger,
	}
}

// baseHost returns host[:port] of the base URL; the token is sent only there.
// An unparsable base yields a host no request can match.
func baseHost(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return "invalid.base"
	}
	return u.Host
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string { return c.baseURL }

// HTTPClient exposes the configured http.Client, for callers building requests themselves.
func (c *Client) HTTPClient() *http.Client { return c.hc }

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// Err returns a *StatusError for non-2xx responses and nil otherwise.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	return &StatusError{StatusCode: r.StatusCode, Body: strings.TrimSpace(string(r.Body))}
}

// StatusError describes a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server status %d", e.StatusCode)
	}
	return fmt.Sprintf("server status %d: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err is a *StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Post sends payload as JSON with POST.
func (c *Client) Post(ctx context.Context, path string, payload any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, payload)
}

// Put sends payload as JSON with PUT.
func (c *Client) Put(ctx context.Context, path string, payload any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, payload)
}

// Patch sends payload as JSON with PATCH.
func (c *Client) Patch(ctx context.Context, path string, payload any) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, payload)
}

// Do sends a request relative to the base URL. A nil payload sends no body.
// Non-2xx statuses are not errors here; see Response.Err.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (*Response, error) {
	target, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	c.logger.Debugw("api response", "method", method, "path", path, "status", resp.StatusCode, "size", len(b))
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}, nil
}

// resolve joins path onto the base URL; absolute URLs are used as-is.
func (c *Client) resolve(path string) (string, error) {
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path, nil
	}
	if c.baseURL == "" {
		return "", errors.New("api: empty base URL")
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("api: invalid base URL: %w", err)
	}
	if !base.IsAbs() {
		return "", fmt.Errorf("api: base URL %q has no scheme", c.baseURL)
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/"), nil
}
