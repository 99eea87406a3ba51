package adminhttp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultRefreshPath = "/auth/admin-login/refresh"
	defaultLoginPath   = "/admin-login"

	maxResponseBytes = 32 << 20
)

var (
	ErrNotInitialized = errors.New("admin http client is not initialized")
	ErrRefreshFailed  = errors.New("token refresh failed")
)

// Client is the session-aware gateway to the admin API. Credentials travel in the
// cookie jar of the underlying *http.Client; a 401 triggers at most one refresh at a
// time and the original request is re-issued once after a successful refresh.
type Client struct {
	baseURL      string
	refreshURL   string
	loginPath    string
	httpClient   *http.Client
	refresher    *Refresher
	navigator    Navigator
	logger       *zap.Logger
	newRequestID func() string
}

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	// Navigator receives the login redirect when a refresh fails. Nil means there is
	// no interactive surface to send the user to.
	Navigator   Navigator
	LoginPath   string
	RefreshPath string
	Refresher   *Refresher
	Logger      *zap.Logger
}

type Request struct {
	Method string
	// Path is joined to the base URL unless it is already absolute.
	Path   string
	Header http.Header
	Body   []byte
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

type RequestError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Err != nil && e.StatusCode > 0:
		return fmt.Sprintf("%s: status=%d: %v", e.Op, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: status=%d", e.Op, e.StatusCode)
	default:
		return e.Op
	}
}

func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewClient(opts Options) (*Client, error) {
	trimmedBaseURL := strings.TrimSpace(opts.BaseURL)
	if trimmedBaseURL == "" {
		return nil, &RequestError{
			Op:  "create admin http client",
			Err: errors.New("admin api url is empty"),
		}
	}

	parsed, err := url.Parse(trimmedBaseURL)
	if err != nil {
		return nil, &RequestError{Op: "parse admin api url", Err: err}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &RequestError{
			Op:  "validate admin api url",
			Err: fmt.Errorf("invalid admin api url: %s", trimmedBaseURL),
		}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	refresher := opts.Refresher
	if refresher == nil {
		refresher = NewRefresher()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loginPath := strings.TrimSpace(opts.LoginPath)
	if loginPath == "" {
		loginPath = defaultLoginPath
	}
	refreshPath := strings.TrimSpace(opts.RefreshPath)
	if refreshPath == "" {
		refreshPath = defaultRefreshPath
	}

	baseURL := strings.TrimRight(trimmedBaseURL, "/")
	return &Client{
		baseURL:      baseURL,
		refreshURL:   joinURL(baseURL, refreshPath),
		loginPath:    loginPath,
		httpClient:   httpClient,
		refresher:    refresher,
		navigator:    opts.Navigator,
		logger:       logger,
		newRequestID: func() string { return uuid.NewString() },
	}, nil
}

func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

func (c *Client) Refresher() *Refresher {
	if c == nil {
		return nil
	}
	return c.refresher
}

// Do issues req and recovers from an expired session. Transport failures are
// returned as errors; every HTTP status, including a final 401, is returned as a
// Response for the caller to interpret.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if c == nil || c.httpClient == nil {
		return nil, &RequestError{Op: "do request", Err: ErrNotInitialized}
	}

	seen := c.refresher.Cycle()
	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	return c.recoverSession(ctx, req, resp, seen)
}

func (c *Client) recoverSession(ctx context.Context, req Request, unauthorized *Response, seen uint64) (*Response, error) {
	leader, ticket := c.refresher.AcquireOrWait(seen)
	if !leader {
		if err := ticket.Wait(ctx); err != nil {
			return nil, err
		}
		// Replayed once; a second 401 here is final.
		return c.send(ctx, req)
	}

	c.logger.Info("admin session expired, refreshing", zap.String("path", req.Path))

	// The refresh serves every queued caller, so one caller giving up must not abort it.
	if err := c.refresh(context.WithoutCancel(ctx)); err != nil {
		c.refresher.Release(fmt.Errorf("%w: %v", ErrRefreshFailed, err))
		c.logger.Warn("admin session refresh failed, redirecting to login",
			zap.Error(err),
			zap.String("login_path", c.loginPath),
		)
		c.redirectToLogin(ctx)
		return unauthorized, nil
	}

	retried, err := c.send(ctx, req)
	c.refresher.Release(nil)
	c.logger.Info("admin session refreshed")
	if err != nil {
		return nil, err
	}
	return retried, nil
}

// refresh always goes straight to the transport so it can never re-enter the 401 path.
func (c *Client) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.refreshURL, nil)
	if err != nil {
		return &RequestError{Op: "create refresh request", Err: err}
	}
	req.Header.Set("X-Request-Id", c.newRequestID())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Op: "execute refresh request", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Op: "refresh session", StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *Client) redirectToLogin(ctx context.Context) {
	if c.navigator == nil {
		return
	}
	c.navigator.Redirect(ctx, c.loginPath)
}

func (c *Client) send(ctx context.Context, req Request) (*Response, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if len(req.Body) > 0 {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.resolve(req.Path), bodyReader)
	if err != nil {
		return nil, &RequestError{Op: "create http request", Err: err}
	}
	requestID := c.newRequestID()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", requestID)
	for key, values := range req.Header {
		httpReq.Header.Del(key)
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &RequestError{Op: "execute http request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &RequestError{Op: "read http response", StatusCode: resp.StatusCode, Err: err}
	}

	c.logger.Debug("admin api request",
		zap.String("method", method),
		zap.String("path", httpReq.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

func (c *Client) resolve(path string) string {
	return joinURL(c.baseURL, path)
}

func joinURL(baseURL, path string) string {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return baseURL + ensureLeadingSlash(trimmed)
}

func ensureLeadingSlash(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "/"
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	return "/" + trimmed
}
