package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "crm-dashboard/pkg/errors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const defaultTimeout = 20 * time.Second

// TokenSource достаёт bearer-токен текущей сессии из контекста запроса.
type TokenSource func(ctx context.Context) string

// UnauthorizedHook вызывается ровно один раз на каждый запрос, получивший 401.
type UnauthorizedHook func(ctx context.Context)

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Client - единственный преднастроенный клиент внешнего REST-бэкенда.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokenSource    TokenSource
	onUnauthorized UnauthorizedHook
	logger         *zap.Logger
}

func New(opts Options, tokenSource TokenSource, onUnauthorized UnauthorizedHook, logger *zap.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if tokenSource == nil {
		tokenSource = func(context.Context) string { return "" }
	}
	if onUnauthorized == nil {
		onUnauthorized = func(context.Context) {}
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(base),
		},
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		tokenSource:    tokenSource,
		onUnauthorized: onUnauthorized,
		logger:         logger.Named("backend"),
	}
}

// do выполняет запрос и возвращает тело успешного ответа.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokenSource(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	c.logger.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(started)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	backendErr := &apperrors.BackendError{
		StatusCode: resp.StatusCode,
		Message:    ExtractMessage(raw),
		Method:     method,
		Path:       path,
		Body:       raw,
	}
	if backendErr.IsUnauthorized() {
		c.logger.Warn("backend returned 401, ending session", zap.String("path", path))
		c.onUnauthorized(ctx)
	}
	return nil, backendErr
}

// ExtractMessage: data.message, затем data.error; пустая строка, если ни того ни другого нет.
func ExtractMessage(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &body) != nil {
		return ""
	}
	for _, field := range []json.RawMessage{body.Message, body.Error} {
		var s string
		if json.Unmarshal(field, &s) == nil && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func decode[T any](raw []byte, method, path string) (T, error) {
	var out T
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode response %s %s: %w", method, path, err)
	}
	return out, nil
}

func encodeBody(body interface{}) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(raw), nil
}

func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](raw, http.MethodGet, path)
}

func Post[T any](ctx context.Context, c *Client, path string, body interface{}) (T, error) {
	return send[T](ctx, c, http.MethodPost, path, body)
}

func Put[T any](ctx context.Context, c *Client, path string, body interface{}) (T, error) {
	return send[T](ctx, c, http.MethodPut, path, body)
}

func Delete(ctx context.Context, c *Client, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return err
}

func send[T any](ctx context.Context, c *Client, method, path string, body interface{}) (T, error) {
	var zero T
	reader, err := encodeBody(body)
	if err != nil {
		return zero, err
	}
	raw, err := c.do(ctx, method, path, nil, reader, "application/json")
	if err != nil {
		return zero, err
	}
	return decode[T](raw, method, path)
}
