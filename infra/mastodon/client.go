package mastodon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CrestNiraj12/tootview/domain"
	"github.com/CrestNiraj12/tootview/infra/auth"
)

// maxErrorBody caps how much of a failed response is kept on a ServiceError.
const maxErrorBody = 4 << 10

// Client is a thin HTTP wrapper for the Mastodon API.
// Bearer token injection lives in the transport, not in the operations.
// A Client holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	transport http.RoundTripper
	logger    *slog.Logger
	metrics   *Metrics
}

// WithTransport sets the underlying transport. Defaults to http.DefaultTransport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) { o.transport = rt }
}

// WithLogger sets the request logger. Logging is discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// WithMetrics instruments every request with m.
func WithMetrics(m *Metrics) Option {
	return func(o *clientOptions) { o.metrics = m }
}

// NewClient creates a Mastodon API client for the instance at baseURL.
func NewClient(baseURL string, token auth.StaticToken, opts ...Option) *Client {
	o := clientOptions{transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	rt := o.transport
	if o.metrics != nil {
		rt = o.metrics.InstrumentRoundTripper(rt)
	}
	rt = auth.NewBearerTransport(token, rt)

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Transport: rt},
		logger:  o.logger,
	}
}

// call executes the endpoint registered for op and decodes a 2xx body into out.
func (c *Client) call(ctx context.Context, op string, params map[string]string, query url.Values, out any) error {
	ep, ok := endpoints[op]
	if !ok {
		return fmt.Errorf("unknown operation %q", op)
	}

	path, err := ep.expand(params)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	target := c.baseURL + path
	if q := ep.query(query); len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, target, nil)
	if err != nil {
		return fmt.Errorf("%s: creating request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "op", op, "method", ep.method, "path", path, "err", err)
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("reading response failed", "op", op, "status", resp.StatusCode, "err", err)
		return &domain.TransportError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
	}

	c.logger.Debug("request",
		"op", op,
		"method", ep.method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := newServiceError(op, resp.StatusCode, data)
		c.logger.Warn("service error", "op", op, "status", se.StatusCode, "message", se.Message)
		return se
	}

	if err := decode(data, out); err != nil {
		c.logger.Warn("schema mismatch", "op", op, "err", err)
		return &domain.SchemaError{Op: op, Err: err}
	}
	return nil
}

func newServiceError(op string, code int, body []byte) *domain.ServiceError {
	se := &domain.ServiceError{Op: op, StatusCode: code}

	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		se.Message = payload.Error
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	se.Body = strings.TrimSpace(string(body))
	return se
}

var errNullBody = errors.New("null response body")

func decode(data []byte, out any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNullBody
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	switch v := out.(type) {
	case *domain.Status:
		return normalizeStatus(v)
	case *[]domain.Status:
		for i := range *v {
			if err := normalizeStatus(&(*v)[i]); err != nil {
				return fmt.Errorf("status %d: %w", i, err)
			}
		}
	}
	return nil
}

// normalizeStatus enforces the fields every status must carry and keeps the
// reblog relationship one level deep.
func normalizeStatus(st *domain.Status) error {
	if st.ID == "" {
		return errors.New("status without id")
	}
	if st.Reblog != nil {
		if st.Reblog.ID == "" {
			return errors.New("reblog without id")
		}
		st.Reblog.Reblog = nil
	}
	return nil
}
