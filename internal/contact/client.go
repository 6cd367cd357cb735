package contact

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultEndpoint is the form-handling service the site posts to.
const DefaultEndpoint = "https://formspree.io/f/mwpgvggg"

const tracerName = "hcdigital.dev/web/internal/contact"

// ErrRejected wraps any non-2xx answer from the endpoint.
var ErrRejected = errors.New("contact: endpoint rejected submission")

// Sender delivers one form submission.
type Sender interface {
	Send(ctx context.Context, f Fields) (int, error)
}

// Client posts form submissions to the external endpoint.
type Client struct {
	endpoint string
	http     *resty.Client
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithHTTPClient routes requests through hc, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = resty.NewWithClient(hc)
		}
	}
}

// WithTimeout bounds every call. Zero leaves the call bounded only by its context.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// NewClient builds a client for endpoint; an empty endpoint uses DefaultEndpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{endpoint: endpoint, http: resty.New()}
	for _, opt := range opts {
		opt(c)
	}
	c.http.SetRetryCount(0)
	return c
}

// Endpoint returns the URL submissions are sent to.
func (c *Client) Endpoint() string { return c.endpoint }

// Send issues a single form-encoded POST. It returns the HTTP status when one
// was received; any non-2xx status or transport failure is an error.
func (c *Client) Send(ctx context.Context, f Fields) (int, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "contact.send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			FieldName:    f.Name,
			FieldEmail:   f.Email,
			FieldMessage: f.Message,
		}).
		Post(c.endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return 0, fmt.Errorf("contact: post: %w", err)
	}
	code := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.response.status_code", code))
	if !resp.IsSuccess() {
		span.SetStatus(codes.Error, http.StatusText(code))
		return code, fmt.Errorf("%w: status %d: %s", ErrRejected, code, drainError(resp.Body()))
	}
	span.SetStatus(codes.Ok, "")
	return code, nil
}

func drainError(b []byte) string {
	if len(b) > 256 {
		b = b[:256]
	}
	return strings.TrimSpace(string(b))
}
