package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/seatrans/pda-api/internal/resilience"
)

// Upload identifies one archived quote document on the document service.
type Upload struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Client pushes rendered quote documents to the document archive service.
// Calls ride a retrying HTTP client with a circuit breaker; traffic is
// traced through the otelhttp transport.
type Client struct {
	base string
	http resilience.HTTPClient
}

// Config carries the document service connection settings.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	BaseBackoff time.Duration
	Breaker     *resilience.Breaker
}

// NewClient constructs a document service client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	backoff := cfg.BaseBackoff
	if backoff <= 0 {
		backoff = 200 * time.Millisecond
	}
	return &Client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		http: resilience.HTTPClient{
			Client:      &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
			Breaker:     cfg.Breaker,
			BaseBackoff: backoff,
			MaxAttempts: attempts,
			Jitter:      0.2,
			Timeout:     timeout,
		},
	}
}

// Store uploads the rendered HTML for an inquiry and returns the archive
// reference. docType distinguishes quotes from final invoices.
func (c *Client) Store(ctx context.Context, inquiryID, docType, fileName, html string) (Upload, error) {
	if c.base == "" {
		return Upload{}, fmt.Errorf("document: service url not configured")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("inquiry_id", inquiryID); err != nil {
		return Upload{}, fmt.Errorf("document: build form: %w", err)
	}
	if err := mw.WriteField("doc_type", docType); err != nil {
		return Upload{}, fmt.Errorf("document: build form: %w", err)
	}
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return Upload{}, fmt.Errorf("document: build form: %w", err)
	}
	if _, err := io.WriteString(part, html); err != nil {
		return Upload{}, fmt.Errorf("document: build form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Upload{}, fmt.Errorf("document: build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/documents", bytes.NewReader(buf.Bytes()))
	if err != nil {
		return Upload{}, fmt.Errorf("document: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return Upload{}, fmt.Errorf("document: upload: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Upload{}, fmt.Errorf("document: upload rejected: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var out Upload
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Upload{}, fmt.Errorf("document: decode response: %w", err)
	}
	return out, nil
}
