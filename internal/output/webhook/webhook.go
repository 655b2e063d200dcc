// Package webhook delivers classification records to the caller's grid or
// persistence service over HTTP. Records are batched and POSTed as a JSON
// array; the engine itself never persists anything.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/oakmere/drainsight/internal/model"
	"github.com/oakmere/drainsight/internal/output"
)

const (
	defaultBatchSize = 25
	defaultTimeout   = 10 * time.Second
	maxRetries       = 3
)

// Option configures a webhook Output.
type Option func(*Output)

// WithHeaders sets custom HTTP headers sent with every POST.
func WithHeaders(h map[string]string) Option {
	return func(o *Output) { o.headers = h }
}

// WithBatchSize sets the number of records accumulated before a flush.
// Default: 25.
func WithBatchSize(n int) Option {
	return func(o *Output) { o.batchSize = n }
}

// WithTimeout sets the HTTP client timeout. Default: 10s.
func WithTimeout(d time.Duration) Option {
	return func(o *Output) { o.client.Timeout = d }
}

// Output POSTs batched classification records to an HTTP endpoint.
// Retries on 5xx with exponential backoff. Close flushes the final
// partial batch, so a survey run always delivers every record.
type Output struct {
	client    *http.Client
	url       string
	headers   map[string]string
	batchSize int
	verbosity output.Verbosity

	mu      sync.Mutex
	pending []model.SectionClassification
}

// New creates a webhook output targeting the given URL.
func New(url string, verbosity output.Verbosity, opts ...Option) *Output {
	o := &Output{
		client:    &http.Client{Timeout: defaultTimeout},
		url:       url,
		batchSize: defaultBatchSize,
		verbosity: verbosity,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Write appends a record to the batch, flushing when the batch is full.
func (o *Output) Write(ctx context.Context, rec model.SectionClassification) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = append(o.pending, output.FormatClassification(rec, o.verbosity))
	if len(o.pending) >= o.batchSize {
		return o.flushLocked(ctx)
	}
	return nil
}

// Close flushes any remaining records.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.pending) == 0 {
		return nil
	}
	return o.flushLocked(context.Background())
}

func (o *Output) flushLocked(ctx context.Context) error {
	batch := o.pending
	o.pending = nil

	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("webhook output: marshal batch: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(1<<attempt) * 250 * time.Millisecond):
			}
		}
		lastErr = o.post(ctx, body)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			break
		}
	}
	return fmt.Errorf("webhook output: %w", lastErr)
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

func retryable(err error) bool {
	se, ok := err.(*statusError)
	return !ok || se.code >= 500
}

func (o *Output) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{code: resp.StatusCode}
	}
	return nil
}
