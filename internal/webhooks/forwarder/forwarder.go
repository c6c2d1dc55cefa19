package forwarder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"ltrack-server/internal/observability"

	"golang.org/x/sync/errgroup"
)

const (
	userAgent       = "L-TRACK-Webhook-Forwarder/1.0"
	signatureHeader = "X-Line-Signature"
	maxResponseBody = 10240
)

// Result is the outcome of one forward attempt
type Result struct {
	URL        string
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Forwarder relays raw LINE webhook bodies to downstream tools in the background
type Forwarder struct {
	urls       []string
	timeout    time.Duration
	httpClient *http.Client
	logger     *observability.Logger
	wg         sync.WaitGroup
}

func New(urls []string, timeout time.Duration, logger *observability.Logger) *Forwarder {
	return &Forwarder{
		urls:       urls,
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Enabled reports whether any forward URL is configured
func (f *Forwarder) Enabled() bool {
	return len(f.urls) > 0
}

// Forward posts body to every configured URL without blocking the caller.
// The request context's cancellation is ignored; use Wait to drain.
func (f *Forwarder) Forward(ctx context.Context, body []byte, signature string) {
	if !f.Enabled() {
		f.logger.Debug(ctx, "no webhook forward urls configured")
		return
	}

	ctx = context.WithoutCancel(ctx)
	payload := bytes.Clone(body)

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		f.ForwardSync(ctx, payload, signature)
	}()
}

// ForwardSync posts body to every configured URL in parallel and returns once all attempts finish
func (f *Forwarder) ForwardSync(ctx context.Context, body []byte, signature string) []Result {
	f.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "forward_count", Value: len(f.urls)},
	), "forwarding webhook")

	results := make([]Result, len(f.urls))
	var g errgroup.Group
	for i, target := range f.urls {
		g.Go(func() error {
			results[i] = f.send(ctx, target, body, signature)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		rctx := observability.WithFields(ctx,
			observability.Field{Key: "forward_url", Value: RedactURL(r.URL)},
			observability.Field{Key: "status_code", Value: r.StatusCode},
			observability.Field{Key: "duration_ms", Value: r.Duration.Milliseconds()},
		)
		if r.Err != nil {
			f.logger.InfoWithError(rctx, "webhook forward failed", r.Err)
			continue
		}
		f.logger.Info(rctx, "webhook forwarded")
	}
	return results
}

func (f *Forwarder) send(ctx context.Context, target string, body []byte, signature string) Result {
	result := Result{URL: target}
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		result.Err = fmt.Errorf("failed to create request: %w", err)
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if signature != "" {
		req.Header.Set(signatureHeader, signature)
	}

	resp, err := f.httpClient.Do(req)
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = fmt.Errorf("failed to send request: %w", err)
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))

	result.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.Err = fmt.Errorf("received non-2xx status code: %d", resp.StatusCode)
	}
	return result
}

// Wait blocks until every background forward has finished
func (f *Forwarder) Wait() {
	f.wg.Wait()
}

// RedactURL hides credentials embedded in a forward URL
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable url>"
	}
	if u.User != nil {
		u.User = url.User("redacted")
	}
	return u.String()
}
