// Package fetch retrieves remote documents over HTTP with per-call timeouts.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultUserAgent is sent with every outbound request
	DefaultUserAgent = "property-tax-analyzer/1.0"
	// MaxBodySize caps a response body at 20MB (valuation workbooks are large)
	MaxBodySize = 20 * 1024 * 1024
	// DialTimeout is the maximum time to wait for a TCP connection
	DialTimeout = 10 * time.Second
	// TLSHandshakeTimeout is the maximum time to wait for TLS handshake
	TLSHandshakeTimeout = 10 * time.Second
	// IdleConnTimeout is the maximum time an idle connection can be reused
	IdleConnTimeout = 90 * time.Second
)

// Fetcher is the document-retrieval capability consumed by the assessor and
// report packages. Implementations return the raw response body or a
// transport error (network failure, timeout, non-2xx status).
type Fetcher interface {
	Fetch(ctx context.Context, url string, timeout time.Duration) ([]byte, error)
}

// FetchError represents a failed document retrieval.
type FetchError struct {
	URL        string
	StatusCode int // 0 when the request never produced a response
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client implements Fetcher with a stdlib http.Client.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient returns a Client with connection-level timeouts configured.
// The per-request deadline is supplied to Fetch, not fixed here.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: DialTimeout,
				}).DialContext,
				TLSHandshakeTimeout: TLSHandshakeTimeout,
				IdleConnTimeout:     IdleConnTimeout,
			},
		},
		userAgent: DefaultUserAgent,
	}
}

// Fetch retrieves url and returns the response body. The request is bounded
// by timeout (when positive) in addition to any deadline already on ctx.
// A non-2xx status is reported as a *FetchError.
func (c *Client) Fetch(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if len(body) > MaxBodySize {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("response exceeds %d bytes", MaxBodySize)}
	}

	return body, nil
}
