package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultUserAgent = "mangatrack/1.0"

type HTTPProberOptions struct {
	Timeout     time.Duration
	UserAgent   string
	RatePerHost float64 // requests per second per host, 0 disables limiting
	Burst       int
}

// HTTPProber considers a chapter published when a GET on its URL answers 200.
type HTTPProber struct {
	client    *http.Client
	userAgent string
	limiter   *hostLimiter
}

func NewHTTPProber(opts HTTPProberOptions) *HTTPProber {
	client := &http.Client{Timeout: opts.Timeout}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPProber{
		client:    client,
		userAgent: userAgent,
		limiter:   newHostLimiter(opts.RatePerHost, opts.Burst),
	}
}

func (p *HTTPProber) Probe(ctx context.Context, url string) (bool, error) {
	if err := p.limiter.Wait(ctx, url); err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,*/*")

	resp, err := p.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	return resp.StatusCode == http.StatusOK, nil
}
