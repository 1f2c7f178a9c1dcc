package sources

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// hostLimiter keeps one token bucket per host.
type hostLimiter struct {
	limit rate.Limit
	burst int

	mu     sync.Mutex
	byHost map[string]*rate.Limiter
}

// newHostLimiter returns nil when rps is not positive; a nil limiter never waits.
func newHostLimiter(rps float64, burst int) *hostLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &hostLimiter{
		limit:  rate.Limit(rps),
		burst:  burst,
		byHost: make(map[string]*rate.Limiter),
	}
}

func (l *hostLimiter) Wait(ctx context.Context, rawURL string) error {
	if l == nil {
		return nil
	}

	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}
	host = strings.ToLower(host)

	l.mu.Lock()
	lim, ok := l.byHost[host]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.byHost[host] = lim
	}
	l.mu.Unlock()

	return lim.Wait(ctx)
}
