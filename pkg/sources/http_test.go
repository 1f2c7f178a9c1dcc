package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChapterServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/manga/chapter/13", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte("<html>chapter 13</html>"))
	})
	mux.HandleFunc("/manga/chapter/14", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/manga/chapter/13", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPProber_Probe(t *testing.T) {
	srv := newChapterServer(t)
	p := NewHTTPProber(HTTPProberOptions{Timeout: 5 * time.Second, UserAgent: "test-agent"})
	ctx := context.Background()

	t.Run("published", func(t *testing.T) {
		ok, err := p.Probe(ctx, srv.URL+"/manga/chapter/13")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		ok, err := p.Probe(ctx, srv.URL+"/manga/chapter/99")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("redirect followed", func(t *testing.T) {
		ok, err := p.Probe(ctx, srv.URL+"/manga/chapter/14")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unreachable", func(t *testing.T) {
		_, err := p.Probe(ctx, "http://127.0.0.1:1/chapter/1")
		assert.Error(t, err)
	})
}

func TestHTTPProber_DefaultUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	p := NewHTTPProber(HTTPProberOptions{})
	ok, err := p.Probe(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, DefaultUserAgent, got)
}

func TestHTTPProber_CancelledWhileRateLimited(t *testing.T) {
	srv := newChapterServer(t)
	p := NewHTTPProber(HTTPProberOptions{UserAgent: "test-agent", RatePerHost: 0.001, Burst: 1})

	// First call consumes the only token.
	_, err := p.Probe(context.Background(), srv.URL+"/manga/chapter/13")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = p.Probe(ctx, srv.URL+"/manga/chapter/13")
	assert.Error(t, err)
}

func TestHostLimiterNil(t *testing.T) {
	var l *hostLimiter
	assert.NoError(t, l.Wait(context.Background(), "https://example.com"))
	assert.Nil(t, newHostLimiter(0, 1))
}
