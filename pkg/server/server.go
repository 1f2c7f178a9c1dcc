package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kerbaras/mangatrack/pkg/services"
)

type Options struct {
	Addr          string
	CheckInterval time.Duration
	Gatherer      prometheus.Gatherer
}

type Server struct {
	lib      *services.Library
	router   *gin.Engine
	addr     string
	interval time.Duration
}

func New(lib *services.Library, opts Options) *Server {
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()
	router.Use(gin.Recovery())
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "mangas": len(lib.Mangas())})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	NewHandler(lib).RegisterRoutes(router.Group("/"))

	return &Server{
		lib:      lib,
		router:   router,
		addr:     opts.Addr,
		interval: opts.CheckInterval,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.interval > 0 {
		go s.checkLoop(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) checkLoop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report := s.lib.CheckForUpdates(ctx)
			log.Printf("[server] periodic check: %d checked, %d new, %d skipped, %d failed",
				report.Checked, report.Found, report.Skipped, report.Failed)
		}
	}
}
