package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/kerbaras/mangatrack/pkg/data"
	"github.com/kerbaras/mangatrack/pkg/integrations"
	"github.com/kerbaras/mangatrack/pkg/metrics"
	"github.com/kerbaras/mangatrack/pkg/services"
	"github.com/kerbaras/mangatrack/pkg/sources"
	"github.com/prometheus/client_golang/prometheus"
)

// deps holds what a command needs to work on the library.
type deps struct {
	repo     *data.Repository
	lib      *services.Library
	opener   integrations.Opener
	registry *prometheus.Registry
}

// openDeps wires the library from the loaded config.
func openDeps(ctx context.Context) (*deps, error) {
	repo, err := data.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	prober := sources.NewHTTPProber(sources.HTTPProberOptions{
		Timeout:     cfg.Probe.Timeout,
		UserAgent:   cfg.Probe.UserAgent,
		RatePerHost: cfg.Probe.RatePerHost,
		Burst:       cfg.Probe.Burst,
	})
	opener := integrations.NewBrowserOpener()

	registry := prometheus.NewRegistry()
	lib, err := services.NewLibrary(ctx, repo, prober, opener, services.LibraryOptions{
		Concurrency: cfg.Probe.Concurrency,
		Observer:    metrics.New(registry),
		BackupPath:  cfg.Backup.Path,
	})
	if err != nil {
		repo.Close()
		return nil, err
	}

	return &deps{repo: repo, lib: lib, opener: opener, registry: registry}, nil
}

func (d *deps) Close() {
	if err := d.repo.Close(); err != nil {
		log.Printf("Warning: failed to close storage: %v", err)
	}
}

// resolve finds a manga by ID or name, joining multi-word names.
func (d *deps) resolve(args []string) (*data.Manga, error) {
	return d.lib.Resolve(strings.Join(args, " "))
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
