package services

import (
	"context"
	"sync"

	"github.com/kerbaras/mangatrack/pkg/data"
)

type mockRepository struct {
	mu     sync.Mutex
	saved  []*data.Manga
	saves  int
	accent string

	loadMangasFunc func(ctx context.Context) ([]*data.Manga, error)
	saveMangasFunc func(ctx context.Context, mangas []*data.Manga) error
}

func (m *mockRepository) LoadMangas(ctx context.Context) ([]*data.Manga, error) {
	if m.loadMangasFunc != nil {
		return m.loadMangasFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*data.Manga, len(m.saved))
	for i, manga := range m.saved {
		out[i] = manga.Clone()
	}
	return out, nil
}

func (m *mockRepository) SaveMangas(ctx context.Context, mangas []*data.Manga) error {
	if m.saveMangasFunc != nil {
		if err := m.saveMangasFunc(ctx, mangas); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.saved = make([]*data.Manga, len(mangas))
	for i, manga := range mangas {
		m.saved[i] = manga.Clone()
	}
	return nil
}

func (m *mockRepository) LoadAccent(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accent, nil
}

func (m *mockRepository) SaveAccent(ctx context.Context, color string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accent = color
	return nil
}

func (m *mockRepository) snapshot() []*data.Manga {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved
}

type mockProber struct {
	mu    sync.Mutex
	calls []string

	probeFunc func(ctx context.Context, url string) (bool, error)
}

func (m *mockProber) Probe(ctx context.Context, url string) (bool, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()
	if m.probeFunc != nil {
		return m.probeFunc(ctx, url)
	}
	return false, nil
}

func (m *mockProber) called() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

type mockOpener struct {
	opened []string
	err    error
}

func (m *mockOpener) Open(url string) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, url)
	return nil
}

// foundAt answers 200 for the listed URLs only.
func foundAt(urls ...string) func(ctx context.Context, url string) (bool, error) {
	set := make(map[string]bool, len(urls))
	for _, u := range urls {
		set[u] = true
	}
	return func(ctx context.Context, url string) (bool, error) {
		return set[url], nil
	}
}
