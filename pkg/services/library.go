package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kerbaras/mangatrack/pkg/data"
	"github.com/kerbaras/mangatrack/pkg/integrations"
	"github.com/kerbaras/mangatrack/pkg/sources"
)

// Repository is the persistence needed by the library
type Repository interface {
	LoadMangas(ctx context.Context) ([]*data.Manga, error)
	SaveMangas(ctx context.Context, mangas []*data.Manga) error
	LoadAccent(ctx context.Context) (string, error)
	SaveAccent(ctx context.Context, color string) error
}

type LibraryOptions struct {
	Concurrency int
	Observer    Observer
	BackupPath  string
	Now         func() time.Time
}

// AddInput holds the raw form values of a new manga
type AddInput struct {
	Name        string
	URL         string
	LastChapter string
}

// Library is the in-memory manga list backed by a Repository.
// All methods are safe for concurrent use.
type Library struct {
	repo       Repository
	opener     integrations.Opener
	checker    *Checker
	backupPath string
	now        func() time.Time

	mu     sync.Mutex
	mangas []*data.Manga
}

// NewLibrary loads the stored mangas and returns a ready Library.
func NewLibrary(ctx context.Context, repo Repository, prober sources.Prober, opener integrations.Opener, opts LibraryOptions) (*Library, error) {
	mangas, err := repo.LoadMangas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mangas: %w", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	backupPath := opts.BackupPath
	if backupPath == "" {
		backupPath = integrations.BackupFileName
	}

	return &Library{
		repo:       repo,
		opener:     opener,
		checker:    NewChecker(prober, opts.Concurrency, opts.Observer),
		backupPath: backupPath,
		now:        now,
		mangas:     mangas,
	}, nil
}

// Checker exposes the checker so UIs can follow its progress channel.
func (l *Library) Checker() *Checker {
	return l.checker
}

func (l *Library) BackupPath() string {
	return l.backupPath
}

// Mangas returns copies of the stored mangas in insertion order.
func (l *Library) Mangas() []*data.Manga {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

func (l *Library) snapshot() []*data.Manga {
	out := make([]*data.Manga, len(l.mangas))
	for i, m := range l.mangas {
		out[i] = m.Clone()
	}
	return out
}

// Sorted returns copies of the stored mangas ordered by opt.
func (l *Library) Sorted(opt SortOption) []*data.Manga {
	mangas := l.Mangas()
	sortMangas(mangas, opt)
	return mangas
}

func (l *Library) Find(id string) (*data.Manga, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return l.mangas[i].Clone(), nil
}

// Resolve finds a manga by ID, then by case-insensitive name.
func (l *Library) Resolve(ref string) (*data.Manga, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.indexOf(ref); i >= 0 {
		return l.mangas[i].Clone(), nil
	}
	for _, m := range l.mangas {
		if strings.EqualFold(m.Name, ref) {
			return m.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
}

func (l *Library) indexOf(id string) int {
	for i, m := range l.mangas {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// SanitizeChapter keeps the digits of input, drops leading zeros and clamps
// the result to the chapter number found at the end of url. An empty url
// clears the chapter.
func SanitizeChapter(input, url string) string {
	if strings.TrimSpace(url) == "" {
		return ""
	}

	chapter := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)

	n, err := strconv.Atoi(chapter)
	if err != nil {
		return chapter
	}
	if urlChapter, ok := sources.ChapterFromURL(url); ok && n > urlChapter {
		return strconv.Itoa(urlChapter)
	}
	return strconv.Itoa(n)
}

// Add validates the input and stores a new manga.
func (l *Library) Add(ctx context.Context, in AddInput) (*data.Manga, error) {
	name := strings.TrimSpace(in.Name)
	url := strings.TrimSpace(in.URL)
	if name == "" || url == "" {
		return nil, ErrMissingFields
	}
	if err := integrations.ValidateURL(url); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	chapter := SanitizeChapter(in.LastChapter, url)
	if chapter == "" {
		chapter = "1"
	}

	now := l.now()
	manga := &data.Manga{
		ID:                uuid.NewString(),
		Name:              name,
		URL:               url,
		LastChapter:       chapter,
		ChaptersUpdatedAt: now,
		LastChapterDate:   &now,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, m := range l.mangas {
		if m.URL == url {
			return nil, ErrDuplicate
		}
	}

	l.mangas = append(l.mangas, manga)
	if err := l.repo.SaveMangas(ctx, l.mangas); err != nil {
		l.mangas = l.mangas[:len(l.mangas)-1]
		return nil, fmt.Errorf("failed to save manga: %w", err)
	}

	return manga.Clone(), nil
}

func (l *Library) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	next := make([]*data.Manga, 0, len(l.mangas)-1)
	next = append(next, l.mangas[:i]...)
	next = append(next, l.mangas[i+1:]...)
	if err := l.repo.SaveMangas(ctx, next); err != nil {
		return fmt.Errorf("failed to delete manga: %w", err)
	}
	l.mangas = next
	return nil
}

// CheckForUpdates probes the next chapter of every manga.
func (l *Library) CheckForUpdates(ctx context.Context) CheckReport {
	return l.checker.Check(ctx, l.Mangas(), l.markNewChapter(ctx))
}

// Check probes the next chapter of a single manga.
func (l *Library) Check(ctx context.Context, id string) (CheckReport, error) {
	manga, err := l.Find(id)
	if err != nil {
		return CheckReport{}, err
	}
	return l.checker.Check(ctx, []*data.Manga{manga}, l.markNewChapter(ctx)), nil
}

func (l *Library) markNewChapter(ctx context.Context) FoundFunc {
	return func(id string, probed, next int) bool {
		l.mu.Lock()
		defer l.mu.Unlock()

		i := l.indexOf(id)
		if i < 0 {
			return false
		}
		m := l.mangas[i]
		// The user may have moved on while the probe was in flight.
		if last, ok := m.LastChapterNumber(); !ok || last != probed {
			return false
		}

		chapter := strconv.Itoa(next)
		m.NewChapter = &chapter
		m.ChaptersUpdatedAt = l.now()
		if err := l.repo.SaveMangas(ctx, l.mangas); err != nil {
			log.Printf("[library] save after new chapter of %s: %v", m.Name, err)
		}
		return true
	}
}

// NewChapterURL returns the URL of m's detected chapter.
func NewChapterURL(m *data.Manga) (string, error) {
	if !m.HasNewChapter() {
		return "", ErrNoNewChapter
	}
	last, ok := m.LastChapterNumber()
	if !ok {
		return "", ErrInvalidChapter
	}
	next, err := strconv.Atoi(*m.NewChapter)
	if err != nil {
		return "", ErrInvalidChapter
	}
	url, ok := sources.NextChapterURL(m.URL, last, next)
	if !ok {
		return "", ErrNoChapterPattern
	}
	return url, nil
}

// urlTaken reports whether a manga other than id is stored at url.
// Callers hold l.mu.
func (l *Library) urlTaken(id, url string) bool {
	for _, m := range l.mangas {
		if m.ID != id && m.URL == url {
			return true
		}
	}
	return false
}

// OpenLastRead opens the last read chapter in the browser.
func (l *Library) OpenLastRead(id string) error {
	manga, err := l.Find(id)
	if err != nil {
		return err
	}
	return l.opener.Open(manga.URL)
}

// AdvanceToNewChapter marks the detected chapter as read and returns its URL.
func (l *Library) AdvanceToNewChapter(ctx context.Context, id string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return "", ErrNotFound
	}

	updated := l.mangas[i].Clone()
	url, err := NewChapterURL(updated)
	if err != nil {
		return "", err
	}

	if l.urlTaken(id, url) {
		return "", ErrDuplicate
	}

	now := l.now()
	updated.LastChapter = *updated.NewChapter
	updated.URL = url
	updated.NewChapter = nil
	updated.LastChapterDate = &now

	next := make([]*data.Manga, len(l.mangas))
	copy(next, l.mangas)
	next[i] = updated
	if err := l.repo.SaveMangas(ctx, next); err != nil {
		return "", fmt.Errorf("failed to save manga: %w", err)
	}
	l.mangas = next

	return url, nil
}

// OpenNewChapter opens the detected chapter, records it as read and probes
// for the one after it.
func (l *Library) OpenNewChapter(ctx context.Context, id string) (string, error) {
	manga, err := l.Find(id)
	if err != nil {
		return "", err
	}
	url, err := NewChapterURL(manga)
	if err != nil {
		return "", err
	}
	l.mu.Lock()
	taken := l.urlTaken(id, url)
	l.mu.Unlock()
	if taken {
		return "", ErrDuplicate
	}
	if err := l.opener.Open(url); err != nil {
		return "", err
	}

	if _, err := l.AdvanceToNewChapter(ctx, id); err != nil {
		return "", err
	}
	if _, err := l.Check(ctx, id); err != nil {
		log.Printf("[library] re-check %s: %v", manga.Name, err)
	}
	return url, nil
}

// Export writes the stored mangas to path, or to the configured backup path
// when path is empty.
func (l *Library) Export(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = l.backupPath
	}

	mangas, err := l.repo.LoadMangas(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load mangas: %w", err)
	}
	if err := integrations.WriteBackup(path, mangas); err != nil {
		return "", err
	}
	log.Printf("[library] exported %d mangas to %s", len(mangas), path)
	return path, nil
}

// Import replaces the library with the content of a backup file.
func (l *Library) Import(ctx context.Context, path string) (int, error) {
	if path == "" {
		path = l.backupPath
	}

	mangas, err := integrations.ReadBackup(path)
	if err != nil {
		return 0, err
	}
	for _, m := range mangas {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if m.LastChapter == "" {
			m.LastChapter = "1"
		}
		if n, ok := m.LastChapterNumber(); ok {
			m.LastChapter = strconv.Itoa(n)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.repo.SaveMangas(ctx, mangas); err != nil {
		return 0, fmt.Errorf("failed to save imported mangas: %w", err)
	}
	l.mangas = mangas
	log.Printf("[library] imported %d mangas from %s", len(mangas), path)
	return len(mangas), nil
}

func (l *Library) Accent(ctx context.Context) (string, error) {
	return l.repo.LoadAccent(ctx)
}

func (l *Library) SetAccent(ctx context.Context, color string) error {
	return l.repo.SaveAccent(ctx, color)
}

// FormattedDate renders t in medium date style.
func FormattedDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
