package services

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/kerbaras/mangatrack/pkg/data"
	"github.com/kerbaras/mangatrack/pkg/metrics"
	"github.com/kerbaras/mangatrack/pkg/sources"
)

// CheckProgress reports the state of one manga during an update check
type CheckProgress struct {
	MangaID string
	Name    string
	Chapter string // chapter being probed
	Status  string // "checking", "found", "none", "stale", "skipped", "error"
	Error   error
}

// CheckReport summarises a check run
type CheckReport struct {
	Checked int
	Found   int
	Skipped int
	Failed  int
}

// Observer receives probe outcomes, see metrics.Metrics
type Observer interface {
	ObserveProbe(result string)
	ObserveCheck(d time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveProbe(string)        {}
func (nopObserver) ObserveCheck(time.Duration) {}

// FoundFunc is called once per manga whose next chapter answered. It
// reports whether the hit was recorded; a stale hit is counted as skipped.
type FoundFunc func(mangaID string, probed, next int) bool

// Checker fans chapter probes out over goroutines
type Checker struct {
	prober       sources.Prober
	concurrency  int
	observer     Observer
	progressChan chan CheckProgress
}

// NewChecker creates a Checker. concurrency <= 0 fires every probe at once.
func NewChecker(prober sources.Prober, concurrency int, observer Observer) *Checker {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Checker{
		prober:       prober,
		concurrency:  concurrency,
		observer:     observer,
		progressChan: make(chan CheckProgress, 100),
	}
}

// GetProgressChannel returns the channel for receiving check progress updates
func (c *Checker) GetProgressChannel() <-chan CheckProgress {
	return c.progressChan
}

// Check probes the next chapter of every manga and calls onFound for hits.
// It returns when all probes have completed.
func (c *Checker) Check(ctx context.Context, mangas []*data.Manga, onFound FoundFunc) CheckReport {
	start := time.Now()
	defer func() { c.observer.ObserveCheck(time.Since(start)) }()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		report CheckReport
	)

	var semaphore chan struct{}
	if c.concurrency > 0 {
		semaphore = make(chan struct{}, c.concurrency)
	}

	for _, manga := range mangas {
		last, ok := manga.LastChapterNumber()
		if !ok {
			log.Printf("[check] %s: cannot parse chapter %q", manga.Name, manga.LastChapter)
			c.skip(manga, ErrInvalidChapter, &mu, &report)
			continue
		}
		next := last + 1
		nextURL, ok := sources.NextChapterURL(manga.URL, last, next)
		if !ok {
			log.Printf("[check] %s: no /chapter/%d in %s", manga.Name, last, manga.URL)
			c.skip(manga, ErrNoChapterPattern, &mu, &report)
			continue
		}

		wg.Add(1)
		go func(manga *data.Manga, last, next int, nextURL string) {
			defer wg.Done()
			if semaphore != nil {
				select {
				case semaphore <- struct{}{}:
					defer func() { <-semaphore }()
				case <-ctx.Done():
					c.fail(manga, next, ctx.Err(), &mu, &report)
					return
				}
			}

			c.sendProgress(CheckProgress{
				MangaID: manga.ID,
				Name:    manga.Name,
				Chapter: strconv.Itoa(next),
				Status:  "checking",
			})

			found, err := c.prober.Probe(ctx, nextURL)
			if err != nil {
				log.Printf("[check] %s: probe %s: %v", manga.Name, nextURL, err)
				c.fail(manga, next, err, &mu, &report)
				return
			}

			status := "none"
			result := metrics.ResultMissing
			if found {
				status = "found"
				result = metrics.ResultFound
				if onFound != nil && !onFound(manga.ID, last, next) {
					status = "stale"
					result = metrics.ResultSkipped
				}
			}

			mu.Lock()
			report.Checked++
			switch status {
			case "found":
				report.Found++
			case "stale":
				report.Skipped++
			}
			mu.Unlock()

			c.observer.ObserveProbe(result)
			c.sendProgress(CheckProgress{
				MangaID: manga.ID,
				Name:    manga.Name,
				Chapter: strconv.Itoa(next),
				Status:  status,
			})
		}(manga, last, next, nextURL)
	}

	wg.Wait()
	return report
}

func (c *Checker) skip(manga *data.Manga, err error, mu *sync.Mutex, report *CheckReport) {
	mu.Lock()
	report.Skipped++
	mu.Unlock()
	c.observer.ObserveProbe(metrics.ResultSkipped)
	c.sendProgress(CheckProgress{
		MangaID: manga.ID,
		Name:    manga.Name,
		Status:  "skipped",
		Error:   err,
	})
}

func (c *Checker) fail(manga *data.Manga, next int, err error, mu *sync.Mutex, report *CheckReport) {
	mu.Lock()
	report.Failed++
	mu.Unlock()
	c.observer.ObserveProbe(metrics.ResultError)
	c.sendProgress(CheckProgress{
		MangaID: manga.ID,
		Name:    manga.Name,
		Chapter: strconv.Itoa(next),
		Status:  "error",
		Error:   err,
	})
}

// sendProgress sends a progress update (non-blocking)
func (c *Checker) sendProgress(progress CheckProgress) {
	select {
	case c.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}
