package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kerbaras/mangatrack/pkg/app/styles"
	"github.com/kerbaras/mangatrack/pkg/services"
)

// ProgressTracker follows the events of a running update check.
type ProgressTracker struct {
	checks map[string]*services.CheckProgress
	total  int
	width  int
}

func NewProgressTracker(width int) *ProgressTracker {
	return &ProgressTracker{
		checks: make(map[string]*services.CheckProgress),
		width:  width,
	}
}

// Start resets the tracker for a check over total mangas.
func (p *ProgressTracker) Start(total int) {
	p.checks = make(map[string]*services.CheckProgress)
	p.total = total
}

func (p *ProgressTracker) SetWidth(width int) {
	p.width = width
}

func (p *ProgressTracker) Update(progress services.CheckProgress) {
	prog := progress // Copy
	p.checks[progress.MangaID] = &prog
}

func (p *ProgressTracker) Clear() {
	p.checks = make(map[string]*services.CheckProgress)
	p.total = 0
}

// Done counts the mangas whose probe has finished.
func (p *ProgressTracker) Done() int {
	done := 0
	for _, c := range p.checks {
		if c.Status != "checking" {
			done++
		}
	}
	return done
}

func (p *ProgressTracker) HasActive() bool {
	return p.total > 0 && p.Done() < p.total
}

func (p *ProgressTracker) View() string {
	if p.total == 0 && len(p.checks) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Checking for new chapters"))
	b.WriteString("\n")

	done := p.Done()
	if p.total > 0 {
		b.WriteString(renderProgressBar(done, p.total, p.width-4))
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d/%d checked", done, p.total)))
		b.WriteString("\n")
	}

	// Only in-flight probes, hits and problems are worth a line.
	var lines []*services.CheckProgress
	for _, c := range p.checks {
		if c.Status != "none" {
			lines = append(lines, c)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })

	for _, c := range lines {
		text := fmt.Sprintf("%s: %s", c.Name, c.Status)
		if c.Chapter != "" {
			text = fmt.Sprintf("%s ch. %s: %s", c.Name, c.Chapter, c.Status)
		}
		if c.Error != nil {
			text = fmt.Sprintf("%s (%s)", text, c.Error)
		}
		b.WriteString(styles.StatusStyle(c.Status).Render(text))
		b.WriteString("\n")
	}

	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
	return bar
}

// SimpleProgress renders a simple progress bar
func SimpleProgress(current, total, width int) string {
	return renderProgressBar(current, total, width)
}
