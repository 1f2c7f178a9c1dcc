package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/kerbaras/mangatrack/pkg/services"
)

func TestNewProgressTracker(t *testing.T) {
	tracker := NewProgressTracker(80)

	if tracker == nil {
		t.Fatal("Expected tracker to be created")
	}

	if tracker.width != 80 {
		t.Errorf("Expected width 80, got %d", tracker.width)
	}

	if len(tracker.checks) != 0 {
		t.Errorf("Expected 0 checks, got %d", len(tracker.checks))
	}
}

func TestUpdateKeepsLatestPerManga(t *testing.T) {
	tracker := NewProgressTracker(80)
	tracker.Start(1)

	tracker.Update(services.CheckProgress{MangaID: "m1", Name: "One", Chapter: "11", Status: "checking"})
	if tracker.Done() != 0 {
		t.Errorf("Expected 0 done, got %d", tracker.Done())
	}
	if !tracker.HasActive() {
		t.Error("Expected an active check")
	}

	tracker.Update(services.CheckProgress{MangaID: "m1", Name: "One", Chapter: "11", Status: "found"})
	if len(tracker.checks) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(tracker.checks))
	}
	if tracker.Done() != 1 {
		t.Errorf("Expected 1 done, got %d", tracker.Done())
	}
	if tracker.HasActive() {
		t.Error("Expected the check to be finished")
	}
}

func TestStartResets(t *testing.T) {
	tracker := NewProgressTracker(80)
	tracker.Start(2)
	tracker.Update(services.CheckProgress{MangaID: "m1", Status: "none"})

	tracker.Start(3)

	if len(tracker.checks) != 0 {
		t.Errorf("Expected checks to be reset, got %d", len(tracker.checks))
	}
	if tracker.total != 3 {
		t.Errorf("Expected total 3, got %d", tracker.total)
	}
}

func TestClear(t *testing.T) {
	tracker := NewProgressTracker(80)
	tracker.Start(3)
	for _, id := range []string{"a", "b", "c"} {
		tracker.Update(services.CheckProgress{MangaID: id, Status: "checking"})
	}

	tracker.Clear()

	if tracker.HasActive() {
		t.Error("Expected no active checks after clear")
	}
	if tracker.View() != "" {
		t.Error("Expected empty view after clear")
	}
}

func TestViewEmpty(t *testing.T) {
	tracker := NewProgressTracker(80)

	view := tracker.View()

	if view != "" {
		t.Errorf("Expected empty view, got: %s", view)
	}
}

func TestViewWithProgress(t *testing.T) {
	tracker := NewProgressTracker(40)
	tracker.Start(3)
	tracker.Update(services.CheckProgress{MangaID: "a", Name: "Alpha", Chapter: "5", Status: "found"})
	tracker.Update(services.CheckProgress{MangaID: "b", Name: "Beta", Chapter: "9", Status: "none"})
	tracker.Update(services.CheckProgress{MangaID: "c", Name: "Gamma", Chapter: "2", Status: "checking"})

	view := tracker.View()

	if !strings.Contains(view, "Checking for new chapters") {
		t.Error("Expected header")
	}
	if !strings.Contains(view, "2/3 checked") {
		t.Error("Expected counter in view")
	}
	if !strings.Contains(view, "Alpha ch. 5: found") {
		t.Error("Expected hit in view")
	}
	if !strings.Contains(view, "Gamma ch. 2: checking") {
		t.Error("Expected in-flight probe in view")
	}
	if strings.Contains(view, "Beta") {
		t.Error("Expected misses to be hidden")
	}
}

func TestProgressWithError(t *testing.T) {
	tracker := NewProgressTracker(80)
	tracker.Start(2)
	tracker.Update(services.CheckProgress{MangaID: "a", Name: "Alpha", Chapter: "3", Status: "error", Error: errors.New("timeout")})
	tracker.Update(services.CheckProgress{MangaID: "b", Name: "Beta", Status: "skipped", Error: services.ErrNoChapterPattern})

	view := tracker.View()

	if !strings.Contains(view, "Alpha ch. 3: error (timeout)") {
		t.Errorf("Expected error details in view, got: %s", view)
	}
	if !strings.Contains(view, "Beta: skipped") {
		t.Error("Expected skipped entry in view")
	}
}

func TestRenderProgressBar(t *testing.T) {
	bar := renderProgressBar(50, 100, 20)

	if strings.Count(bar, "█") != 10 {
		t.Errorf("Expected 10 filled chars, got %d", strings.Count(bar, "█"))
	}
	if strings.Count(bar, "░") != 10 {
		t.Errorf("Expected 10 empty chars, got %d", strings.Count(bar, "░"))
	}
}

func TestRenderProgressBarZeroTotal(t *testing.T) {
	bar := renderProgressBar(0, 0, 20)

	if bar != "" {
		t.Errorf("Expected empty string for zero total, got: %s", bar)
	}
}

func TestRenderProgressBarFull(t *testing.T) {
	bar := renderProgressBar(100, 100, 20)

	if strings.Count(bar, "█") != 20 {
		t.Errorf("Expected 20 filled chars, got %d", strings.Count(bar, "█"))
	}
	if strings.Contains(bar, "░") {
		t.Error("Expected no empty chars")
	}
}

func TestSimpleProgress(t *testing.T) {
	bar := SimpleProgress(25, 100, 40)

	filled := strings.Count(bar, "█")
	if filled != 10 {
		t.Errorf("Expected 10 filled chars, got %d", filled)
	}
}
