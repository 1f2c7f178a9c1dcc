package integrations

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kerbaras/mangatrack/pkg/data"
)

const BackupFileName = "mangas_backup.json"

// appleEpoch is the reference date of numeric timestamps in backups written
// by the iOS app.
var appleEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// WriteBackup writes mangas as an indented JSON array.
func WriteBackup(path string, mangas []*data.Manga) error {
	if mangas == nil {
		mangas = []*data.Manga{}
	}
	raw, err := json.MarshalIndent(mangas, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create backup dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

type backupEntry struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	URL               string          `json:"url"`
	LastChapter       string          `json:"lastChapter"`
	NewChapter        *string         `json:"newChapter"`
	ChaptersUpdatedAt json.RawMessage `json:"chaptersUpdatedAt"`
	LastChapterDate   json.RawMessage `json:"lastChapterDate"`
}

// ReadBackup decodes a backup file. Timestamps may be RFC3339 strings or
// seconds since 2001-01-01. Later entries repeating a URL are dropped.
func ReadBackup(path string) ([]*data.Manga, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}

	var entries []backupEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	mangas := make([]*data.Manga, 0, len(entries))
	for i, e := range entries {
		if seen[e.URL] {
			continue
		}
		seen[e.URL] = true

		updated, err := parseTimestamp(e.ChaptersUpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("entry %d chaptersUpdatedAt: %w", i, err)
		}
		lastRead, err := parseTimestamp(e.LastChapterDate)
		if err != nil {
			return nil, fmt.Errorf("entry %d lastChapterDate: %w", i, err)
		}

		m := &data.Manga{
			ID:          e.ID,
			Name:        e.Name,
			URL:         e.URL,
			LastChapter: e.LastChapter,
			NewChapter:  e.NewChapter,
		}
		if updated != nil {
			m.ChaptersUpdatedAt = *updated
		}
		m.LastChapterDate = lastRead
		mangas = append(mangas, m)
	}

	return mangas, nil
}

func parseTimestamp(raw json.RawMessage) (*time.Time, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil, nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, str)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	var secs float64
	if err := json.Unmarshal(raw, &secs); err != nil {
		return nil, err
	}
	whole, frac := math.Modf(secs)
	t := appleEpoch.Add(time.Duration(whole) * time.Second).Add(time.Duration(frac * float64(time.Second)))
	return &t, nil
}
