package data

import (
	"strconv"
	"time"
)

type Manga struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	URL               string     `json:"url"`
	LastChapter       string     `json:"lastChapter"`
	NewChapter        *string    `json:"newChapter,omitempty"`
	ChaptersUpdatedAt time.Time  `json:"chaptersUpdatedAt"`
	LastChapterDate   *time.Time `json:"lastChapterDate,omitempty"`
}

// HasNewChapter reports whether a probe found the next chapter.
func (m *Manga) HasNewChapter() bool {
	return m.NewChapter != nil && *m.NewChapter != ""
}

// LastChapterNumber parses LastChapter. The second value is false when the
// stored chapter is not an integer.
func (m *Manga) LastChapterNumber() (int, bool) {
	n, err := strconv.Atoi(m.LastChapter)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Clone returns a deep copy so callers can't mutate library state through it.
func (m *Manga) Clone() *Manga {
	c := *m
	if m.NewChapter != nil {
		nc := *m.NewChapter
		c.NewChapter = &nc
	}
	if m.LastChapterDate != nil {
		d := *m.LastChapterDate
		c.LastChapterDate = &d
	}
	return &c
}
