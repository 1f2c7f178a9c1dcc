package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChapterFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want int
		ok   bool
	}{
		{"https://example.com/manga/chapter/12", 12, true},
		{"https://example.com/manga/chapter/12/", 12, true},
		{"https://example.com/manga/", 0, false},
		{"https://example.com/chapter/12a", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := ChapterFromURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextChapterURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		from, to int
		want     string
		ok       bool
	}{
		{"plain", "https://site.fr/solo/chapter/12", 12, 13, "https://site.fr/solo/chapter/13", true},
		{"trailing slash", "https://site.fr/solo/chapter/12/", 12, 13, "https://site.fr/solo/chapter/13/", true},
		{"query", "https://site.fr/read/chapter/9?page=1", 9, 10, "https://site.fr/read/chapter/10?page=1", true},
		{"prefix of longer number", "https://site.fr/chapter/12", 1, 2, "https://site.fr/chapter/12", false},
		{"no pattern", "https://site.fr/solo/ch-12", 12, 13, "https://site.fr/solo/ch-12", false},
		{"every occurrence", "https://site.fr/chapter/4/img/chapter/4", 4, 5, "https://site.fr/chapter/5/img/chapter/5", true},
		{"skip then match", "https://site.fr/chapter/12/chapter/1", 1, 2, "https://site.fr/chapter/12/chapter/2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextChapterURL(tt.url, tt.from, tt.to)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
