package sources

import (
	"fmt"
	"strconv"
	"strings"
)

const chapterSegment = "/chapter/"

// ChapterFromURL returns the integer held by the last non-empty path segment
// of rawURL, e.g. 12 for ".../chapter/12/".
func ChapterFromURL(rawURL string) (int, bool) {
	parts := strings.FieldsFunc(rawURL, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextChapterURL rewrites every "/chapter/<from>" in rawURL to
// "/chapter/<to>". A match must not be followed by another digit, so chapter
// 1 never rewrites "/chapter/12". ok is false when nothing was rewritten.
func NextChapterURL(rawURL string, from, to int) (string, bool) {
	needle := fmt.Sprintf("%s%d", chapterSegment, from)
	replacement := fmt.Sprintf("%s%d", chapterSegment, to)

	var b strings.Builder
	b.Grow(len(rawURL) + 4)

	replaced := false
	rest := rawURL
	for {
		i := strings.Index(rest, needle)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		end := i + len(needle)
		if end < len(rest) && isDigit(rest[end]) {
			b.WriteString(rest[:end])
			rest = rest[end:]
			continue
		}
		b.WriteString(rest[:i])
		b.WriteString(replacement)
		rest = rest[end:]
		replaced = true
	}

	if !replaced {
		return rawURL, false
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
