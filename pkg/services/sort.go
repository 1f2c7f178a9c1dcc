package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kerbaras/mangatrack/pkg/data"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOption int

const (
	SortPriority SortOption = iota
	SortName
	SortDate
)

var sortOptionNames = [...]string{"priority", "name", "date"}

func (o SortOption) String() string {
	if o < 0 || int(o) >= len(sortOptionNames) {
		return fmt.Sprintf("SortOption(%d)", int(o))
	}
	return sortOptionNames[o]
}

// Next cycles priority -> name -> date -> priority.
func (o SortOption) Next() SortOption {
	return (o + 1) % SortOption(len(sortOptionNames))
}

func ParseSortOption(s string) (SortOption, error) {
	for i, name := range sortOptionNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return SortOption(i), nil
		}
	}
	return SortPriority, fmt.Errorf("unknown sort option %q (want priority, name or date)", s)
}

// sortMangas orders mangas in place.
func sortMangas(mangas []*data.Manga, opt SortOption) {
	switch opt {
	case SortName:
		col := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(mangas, func(i, j int) bool {
			a, b := mangas[i], mangas[j]
			if a.HasNewChapter() != b.HasNewChapter() {
				return a.HasNewChapter()
			}
			return col.CompareString(a.Name, b.Name) < 0
		})
	case SortDate:
		sort.SliceStable(mangas, func(i, j int) bool {
			return mangas[i].ChaptersUpdatedAt.After(mangas[j].ChaptersUpdatedAt)
		})
	default:
		sort.SliceStable(mangas, func(i, j int) bool {
			return mangas[i].HasNewChapter() && !mangas[j].HasNewChapter()
		})
	}
}
