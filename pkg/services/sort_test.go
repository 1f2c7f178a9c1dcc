package services

import (
	"testing"
	"time"

	"github.com/kerbaras/mangatrack/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(mangas []*data.Manga) []string {
	out := make([]string, len(mangas))
	for i, m := range mangas {
		out[i] = m.Name
	}
	return out
}

func sortFixture() []*data.Manga {
	nc := "2"
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*data.Manga{
		{Name: "zeta", ChaptersUpdatedAt: base.Add(1 * time.Hour)},
		{Name: "Beta", ChaptersUpdatedAt: base.Add(3 * time.Hour)},
		{Name: "omega", NewChapter: &nc, ChaptersUpdatedAt: base},
		{Name: "alpha", ChaptersUpdatedAt: base.Add(2 * time.Hour)},
		{Name: "Delta", NewChapter: &nc, ChaptersUpdatedAt: base.Add(4 * time.Hour)},
	}
}

func TestSortMangas(t *testing.T) {
	tests := []struct {
		opt  SortOption
		want []string
	}{
		{SortPriority, []string{"omega", "Delta", "zeta", "Beta", "alpha"}},
		{SortName, []string{"Delta", "omega", "alpha", "Beta", "zeta"}},
		{SortDate, []string{"Delta", "Beta", "alpha", "zeta", "omega"}},
	}

	for _, tt := range tests {
		t.Run(tt.opt.String(), func(t *testing.T) {
			mangas := sortFixture()
			sortMangas(mangas, tt.opt)
			assert.Equal(t, tt.want, names(mangas))
		})
	}
}

func TestParseSortOption(t *testing.T) {
	opt, err := ParseSortOption("Name")
	require.NoError(t, err)
	assert.Equal(t, SortName, opt)

	opt, err = ParseSortOption(" date ")
	require.NoError(t, err)
	assert.Equal(t, SortDate, opt)

	_, err = ParseSortOption("rating")
	assert.Error(t, err)
}

func TestSortOptionNext(t *testing.T) {
	assert.Equal(t, SortName, SortPriority.Next())
	assert.Equal(t, SortDate, SortName.Next())
	assert.Equal(t, SortPriority, SortDate.Next())
	assert.Equal(t, "SortOption(7)", SortOption(7).String())
}
