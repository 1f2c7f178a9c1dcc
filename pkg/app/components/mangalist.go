package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatrack/pkg/app/styles"
	"github.com/kerbaras/mangatrack/pkg/data"
	"github.com/kerbaras/mangatrack/pkg/services"
)

// cardHeight is the rendered height of one card including borders.
const cardHeight = 6

type MangaListItem struct {
	Manga *data.Manga
}

type MangaList struct {
	Items         []MangaListItem
	SelectedIndex int
	Width         int
	Height        int
}

func NewMangaList() *MangaList {
	return &MangaList{
		Items:         []MangaListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

func (m *MangaList) SetItems(items []MangaListItem) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

// Select moves the cursor to the manga with the given ID, if present.
func (m *MangaList) Select(id string) {
	for i, item := range m.Items {
		if item.Manga.ID == id {
			m.SelectedIndex = i
			return
		}
	}
}

func (m *MangaList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *MangaList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *MangaList) Selected() *MangaListItem {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// window returns the slice of items that fits in Height, keeping the
// selection visible.
func (m *MangaList) window() (start, end int) {
	visible := m.Height / cardHeight
	if visible < 1 {
		visible = 1
	}
	if len(m.Items) <= visible {
		return 0, len(m.Items)
	}

	start = m.SelectedIndex - visible/2
	if start < 0 {
		start = 0
	}
	end = start + visible
	if end > len(m.Items) {
		end = len(m.Items)
		start = end - visible
	}
	return start, end
}

func (m *MangaList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No manga saved yet. Press 'a' to add one.")
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	start, end := m.window()
	for i := start; i < end; i++ {
		item := m.Items[i]
		cardStyle := styles.CardStyle
		if i == m.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		card := cardStyle.Width(m.Width - 4).Render(renderCard(item.Manga))
		b.WriteString(card)
		b.WriteString("\n")
	}

	if start > 0 || end < len(m.Items) {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(m.Items)),
		))
		b.WriteString("\n")
	}

	return b.String()
}

func renderCard(manga *data.Manga) string {
	title := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render(manga.Name)

	chapter := styles.TextStyle.Render(fmt.Sprintf("Last chapter: %s", manga.LastChapter))

	status := styles.MutedStyle.Render("No new chapter")
	if manga.HasNewChapter() {
		status = styles.StatusFound.Render(fmt.Sprintf("New chapter: %s", *manga.NewChapter))
	}

	lastRead := "Last read: never"
	if manga.LastChapterDate != nil {
		lastRead = fmt.Sprintf("Last read: %s", services.FormattedDate(*manga.LastChapterDate))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, chapter, "  ", status),
		styles.MutedStyle.Render(lastRead),
	)
}
