package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatrack/pkg/app/styles"
	"github.com/kerbaras/mangatrack/pkg/data"
	"github.com/kerbaras/mangatrack/pkg/services"
)

type DetailsScreen struct {
	lib      *services.Library
	mangaID  string
	manga    *data.Manga
	checking bool
	width    int
	height   int
	status   string
	err      error
}

func NewDetailsScreen(lib *services.Library, mangaID string) *DetailsScreen {
	return &DetailsScreen{
		lib:     lib,
		mangaID: mangaID,
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return s.loadDetails
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.loadDetails
		case "o":
			return s, openLastRead(s.lib, s.mangaID)
		case "n":
			return s, openNewChapter(s.lib, s.mangaID)
		case "c":
			if !s.checking {
				s.checking = true
				return s, s.check()
			}
		case "esc", "backspace":
			// Go back to library
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "library", Data: s.mangaID}
			}
		}

	case detailsLoadedMsg:
		s.manga = msg.manga
		if msg.err != nil {
			s.err = msg.err
		}

	case statusMsg:
		s.checking = false
		s.status = msg.text
		s.err = msg.err
		return s, s.loadDetails

	case checkDoneMsg:
		s.checking = false
		s.err = nil
		s.status = "No new chapter yet"
		switch {
		case msg.report.Found > 0:
			s.status = "New chapter available!"
		case msg.report.Skipped > 0:
			s.status = "Skipped: no /chapter/<n> segment in the URL, or the chapter changed meanwhile"
		case msg.report.Failed > 0:
			s.status = "Check failed, see the log for details"
		}
		return s, s.loadDetails

	case services.CheckProgress:
		if msg.MangaID == s.mangaID && msg.Status == "found" {
			return s, s.loadDetails
		}
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}
	if s.manga == nil {
		if s.err != nil {
			return styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) +
				"\n" + styles.HelpStyle.Render("esc: back")
		}
		return "Loading..."
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("📖 %s", s.manga.Name))

	var statusLine string
	switch {
	case s.err != nil:
		statusLine = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	case s.checking:
		statusLine = styles.StatusChecking.Render("Checking...")
	case s.status != "":
		statusLine = styles.MutedStyle.Render(s.status)
	}

	help := styles.HelpStyle.Render(
		"o: open last read • n: open new chapter • c: check • r: refresh • esc: back • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, s.renderMangaInfo(), statusLine, help)
}

func (s *DetailsScreen) renderMangaInfo() string {
	m := s.manga

	newChapter := styles.MutedStyle.Render("none detected")
	if m.HasNewChapter() {
		newChapter = styles.StatusFound.Render(*m.NewChapter)
		if url, err := services.NewChapterURL(m); err == nil {
			newChapter += styles.MutedStyle.Render(" → " + url)
		}
	}

	lastRead := "never"
	if m.LastChapterDate != nil {
		lastRead = services.FormattedDate(*m.LastChapterDate)
	}

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			styles.MutedStyle.Width(16).Render(label),
			value,
		)
	}

	info := lipgloss.JoinVertical(
		lipgloss.Left,
		row("URL", styles.TextStyle.Render(m.URL)),
		row("Last chapter", styles.TextStyle.Render(m.LastChapter)),
		row("New chapter", newChapter),
		row("Last read", styles.TextStyle.Render(lastRead)),
		row("Updated", styles.TextStyle.Render(services.FormattedDate(m.ChaptersUpdatedAt))),
	)

	return styles.CardStyle.Width(s.width - 4).Render(info)
}

// Messages
type detailsLoadedMsg struct {
	manga *data.Manga
	err   error
}

// Commands
func (s *DetailsScreen) loadDetails() tea.Msg {
	manga, err := s.lib.Find(s.mangaID)
	if err != nil {
		return detailsLoadedMsg{err: err}
	}
	return detailsLoadedMsg{manga: manga}
}

func (s *DetailsScreen) check() tea.Cmd {
	return func() tea.Msg {
		report, err := s.lib.Check(context.Background(), s.mangaID)
		if err != nil {
			return statusMsg{err: err}
		}
		return checkDoneMsg{mangaID: s.mangaID, report: report}
	}
}
