package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangatrack/pkg/app/styles"
	"github.com/kerbaras/mangatrack/pkg/config"
	"github.com/kerbaras/mangatrack/pkg/integrations"
)

// SitesScreen lists the configured scan site bookmarks.
type SitesScreen struct {
	bookmarks []config.Bookmark
	opener    integrations.Opener
	selected  int
	width     int
	height    int
	status    string
	err       error
}

func NewSitesScreen(bookmarks []config.Bookmark, opener integrations.Opener) *SitesScreen {
	return &SitesScreen{
		bookmarks: bookmarks,
		opener:    opener,
	}
}

func (s *SitesScreen) Init() tea.Cmd {
	return nil
}

func (s *SitesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if len(s.bookmarks) == 0 {
			break
		}
		switch msg.String() {
		case "up", "k":
			s.selected--
			if s.selected < 0 {
				s.selected = len(s.bookmarks) - 1
			}
		case "down", "j":
			s.selected++
			if s.selected >= len(s.bookmarks) {
				s.selected = 0
			}
		case "enter", "o":
			return s, s.open(s.bookmarks[s.selected])
		}

	case statusMsg:
		s.status = msg.text
		s.err = msg.err
	}

	return s, nil
}

func (s *SitesScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🔖 Scan Sites")

	var b strings.Builder
	if len(s.bookmarks) == 0 {
		b.WriteString(styles.MutedStyle.Render("No bookmarks configured"))
		b.WriteString("\n")
	}
	for i, bm := range s.bookmarks {
		line := fmt.Sprintf("%s  %s", bm.Name, styles.MutedStyle.Render(bm.URL))
		if i == s.selected {
			line = styles.SelectedStyle.Render(fmt.Sprintf("%s  %s", bm.Name, bm.URL))
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	var statusLine string
	if s.err != nil {
		statusLine = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	} else if s.status != "" {
		statusLine = styles.MutedStyle.Render(s.status)
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: open in browser • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, b.String(), statusLine, help)
}

// Commands
func (s *SitesScreen) open(bm config.Bookmark) tea.Cmd {
	return func() tea.Msg {
		if err := s.opener.Open(bm.URL); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: fmt.Sprintf("Opened %s", bm.Name)}
	}
}
