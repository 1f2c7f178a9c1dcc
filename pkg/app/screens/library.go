package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangatrack/pkg/app/components"
	"github.com/kerbaras/mangatrack/pkg/app/styles"
	"github.com/kerbaras/mangatrack/pkg/services"
)

type LibraryScreen struct {
	lib             *services.Library
	mangaList       *components.MangaList
	progressTracker *components.ProgressTracker
	sort            services.SortOption
	confirmDelete   string
	focus           string
	checking        bool
	width           int
	height          int
	status          string
	err             error
}

func NewLibraryScreen(lib *services.Library) *LibraryScreen {
	return &LibraryScreen{
		lib:             lib,
		mangaList:       components.NewMangaList(),
		progressTracker: components.NewProgressTracker(80),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.loadLibrary
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.mangaList.Width = msg.Width - 4
		s.mangaList.Height = msg.Height - 12
		s.progressTracker.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		if s.confirmDelete != "" {
			return s, s.handleConfirm(msg)
		}

		switch msg.String() {
		case "up", "k":
			s.mangaList.Prev()
		case "down", "j":
			s.mangaList.Next()
		case "r":
			return s, s.loadLibrary
		case "s":
			s.sort = s.sort.Next()
			return s, s.loadLibrary
		case "c":
			if !s.checking {
				return s, s.checkAll()
			}
		case "p":
			return s, s.cycleAccent()
		case "x":
			return s, s.export()
		case "i":
			return s, s.importBackup()
		case "a":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "add"}
			}
		}

		selected := s.mangaList.Selected()
		if selected == nil {
			break
		}
		switch msg.String() {
		case "enter":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "details", Data: selected.Manga.ID}
			}
		case "o":
			return s, openLastRead(s.lib, selected.Manga.ID)
		case "n":
			return s, openNewChapter(s.lib, selected.Manga.ID)
		case "d":
			s.confirmDelete = selected.Manga.ID
		}

	case libraryLoadedMsg:
		selectedID := s.focus
		if selected := s.mangaList.Selected(); selectedID == "" && selected != nil {
			selectedID = selected.Manga.ID
		}
		s.focus = ""
		s.mangaList.SetItems(msg.items)
		s.mangaList.Select(selectedID)

	case statusMsg:
		s.status = msg.text
		s.err = msg.err
		return s, s.loadLibrary

	case checkStartedMsg:
		s.checking = true
		s.progressTracker.Start(msg.total)

	case services.CheckProgress:
		s.progressTracker.Update(msg)
		if msg.Status == "found" {
			return s, s.loadLibrary
		}

	case checkDoneMsg:
		s.checking = false
		s.progressTracker.Clear()
		s.err = nil
		s.status = fmt.Sprintf("Checked %d, %d new chapter(s)", msg.report.Checked, msg.report.Found)
		if msg.report.Skipped > 0 || msg.report.Failed > 0 {
			s.status += fmt.Sprintf(", %d skipped, %d failed", msg.report.Skipped, msg.report.Failed)
		}
		return s, s.loadLibrary
	}

	return s, nil
}

func (s *LibraryScreen) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	id := s.confirmDelete
	s.confirmDelete = ""

	switch msg.String() {
	case "y", "Y":
		return func() tea.Msg {
			if err := s.lib.Delete(context.Background(), id); err != nil {
				return statusMsg{err: err}
			}
			return statusMsg{text: "Manga deleted"}
		}
	}
	s.status = "Delete cancelled"
	return nil
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("📚 Manga Library (sort: %s)", s.sort))

	var statusLine string
	switch {
	case s.confirmDelete != "":
		name := s.confirmDelete
		if selected := s.mangaList.Selected(); selected != nil && selected.Manga.ID == s.confirmDelete {
			name = selected.Manga.Name
		}
		statusLine = styles.StatusWarning.Render(fmt.Sprintf("Delete %s? (y/n)", name))
	case s.err != nil:
		statusLine = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	case s.status != "":
		statusLine = styles.MutedStyle.Render(s.status)
	}
	if statusLine != "" {
		statusLine += "\n\n"
	}

	listView := s.mangaList.View()
	progressView := s.progressTracker.View()

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: details • c: check • o: open last • n: open new • d: delete • s: sort • a: add\n" +
			"x: export • i: import • p: colour • r: refresh • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s%s", header, statusLine, listView, progressView, help)
}

// Messages
type libraryLoadedMsg struct {
	items []components.MangaListItem
}

// Commands
func (s *LibraryScreen) loadLibrary() tea.Msg {
	mangas := s.lib.Sorted(s.sort)

	items := make([]components.MangaListItem, len(mangas))
	for i, manga := range mangas {
		items[i] = components.MangaListItem{Manga: manga}
	}

	return libraryLoadedMsg{items: items}
}

func (s *LibraryScreen) checkAll() tea.Cmd {
	total := len(s.lib.Mangas())
	return tea.Sequence(
		func() tea.Msg { return checkStartedMsg{total: total} },
		func() tea.Msg {
			return checkDoneMsg{report: s.lib.CheckForUpdates(context.Background())}
		},
	)
}

func (s *LibraryScreen) cycleAccent() tea.Cmd {
	name := styles.NextAccent()
	return func() tea.Msg {
		if err := s.lib.SetAccent(context.Background(), name); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: fmt.Sprintf("Accent colour: %s", name)}
	}
}

func (s *LibraryScreen) export() tea.Cmd {
	return func() tea.Msg {
		path, err := s.lib.Export(context.Background(), "")
		if err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: fmt.Sprintf("Exported to %s", path)}
	}
}

func (s *LibraryScreen) importBackup() tea.Cmd {
	return func() tea.Msg {
		n, err := s.lib.Import(context.Background(), "")
		if err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: fmt.Sprintf("Imported %d manga(s) from %s", n, s.lib.BackupPath())}
	}
}

func openLastRead(lib *services.Library, id string) tea.Cmd {
	return func() tea.Msg {
		if err := lib.OpenLastRead(id); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: "Opened last read chapter"}
	}
}

func openNewChapter(lib *services.Library, id string) tea.Cmd {
	return func() tea.Msg {
		url, err := lib.OpenNewChapter(context.Background(), id)
		if err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: fmt.Sprintf("Opened %s", url)}
	}
}
