package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatrack/pkg/app/styles"
	"github.com/kerbaras/mangatrack/pkg/config"
	"github.com/kerbaras/mangatrack/pkg/integrations"
	"github.com/kerbaras/mangatrack/pkg/services"
)

type screenType int

const (
	libraryView screenType = iota
	addView
	sitesView
	detailsView
)

// tabViews are the screens reachable with tab.
var tabViews = []screenType{libraryView, addView, sitesView}

type RootScreen struct {
	lib *services.Library

	currentView screenType
	library     *LibraryScreen
	add         *AddScreen
	sites       *SitesScreen
	details     *DetailsScreen

	width  int
	height int
}

func NewRootScreen(lib *services.Library, opener integrations.Opener, bookmarks []config.Bookmark) *RootScreen {
	return &RootScreen{
		lib:         lib,
		currentView: libraryView,
		library:     NewLibraryScreen(lib),
		add:         NewAddScreen(lib),
		sites:       NewSitesScreen(bookmarks, opener),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(
		r.library.Init(),
		r.listenForProgress,
	)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		// Every screen keeps its own size.
		r.library.Update(msg)
		r.add.Update(msg)
		r.sites.Update(msg)
		if r.details != nil {
			r.details.Update(msg)
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			// q is text while typing in the add form
			if r.currentView != addView {
				return r, tea.Quit
			}
		case "tab":
			if r.currentView == detailsView {
				// Can't tab away from details, use esc
				break
			}
			return r, r.switchTo(r.nextTab())
		}

	case services.CheckProgress:
		// The library tracks progress even while another screen is shown.
		_, libCmd := r.library.Update(msg)
		cmds := []tea.Cmd{libCmd, r.listenForProgress}
		if r.currentView == detailsView && r.details != nil {
			_, detailsCmd := r.details.Update(msg)
			cmds = append(cmds, detailsCmd)
		}
		return r, tea.Batch(cmds...)

	case checkStartedMsg, libraryLoadedMsg:
		_, libCmd := r.library.Update(msg)
		return r, libCmd

	case checkDoneMsg:
		if msg.mangaID == "" {
			_, libCmd := r.library.Update(msg)
			return r, libCmd
		}

	case SwitchScreenMsg:
		// Handle screen switching from sub-screens
		switch msg.Screen {
		case "library":
			if id, ok := msg.Data.(string); ok {
				r.library.focus = id
			}
			cmd = r.switchTo(libraryView)
		case "add":
			cmd = r.switchTo(addView)
		case "sites":
			cmd = r.switchTo(sitesView)
		case "details":
			if mangaID, ok := msg.Data.(string); ok {
				r.details = NewDetailsScreen(r.lib, mangaID)
				r.details.Update(tea.WindowSizeMsg{Width: r.width, Height: r.height})
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case libraryView:
		newModel, newCmd := r.library.Update(msg)
		r.library = newModel.(*LibraryScreen)
		return r, newCmd
	case addView:
		newModel, newCmd := r.add.Update(msg)
		r.add = newModel.(*AddScreen)
		return r, newCmd
	case sitesView:
		newModel, newCmd := r.sites.Update(msg)
		r.sites = newModel.(*SitesScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) nextTab() screenType {
	for i, v := range tabViews {
		if v == r.currentView {
			return tabViews[(i+1)%len(tabViews)]
		}
	}
	return libraryView
}

func (r *RootScreen) switchTo(view screenType) tea.Cmd {
	r.currentView = view
	switch view {
	case addView:
		return r.add.Init()
	case sitesView:
		return r.sites.Init()
	default:
		return r.library.Init()
	}
}

func (r *RootScreen) View() string {
	// Render tabs
	tabs := r.renderTabs()

	// Render active screen
	var content string
	switch r.currentView {
	case libraryView:
		content = r.library.View()
	case addView:
		content = r.add.View()
	case sitesView:
		content = r.sites.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	if r.currentView == detailsView {
		// Don't show tabs in details view
		return ""
	}

	names := map[screenType]string{
		libraryView: "Library",
		addView:     "Add",
		sitesView:   "Sites",
	}

	rendered := make([]string, len(tabViews))
	for i, v := range tabViews {
		if v == r.currentView {
			rendered[i] = styles.ActiveTabStyle.Render(names[v])
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(names[v])
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (r *RootScreen) listenForProgress() tea.Msg {
	return <-r.lib.Checker().GetProgressChannel()
}
