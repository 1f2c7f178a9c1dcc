package app

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangatrack/pkg/app/screens"
	"github.com/kerbaras/mangatrack/pkg/app/styles"
	"github.com/kerbaras/mangatrack/pkg/config"
	"github.com/kerbaras/mangatrack/pkg/integrations"
	"github.com/kerbaras/mangatrack/pkg/services"
)

type App struct {
	lib       *services.Library
	opener    integrations.Opener
	bookmarks []config.Bookmark
	logFile   string
}

func NewApp(lib *services.Library, opener integrations.Opener, cfg config.Config) *App {
	return &App{
		lib:       lib,
		opener:    opener,
		bookmarks: cfg.Bookmarks,
		logFile:   cfg.Log.File,
	}
}

func (a *App) Run() error {
	// Anything logged to the terminal would tear the alternate screen.
	if a.logFile != "" {
		if err := os.MkdirAll(filepath.Dir(a.logFile), 0o755); err == nil {
			if f, err := tea.LogToFile(a.logFile, "mangatrack"); err == nil {
				defer f.Close()
			}
		}
	}

	if accent, err := a.lib.Accent(context.Background()); err != nil {
		log.Printf("[app] load accent: %v", err)
	} else if accent != "" {
		styles.SetAccent(accent)
	}

	model := screens.NewRootScreen(a.lib, a.opener, a.bookmarks)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
