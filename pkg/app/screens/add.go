package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatrack/pkg/app/styles"
	"github.com/kerbaras/mangatrack/pkg/services"
)

const (
	nameField = iota
	urlField
	chapterField
)

type AddScreen struct {
	lib    *services.Library
	inputs []textinput.Model
	focus  int
	saving bool
	width  int
	height int
	err    error
}

func NewAddScreen(lib *services.Library) *AddScreen {
	name := textinput.New()
	name.Placeholder = "Manga name"
	name.CharLimit = 200
	name.Width = 50

	url := textinput.New()
	url.Placeholder = "https://example.com/manga/chapter/1"
	url.CharLimit = 500
	url.Width = 50

	chapter := textinput.New()
	chapter.Placeholder = "Last chapter read (defaults to 1)"
	chapter.CharLimit = 10
	chapter.Width = 50

	s := &AddScreen{
		lib:    lib,
		inputs: []textinput.Model{name, url, chapter},
	}
	s.inputs[nameField].Focus()
	return s
}

// Reset clears the form.
func (s *AddScreen) Reset() {
	for i := range s.inputs {
		s.inputs[i].SetValue("")
		s.inputs[i].Blur()
	}
	s.focus = nameField
	s.inputs[nameField].Focus()
	s.err = nil
	s.saving = false
}

func (s *AddScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *AddScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}

		switch msg.String() {
		case "esc":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "library"}
			}
		case "up", "shift+tab":
			return s, s.setFocus(s.focus - 1)
		case "down":
			return s, s.setFocus(s.focus + 1)
		case "enter":
			if s.focus < chapterField {
				return s, s.setFocus(s.focus + 1)
			}
			s.saving = true
			return s, s.save()
		}

	case mangaAddedMsg:
		s.saving = false
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.Reset()
		return s, func() tea.Msg {
			return SwitchScreenMsg{Screen: "library", Data: msg.id}
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	s.sanitizeChapter()
	return s, cmd
}

// sanitizeChapter keeps the chapter input consistent with the URL on every
// keystroke.
func (s *AddScreen) sanitizeChapter() {
	chapter := s.inputs[chapterField].Value()
	clean := services.SanitizeChapter(chapter, s.inputs[urlField].Value())
	if clean != chapter {
		s.inputs[chapterField].SetValue(clean)
	}
}

func (s *AddScreen) setFocus(i int) tea.Cmd {
	if i < 0 {
		i = len(s.inputs) - 1
	}
	if i >= len(s.inputs) {
		i = 0
	}
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[s.focus].Focus()
}

func (s *AddScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("➕ Add Manga")

	labels := []string{"Name", "Chapter URL", "Last chapter"}
	fields := make([]string, len(s.inputs))
	for i, input := range s.inputs {
		inputStyle := styles.InputStyle
		if i == s.focus {
			inputStyle = styles.FocusedInputStyle
		}
		fields[i] = lipgloss.JoinVertical(
			lipgloss.Left,
			styles.SubtitleStyle.Render(labels[i]),
			inputStyle.Render(input.View()),
		)
	}
	form := lipgloss.JoinVertical(lipgloss.Left, fields...)

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	} else if s.saving {
		errorMsg = styles.StatusChecking.Render("Saving...")
	}

	help := styles.HelpStyle.Render(
		"enter: next/save • ↑ ↓: switch field • esc: back • ctrl+c: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s", header, form, errorMsg, help)
}

// Messages
type mangaAddedMsg struct {
	id  string
	err error
}

// Commands
func (s *AddScreen) save() tea.Cmd {
	in := services.AddInput{
		Name:        s.inputs[nameField].Value(),
		URL:         s.inputs[urlField].Value(),
		LastChapter: s.inputs[chapterField].Value(),
	}
	return func() tea.Msg {
		manga, err := s.lib.Add(context.Background(), in)
		if err != nil {
			return mangaAddedMsg{err: err}
		}
		return mangaAddedMsg{id: manga.ID}
	}
}
