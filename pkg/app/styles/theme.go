package styles

import "github.com/charmbracelet/lipgloss"

// Accent is a selectable highlight colour.
type Accent struct {
	Name  string
	Color lipgloss.Color
}

// Accents lists the colours the user can cycle through.
var Accents = []Accent{
	{Name: "pink", Color: lipgloss.Color("#FF6B9D")},
	{Name: "purple", Color: lipgloss.Color("#C792EA")},
	{Name: "blue", Color: lipgloss.Color("#82AAFF")},
	{Name: "green", Color: lipgloss.Color("#C3E88D")},
	{Name: "orange", Color: lipgloss.Color("#F78C6C")},
	{Name: "cyan", Color: lipgloss.Color("#89DDFF")},
}

var (
	// Color palette
	Primary    = Accents[0].Color
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#263238")
	Foreground = lipgloss.Color("#EEFFFF")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()

	accentName = Accents[0].Name
)

// Base styles, rebuilt when the accent changes
var (
	TitleStyle         lipgloss.Style
	SubtitleStyle      lipgloss.Style
	TextStyle          lipgloss.Style
	MutedStyle         lipgloss.Style
	SelectedStyle      lipgloss.Style
	CardStyle          lipgloss.Style
	ActiveCardStyle    lipgloss.Style
	StatusChecking     lipgloss.Style
	StatusFound        lipgloss.Style
	StatusWarning      lipgloss.Style
	StatusError        lipgloss.Style
	ProgressBarStyle   lipgloss.Style
	ProgressEmptyStyle lipgloss.Style
	ActiveTabStyle     lipgloss.Style
	InactiveTabStyle   lipgloss.Style
	HelpStyle          lipgloss.Style
	InputStyle         lipgloss.Style
	FocusedInputStyle  lipgloss.Style
)

func init() {
	build()
}

func build() {
	TitleStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	TextStyle = lipgloss.NewStyle().
		Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	SelectedStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		BorderStyle(RoundedBorder).
		BorderForeground(Primary).
		Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Muted).
		Padding(0, 2)

	ActiveCardStyle = lipgloss.NewStyle().
		Border(ThickBorder).
		BorderForeground(Primary).
		Padding(0, 2)

	StatusChecking = lipgloss.NewStyle().
		Foreground(Info).
		Bold(true)

	StatusFound = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	StatusWarning = lipgloss.NewStyle().
		Foreground(Warning)

	StatusError = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().
		Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
		Foreground(Muted)

	ActiveTabStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Background(lipgloss.Color("#37474F")).
		Padding(0, 2).
		Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true).
		MarginTop(1)

	InputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Secondary).
		Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Primary).
		Padding(0, 1)
}

// AccentName returns the name of the active accent.
func AccentName() string {
	return accentName
}

// SetAccent switches to the named accent. Unknown names leave it unchanged
// and return false.
func SetAccent(name string) bool {
	for _, a := range Accents {
		if a.Name == name {
			accentName = a.Name
			Primary = a.Color
			build()
			return true
		}
	}
	return false
}

// NextAccent cycles to the following accent and returns its name.
func NextAccent() string {
	next := 0
	for i, a := range Accents {
		if a.Name == accentName {
			next = (i + 1) % len(Accents)
			break
		}
	}
	SetAccent(Accents[next].Name)
	return accentName
}

// Helper functions
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "checking":
		return StatusChecking
	case "found":
		return StatusFound
	case "skipped":
		return StatusWarning
	case "error":
		return StatusError
	default:
		return MutedStyle
	}
}
