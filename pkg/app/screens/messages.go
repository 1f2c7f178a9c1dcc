package screens

import "github.com/kerbaras/mangatrack/pkg/services"

// Define shared message for screen switching
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

// statusMsg reports the outcome of an action to the active screen.
type statusMsg struct {
	text string
	err  error
}

type checkStartedMsg struct {
	total int
}

// checkDoneMsg ends a check. mangaID is empty for a full library check.
type checkDoneMsg struct {
	mangaID string
	report  services.CheckReport
}
