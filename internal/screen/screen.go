package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adept/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that want to
// surface a short status string in the header (e.g. the learner's
// detected style and running accuracy).
type StatusProvider interface {
	Status() string
}

// EscInterceptor is an optional interface for screens that need to see
// Esc before the router pops them, e.g. to confirm ending a session.
// Returning handled=true suppresses the default pop.
type EscInterceptor interface {
	OnEsc() (handled bool, cmd tea.Cmd)
}
