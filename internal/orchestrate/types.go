package orchestrate

import (
	"context"

	"github.com/abhisek/adept/internal/session"
)

// Capability names one of the specialized services the orchestrator
// routes to.
type Capability string

const (
	CapDiagnostic Capability = "diagnostic" // diagnostics and profile updates
	CapTutor      Capability = "tutor"      // adaptive explanations
	CapContent    Capability = "content"    // practice content generation
	CapAccess     Capability = "access"     // accessibility transforms
)

// ValidCapability reports whether s names a registered capability kind.
func ValidCapability(s string) bool {
	switch Capability(s) {
	case CapDiagnostic, CapTutor, CapContent, CapAccess:
		return true
	}
	return false
}

// Decision is one routing outcome: which capability runs next and why.
type Decision struct {
	Capability Capability
	Action     string
	Reasoning  string
	Message    string // user-facing transition line
}

// Result is what a capability handler returns to the caller.
type Result struct {
	Text string // user-facing output
	Data any    // capability-specific payload (questions, cards, ...)
}

// Handler executes a routed action against the session.
type Handler interface {
	Execute(ctx context.Context, d Decision, st *session.State, userInput string) (*Result, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, d Decision, st *session.State, userInput string) (*Result, error)

func (f HandlerFunc) Execute(ctx context.Context, d Decision, st *session.State, userInput string) (*Result, error) {
	return f(ctx, d, st, userInput)
}
