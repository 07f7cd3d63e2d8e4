package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adept/internal/access"
	"github.com/abhisek/adept/internal/adapt"
	"github.com/abhisek/adept/internal/content"
	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/abhisek/adept/internal/orchestrate"
	"github.com/abhisek/adept/internal/router"
	"github.com/abhisek/adept/internal/screen"
	"github.com/abhisek/adept/internal/screens/home"
	"github.com/abhisek/adept/internal/screens/welcome"
	"github.com/abhisek/adept/internal/session"
	"github.com/abhisek/adept/internal/store"
	"github.com/abhisek/adept/internal/tutor"
	"github.com/abhisek/adept/internal/ui/layout"
)

// Deps carries the wired services the TUI screens need. Any field may
// be nil; screens degrade to their offline behaviors.
type Deps struct {
	UserID       string
	Sessions     *session.Manager
	Events       store.EventRepo
	Diagnostic   *diagnostic.Engine
	Adapt        *adapt.Engine
	Tutor        *tutor.Service
	Content      *content.Service
	Access       *access.Service
	Orchestrator *orchestrate.Orchestrator
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome splash.
func newAppModel(deps Deps) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(deps.UserID, deps.Sessions, deps.Events, deps.Diagnostic, deps.Adapt, deps.Tutor, deps.Content, deps.Access, deps.Orchestrator)
	})
	return AppModel{
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if active := m.router.Active(); active != nil {
				if ei, ok := active.(screen.EscInterceptor); ok {
					if handled, cmd := ei.OnEsc(); handled {
						return m, cmd
					}
				}
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok && hp.KeyHints() != nil {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
