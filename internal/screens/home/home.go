package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adept/internal/access"
	"github.com/abhisek/adept/internal/adapt"
	"github.com/abhisek/adept/internal/content"
	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/abhisek/adept/internal/orchestrate"
	"github.com/abhisek/adept/internal/router"
	"github.com/abhisek/adept/internal/screen"
	"github.com/abhisek/adept/internal/screens/learn"
	"github.com/abhisek/adept/internal/screens/stats"
	"github.com/abhisek/adept/internal/screens/welcome"
	"github.com/abhisek/adept/internal/session"
	"github.com/abhisek/adept/internal/store"
	"github.com/abhisek/adept/internal/tutor"
	"github.com/abhisek/adept/internal/ui/components"
	"github.com/abhisek/adept/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	recentLine string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Services may be nil when the store or
// provider could not be set up; the learn screen reports that itself.
func New(userID string, sessions *session.Manager, events store.EventRepo, diag *diagnostic.Engine, adaptEng *adapt.Engine, tutorSvc *tutor.Service, contentSvc *content.Service, accessSvc *access.Service, orch *orchestrate.Orchestrator) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START LEARNING", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: learn.New(learn.Deps{
						UserID:       userID,
						Sessions:     sessions,
						Events:       events,
						Diagnostic:   diag,
						Adapt:        adaptEng,
						Tutor:        tutorSvc,
						Content:      contentSvc,
						Access:       accessSvc,
						Orchestrator: orch,
					}),
				}
			}
		}},
		{Label: "MY STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(userID, events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		recentLine: recentTopicsLine(userID, events),
	}
}

// recentTopicsLine summarizes prior topic accuracy for the subtitle.
func recentTopicsLine(userID string, events store.EventRepo) string {
	if events == nil {
		return ""
	}
	topics, err := events.TopicAccuracy(context.Background(), userID)
	if err != nil || len(topics) == 0 {
		return ""
	}
	var parts []string
	for i, t := range topics {
		if i >= 3 {
			break
		}
		pct := 0
		if t.Answered > 0 {
			pct = t.Correct * 100 / t.Answered
		}
		parts = append(parts, fmt.Sprintf("%s %d%%", t.Topic, pct))
	}
	return "Recent: " + strings.Join(parts, "  ")
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, welcome.RenderBanner(width))

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Adaptive tutoring in your terminal")
	sections = append(sections, tagline)

	if h.recentLine != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(h.recentLine))
	}

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
