package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adept/internal/screen"
	"github.com/abhisek/adept/internal/store"
	"github.com/abhisek/adept/internal/ui/components"
	"github.com/abhisek/adept/internal/ui/theme"
)

type statsLoadedMsg struct {
	Topics      []store.TopicStats
	Adaptations []store.AdaptationEventData
	Err         error
}

// StatsScreen shows per-topic accuracy and recent profile adaptations.
type StatsScreen struct {
	userID    string
	eventRepo store.EventRepo

	topics      []store.TopicStats
	adaptations []store.AdaptationEventData
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(userID string, eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{
		userID:    userID,
		eventRepo: eventRepo,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.eventRepo == nil {
			return statsLoadedMsg{Err: fmt.Errorf("no storage configured")}
		}
		ctx := context.Background()

		topics, err := s.eventRepo.TopicAccuracy(ctx, s.userID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		adaptations, err := s.eventRepo.RecentAdaptations(ctx, s.userID, store.QueryOpts{Limit: 10})
		if err != nil {
			return statsLoadedMsg{Topics: topics}
		}
		return statsLoadedMsg{Topics: topics, Adaptations: adaptations}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.topics = msg.Topics
			s.adaptations = msg.Adaptations
		}
		s.loaded = true
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}
	if len(s.topics) == 0 && len(s.adaptations) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Start a session!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.topics) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Topic accuracy")))
		b.WriteString("\n\n")

		for _, t := range s.topics {
			pct := 0.0
			if t.Answered > 0 {
				pct = float64(t.Correct) / float64(t.Answered)
			}
			bar := components.NewProgressBar(padTopic(t.Topic), pct, true, 30)
			line := fmt.Sprintf("%s  %d/%d", bar.View(), t.Correct, t.Answered)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
	}

	if len(s.adaptations) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Recent adaptations")))
		b.WriteString("\n\n")

		for _, a := range s.adaptations {
			line := fmt.Sprintf("%s: %s → %s  (%s, %s)",
				a.Field, a.FromValue, a.ToValue, a.Trigger, a.Source)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// padTopic keeps bar labels aligned without truncating short names.
func padTopic(topic string) string {
	if len(topic) > 18 {
		return topic[:18]
	}
	return fmt.Sprintf("%-18s", topic)
}
