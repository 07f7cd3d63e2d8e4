package stats

import (
	"strings"
	"testing"

	"github.com/abhisek/adept/internal/store"
)

func TestViewStates(t *testing.T) {
	s := New("u1", nil)

	if !strings.Contains(s.View(80, 24), "Loading") {
		t.Error("expected loading state before data arrives")
	}

	s.Update(statsLoadedMsg{})
	if !strings.Contains(s.View(80, 24), "Nothing here yet") {
		t.Error("expected empty state with no data")
	}

	s.Update(statsLoadedMsg{Err: errFake{}})
	if !strings.Contains(s.View(80, 24), "boom") {
		t.Error("expected error message in view")
	}
}

func TestViewRendersTopicsAndAdaptations(t *testing.T) {
	s := New("u1", nil)
	s.Update(statsLoadedMsg{
		Topics: []store.TopicStats{
			{Topic: "algorithms", Answered: 10, Correct: 7},
		},
		Adaptations: []store.AdaptationEventData{
			{Field: "pace", FromValue: "medium", ToValue: "slow", Trigger: "slow_response", Source: "rule"},
		},
	})

	view := s.View(100, 30)
	for _, want := range []string{"Topic accuracy", "algorithms", "7/10", "Recent adaptations", "pace", "slow_response"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPadTopic(t *testing.T) {
	if got := padTopic("os"); len(got) != 18 {
		t.Errorf("padded len = %d, want 18", len(got))
	}
	if got := padTopic("a very long topic name indeed"); len(got) != 18 {
		t.Errorf("truncated len = %d, want 18", len(got))
	}
}

type errFake struct{}

func (errFake) Error() string { return "boom" }
