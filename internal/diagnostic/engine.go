package diagnostic

import (
	"fmt"

	"github.com/abhisek/adept/internal/profile"
)

// Pace thresholds in seconds. Pace is overwritten on every answer:
// last answer wins, no smoothing.
const (
	fastAnswerSecs = 15
	slowAnswerSecs = 45
)

// Engine turns diagnostic answers into profile updates using only
// deterministic rules. It never calls the text generator.
type Engine struct{}

// NewEngine creates a diagnostic engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Questions returns the bank for a free-text topic name. See
// NormalizeTopic for the resolution rules.
func (e *Engine) Questions(topic string) []Question {
	return Questions(topic)
}

// ProcessAnswer applies one answer to the profile. The profile is
// mutated in place; callers pass a clone when they need the previous
// state. A mismatched answer/question pairing is a programmer error
// and is rejected up front.
func (e *Engine) ProcessAnswer(ans Answer, q Question, p *profile.Profile) (Result, error) {
	if ans.QuestionID != q.ID {
		return Result{}, fmt.Errorf("answer %q does not match question %q", ans.QuestionID, q.ID)
	}
	if ans.SelectedIndex < 0 || ans.SelectedIndex >= len(q.Options) {
		return Result{}, fmt.Errorf("selected index %d out of range for question %q", ans.SelectedIndex, q.ID)
	}

	res := Result{Correct: ans.SelectedIndex == q.CorrectIndex}
	p.RecordAnswer(res.Correct, ans.TimeTakenSecs)

	if IsMetaQuestion(q) {
		style, depth := classifyOption(q.Options[ans.SelectedIndex], ans.SelectedIndex)
		p.AddVote(style, depth)
		// Live narration tracks the latest vote until finalization.
		p.Style = style
		p.Depth = depth
		res.StyleVoted = string(style)
		res.DepthVoted = string(depth)
	}

	switch {
	case ans.TimeTakenSecs < fastAnswerSecs:
		p.Pace = profile.PaceFast
	case ans.TimeTakenSecs > slowAnswerSecs:
		p.Pace = profile.PaceSlow
	default:
		p.Pace = profile.PaceMedium
	}

	if ans.ConfidenceRating != 0 {
		switch {
		case ans.ConfidenceRating <= 2:
			p.Confidence = profile.ConfidenceLow
		case ans.ConfidenceRating >= 4:
			p.Confidence = profile.ConfidenceHigh
		default:
			p.Confidence = profile.ConfidenceMedium
		}
	}

	return res, nil
}

// Finalize resolves the accumulated votes into the profile's style and
// depth. Call exactly once, at diagnostic completion, before the
// profile is used to pick a teaching style.
func (e *Engine) Finalize(p *profile.Profile) {
	p.FinalizeVotes()
}
