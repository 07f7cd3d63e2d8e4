package learn

import (
	"github.com/abhisek/adept/internal/access"
	"github.com/abhisek/adept/internal/adapt"
	"github.com/abhisek/adept/internal/content"
	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/abhisek/adept/internal/profile"
	sess "github.com/abhisek/adept/internal/session"
	"github.com/abhisek/adept/internal/tutor"
)

// sessionReadyMsg is sent when the session and diagnostic bank are ready.
type sessionReadyMsg struct {
	State     *sess.State
	Questions []diagnostic.Question
	Err       error
}

// explanationMsg is sent when the tutor has produced an explanation.
type explanationMsg struct {
	Exp *tutor.Explanation
	Err error
}

// simplifiedMsg carries an accessibility transform of the current
// explanation. Transforms fail soft, so there is no error field.
type simplifiedMsg struct {
	Res access.Result
}

// recapMsg is sent when a topic summary has been generated.
type recapMsg struct {
	Summary *content.Summary
	Err     error
}

// flashcardsMsg is sent when revision flashcards have been generated.
type flashcardsMsg struct {
	Cards []content.Flashcard
	Err   error
}

// practiceReadyMsg is sent when practice questions have been generated.
type practiceReadyMsg struct {
	Questions []content.MCQ
	Err       error
}

// adaptationMsg reports a completed adaptation pass. Updated is the
// profile after the pass; Changes lists the field mutations to log.
type adaptationMsg struct {
	Updated *profile.Profile
	Changes []adapt.Change
	Trigger adapt.Trigger
	Source  string // "llm" or "rule"

	// Note is the learner-facing message; empty when nothing changed.
	Note string
}

// assessmentMsg reports the check of a free-text follow-up answer.
// Before and Updated bracket any profile mutation the check made.
type assessmentMsg struct {
	A       adapt.Assessment
	Before  *profile.Profile
	Updated *profile.Profile
}

// summaryMsg carries the end-of-session wrap-up text.
type summaryMsg struct {
	Text string
}
