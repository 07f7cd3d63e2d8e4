package adapt

import "github.com/abhisek/adept/internal/diagnostic"

// Trigger names the performance signal that prompted a profile update.
type Trigger string

const (
	TriggerWrongHard      Trigger = "wrong_hard"
	TriggerWrongExplained Trigger = "wrong_after_explanation"
	TriggerLowAccuracy    Trigger = "low_accuracy"
	TriggerSlowResponse   Trigger = "slow_response"
	TriggerLowConfidence  Trigger = "low_confidence"
	TriggerUserRequest    Trigger = "user_request"
)

// Event is one observed performance signal, either from an explicit
// trigger or an MCQ submission during practice.
type Event struct {
	Correct       bool
	Difficulty    diagnostic.Difficulty
	TimeTakenSecs float64
	Trigger       Trigger
}

// Change describes one field mutation applied by the rules, for
// user-facing change reasons.
type Change struct {
	Field  string
	From   string
	To     string
	Reason string
}

// Outcome reports what an adaptation pass did. StyleChanged is the
// authoritative "the teaching approach will change" signal; pace,
// confidence and depth changes are persisted but do not count as an
// adaptation.
type Outcome struct {
	StyleChanged bool
	Changes      []Change
	Reasoning    string
}

// Classification of a learner's free-text explanation.
type Classification string

const (
	ClassNotAttempted Classification = "not_attempted"
	ClassOffTopic     Classification = "off_topic"
	ClassIncorrect    Classification = "incorrect"
	ClassPartial      Classification = "partial"
	ClassCorrect      Classification = "correct"
)

// validClassification reports whether s is a known classification.
func validClassification(s string) bool {
	switch Classification(s) {
	case ClassNotAttempted, ClassOffTopic, ClassIncorrect, ClassPartial, ClassCorrect:
		return true
	}
	return false
}

// Assessment is the result of checking a free-text answer for
// misconceptions.
type Assessment struct {
	Classification Classification
	Feedback       string
	Misconception  string
	ProfileChanged bool
}
