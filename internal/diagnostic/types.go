package diagnostic

// Difficulty grades a diagnostic question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is one immutable entry in a diagnostic bank.
type Question struct {
	ID            string
	Text          string
	Options       []string
	CorrectIndex  int
	Difficulty    Difficulty
	Topic         string
	ConceptTested string
}

// Answer is one learner submission for a diagnostic question.
type Answer struct {
	QuestionID    string
	SelectedIndex int
	TimeTakenSecs float64

	// ConfidenceRating is an optional 1-5 self-rating; 0 means absent.
	ConfidenceRating int
}

// Result is the outcome of processing one answer.
type Result struct {
	Correct bool

	// StyleVoted and DepthVoted are set when the question was a meta
	// (style-revealing) question and a vote was recorded.
	StyleVoted string
	DepthVoted string
}
