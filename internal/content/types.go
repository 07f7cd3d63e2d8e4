package content

import "github.com/abhisek/adept/internal/diagnostic"

// MCQ is one generated multiple-choice question.
type MCQ struct {
	ID           string
	Question     string
	Options      []string
	CorrectIndex int
	Explanation  string
	Difficulty   diagnostic.Difficulty
	Topic        string
}

// Flashcard is one front/back revision card.
type Flashcard struct {
	Front string
	Back  string
	Topic string
}

// Summary is a pace-adjusted topic summary.
type Summary struct {
	Topic     string
	Text      string
	KeyPoints []string
}

// MCQResult is the outcome of grading one submitted answer.
type MCQResult struct {
	Correct       bool
	CorrectIndex  int
	Explanation   string
	SelectedIndex int
}

// Grade checks a submitted answer against the question.
func Grade(q MCQ, selectedIndex int) MCQResult {
	return MCQResult{
		Correct:       selectedIndex == q.CorrectIndex,
		CorrectIndex:  q.CorrectIndex,
		Explanation:   q.Explanation,
		SelectedIndex: selectedIndex,
	}
}

// Config controls generation parameters for content.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MCQCount and FlashcardCount are the default batch sizes.
	MCQCount       int
	FlashcardCount int
}

// DefaultConfig returns content generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      2000,
		Temperature:    0.6,
		MCQCount:       5,
		FlashcardCount: 3,
	}
}
