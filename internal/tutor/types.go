package tutor

// TeachingStyle is the delivery approach for one explanation.
// Distinct from profile.Style: the profile records what the learner
// prefers, the teaching style is how a particular explanation is framed.
type TeachingStyle string

const (
	StyleStoryAnalogy TeachingStyle = "story_analogy"
	StyleStepByStep   TeachingStyle = "step_by_step"
	StyleExamSmart    TeachingStyle = "exam_smart"
	StyleVisualMental TeachingStyle = "visual_mental"
)

// Explanation is one profile-conditioned explanation of a concept.
type Explanation struct {
	Topic            string
	Concept          string
	StyleUsed        TeachingStyle
	Content          string
	Analogy          string // canned analogy for known concepts, empty otherwise
	KeyTakeaways     []string
	FollowUpQuestion string
	Adapted          bool // true when this is a re-explanation
}

// Config controls generation parameters for the tutor.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation parameters tuned for explanations:
// enough headroom for a full explanation, warm enough to vary phrasing.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.7,
	}
}
