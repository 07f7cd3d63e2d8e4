package diagnostic

import (
	"strings"

	"github.com/abhisek/adept/internal/profile"
)

// styleConcepts are the ConceptTested values that mark a question as
// style-revealing.
var styleConcepts = map[string]bool{
	"Learning Style Detection":   true,
	"Depth Preference Detection": true,
	"Confidence Style":           true,
}

// selfReportPhrases mark free-form question text as a self-report
// (meta) question even without a style concept label.
var selfReportPhrases = []string{
	"i prefer",
	"help you understand",
	"i feel most confident",
	"i first want to",
	"when learning new concepts",
}

// IsMetaQuestion reports whether a question reveals learning style
// rather than testing knowledge.
func IsMetaQuestion(q Question) bool {
	if q.Topic == "Meta" {
		return true
	}
	if styleConcepts[q.ConceptTested] {
		return true
	}
	lower := strings.ToLower(q.Text)
	for _, phrase := range selfReportPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Keyword sets for classifying the text of a selected option. The set
// with the most hits wins; ties and zero hits fall back to the index
// tables below.
var styleKeywords = map[profile.Style][]string{
	profile.StyleVisual: {
		"diagram", "flowchart", "visual", "picture", "chart",
		"trace", "see", "layout", "draw",
	},
	profile.StyleConceptual: {
		"story", "stories", "analogy", "real-world", "everyday",
		"example", "why", "intuition", "relate", "situation",
	},
	profile.StyleExamFocused: {
		"exam", "definition", "formula", "formal", "memorize",
		"practice", "problems", "competitive", "steps",
	},
}

// Index fallback tables: option position → style/depth, used when
// keyword matching is inconclusive.
var indexToStyle = [4]profile.Style{
	profile.StyleConceptual,
	profile.StyleVisual,
	profile.StyleExamFocused,
	profile.StyleExamFocused,
}

var indexToDepth = [4]profile.Depth{
	profile.DepthIntuitionFirst,
	profile.DepthIntuitionFirst,
	profile.DepthFormulaFirst,
	profile.DepthFormulaFirst,
}

// classifyOption maps a selected option to a style and depth vote.
// Styles are ranked by keyword overlap with the option text; a unique
// maximum wins, otherwise the selected index decides. Depth always
// follows the index table: option ordering in meta questions is
// authored intuition-first to formula-first.
func classifyOption(optionText string, selected int) (profile.Style, profile.Depth) {
	lower := strings.ToLower(optionText)

	best := profile.Style("")
	bestHits, tied := 0, false
	for _, s := range []profile.Style{profile.StyleConceptual, profile.StyleVisual, profile.StyleExamFocused} {
		hits := 0
		for _, kw := range styleKeywords[s] {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		switch {
		case hits > bestHits:
			best, bestHits, tied = s, hits, false
		case hits == bestHits && hits > 0:
			tied = true
		}
	}

	idx := selected
	if idx < 0 || idx >= len(indexToStyle) {
		idx = 0
	}

	style := best
	if bestHits == 0 || tied {
		style = indexToStyle[idx]
	}
	return style, indexToDepth[idx]
}
