package profile

import (
	"fmt"
	"strings"
)

var intentGuidance = map[Intent]string{
	IntentExam:       "preparing for exams - focus on definitions, keywords, patterns",
	IntentConceptual: "deep understanding - focus on intuition, reasoning, analogies",
	IntentInterview:  "interview preparation - focus on trade-offs, edge cases, real-world use",
	IntentRevision:   "quick revision - focus on concise summaries",
}

var confidenceTone = map[Confidence]string{
	ConfidenceLow:    "Use a gentle, encouraging tone. Take smaller steps. Add reassurance.",
	ConfidenceMedium: "Use a balanced tone with moderate pacing.",
	ConfidenceHigh:   "Use a direct tone. Move faster. Add challenge questions.",
}

var styleGuidance = map[Style]string{
	StyleConceptual:  "prefers stories, analogies, and real-world examples; connect new concepts to familiar situations",
	StyleVisual:      "visual learner - include text diagrams, flowcharts, tables, and spatial layouts they can picture",
	StyleExamFocused: "prefers formal definitions, key terms, exam patterns, and mnemonics",
}

// PromptContext renders the profile as a prompt fragment for the text
// generator. Every downstream generation call is conditioned on this.
func (p *Profile) PromptContext() string {
	topics := "none yet"
	if len(p.TopicsExplored) > 0 {
		topics = strings.Join(p.TopicsExplored, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "LEARNER PROFILE:\n")
	fmt.Fprintf(&b, "- Learning style: %s (%s)\n", p.Style, styleGuidance[p.Style])
	fmt.Fprintf(&b, "- Learning intent: %s (%s)\n", p.Intent, intentGuidance[p.Intent])
	fmt.Fprintf(&b, "- Pace: %s\n", p.Pace)
	fmt.Fprintf(&b, "- Confidence: %s\n", p.Confidence)
	fmt.Fprintf(&b, "- Tone: %s\n", confidenceTone[p.Confidence])
	fmt.Fprintf(&b, "- Depth preference: %s\n", p.Depth)
	fmt.Fprintf(&b, "- Accuracy: %.0f%%\n", p.AccuracyRate()*100)
	fmt.Fprintf(&b, "- Topics explored: %s\n", topics)
	fmt.Fprintf(&b, "- Known misconceptions: %d\n", len(p.Misconceptions))
	return b.String()
}
