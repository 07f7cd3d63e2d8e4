package tutor

import (
	"strings"

	"github.com/abhisek/adept/internal/profile"
)

// styleForProfile maps the detected learning style to a primary teaching style.
var styleForProfile = map[profile.Style]TeachingStyle{
	profile.StyleConceptual:  StyleStoryAnalogy,
	profile.StyleVisual:      StyleVisualMental,
	profile.StyleExamFocused: StyleExamSmart,
}

// SelectStyle picks the teaching style for an explanation. On a first
// explanation it follows the profile directly. On a re-explanation the
// previous style evidently did not land, so a different one is chosen:
// struggling learners get the most methodical style, formula-first
// learners get the definition-led style, everyone else gets narrative.
func SelectStyle(p *profile.Profile, reExplain bool, previous TeachingStyle) TeachingStyle {
	primary, ok := styleForProfile[p.Style]
	if !ok {
		primary = StyleStoryAnalogy
	}

	if !reExplain || previous == "" {
		return primary
	}

	if p.Confidence == profile.ConfidenceLow {
		if previous != StyleStepByStep {
			return StyleStepByStep
		}
		return StyleStoryAnalogy
	}
	if p.Depth == profile.DepthFormulaFirst {
		if previous != StyleExamSmart {
			return StyleExamSmart
		}
		return StyleStepByStep
	}
	if previous != StyleStoryAnalogy {
		return StyleStoryAnalogy
	}
	return StyleStepByStep
}

// styleInstructions are injected into the generation prompt per style.
var styleInstructions = map[TeachingStyle]string{
	StyleStoryAnalogy: `Use the STORY/ANALOGY approach:
- Start with a relatable story or real-world scenario
- Build intuition BEFORE introducing technical terms
- End with "So basically..." to summarize the core idea
- Keep it conversational and engaging`,

	StyleStepByStep: `Use the STEP-BY-STEP approach:
- Break the concept into numbered steps (Step 1, Step 2, ...)
- Each step builds on the previous
- Use clear transitions: "First... Then... Finally..."
- Include mental visualization cues`,

	StyleExamSmart: `Use the EXAM-SMART approach:
- Start with the formal definition
- List the key points examiners look for
- Mention common exam patterns for this topic
- Add a mnemonic if helpful
- Be concise and focused on what earns marks`,

	StyleVisualMental: `Use the VISUAL/MENTAL MODEL approach:
- Describe how to picture this concept
- Use text-based diagrams or structured layouts
- Use spatial language (left, right, above, below)
- Help the learner build a mental image`,
}

// analogy holds one canned analogy per framing.
type analogy struct {
	conceptual string
	visual     string
}

// analogies maps concept keywords to ready-made analogies. Checked by
// substring against the lowercased concept, so "deadlock detection"
// matches the "deadlock" entry.
var analogies = map[string]analogy{
	"deadlock": {
		conceptual: "Four cars meet at a narrow four-way crossing. Each one needs the car to its right to move first, so nobody moves at all. That standstill is deadlock.",
		visual:     "Picture four arrows arranged in a square, each pointing at the next. Every process holds one resource and waits on the next - a closed loop with no way out.",
	},
	"scheduling": {
		conceptual: "A busy train station has one platform and many waiting trains. The station master decides which train gets the platform next. Round-robin is a fair ticket queue - everyone gets a turn.",
		visual:     "Picture a numbered token queue at a service counter: each process takes a token and is served when its number comes up.",
	},
	"virtual memory": {
		conceptual: "A small wardrobe with a big storage trunk: you keep this season's clothes in the wardrobe (RAM) and swap the rest in from the trunk (disk) when the weather turns. That swap is paging.",
		visual:     "Picture a kitchen with a tiny counter: only the dishes being cooked sit on the counter, the rest of the ingredients wait in the pantry.",
	},
	"binary search": {
		conceptual: "Looking up a word in a dictionary, you never start at page one. You open the middle, decide which half holds your word, and repeat.",
		visual:     "Picture a number-guessing game where every guess eliminates half the remaining range.",
	},
	"stack": {
		conceptual: "A stack of plates: you always take from the top, so the first plate stacked is the last one used. Last in, first out.",
		visual:     "Picture rings on a peg - they go on one at a time and only come off in reverse order.",
	},
	"recursion": {
		conceptual: "A set of nesting dolls: to count them you open each doll and count the smaller one inside, until you hit the solid doll that opens no further. That innermost doll is the base case.",
		visual:     "Picture two mirrors facing each other - each reflection contains another, until the image becomes too small to see.",
	},
}

// AnalogyFor returns a canned analogy for the concept, framed for the
// learner's style. Returns "" when no analogy is known.
func AnalogyFor(concept string, style profile.Style) string {
	lower := strings.ToLower(concept)
	for key, a := range analogies {
		if strings.Contains(lower, key) {
			if style == profile.StyleVisual {
				return a.visual
			}
			return a.conceptual
		}
	}
	return ""
}
