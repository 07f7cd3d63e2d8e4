package access

import (
	"regexp"
	"strings"
)

var (
	sentenceEnd  = regexp.MustCompile(`(?m)([.!?])\s+`)
	conjunctions = regexp.MustCompile(`,\s*(?:and|but|or|however|therefore)\s+`)
)

// QuickSimplify is a rule-based simplification requiring no API call:
// long sentences are split at conjunctions and every sentence gets its
// own paragraph. Used as the fail-soft fallback when the LLM path fails.
func QuickSimplify(content string) string {
	if content == "" {
		return ""
	}

	marked := sentenceEnd.ReplaceAllString(content, "$1\n")
	var out []string
	for _, sentence := range strings.Split(marked, "\n") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if len(strings.Fields(sentence)) > 15 {
			for _, part := range conjunctions.Split(sentence, -1) {
				part = strings.TrimSpace(part)
				if part != "" {
					out = append(out, capitalize(part))
				}
			}
			continue
		}
		out = append(out, sentence)
	}
	return strings.Join(out, "\n\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
