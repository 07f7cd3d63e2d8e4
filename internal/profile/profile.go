package profile

import "time"

// Style is how the learner prefers concepts framed.
type Style string

const (
	StyleConceptual  Style = "conceptual"
	StyleVisual      Style = "visual"
	StyleExamFocused Style = "exam-focused"
)

// styleOrder is the deterministic tie-break order for vote finalization.
var styleOrder = []Style{StyleConceptual, StyleVisual, StyleExamFocused}

// Pace is the learner's speed preference.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceMedium Pace = "medium"
	PaceFast   Pace = "fast"
)

// Confidence is the learner's self-assessed comfort in the subject.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Depth is whether explanations lead with intuition or formalism.
type Depth string

const (
	DepthIntuitionFirst Depth = "intuition-first"
	DepthFormulaFirst   Depth = "formula-first"
)

var depthOrder = []Depth{DepthIntuitionFirst, DepthFormulaFirst}

// Intent is why the learner is studying. Set once, explicitly, by the
// learner; independent from the detected Style.
type Intent string

const (
	IntentExam       Intent = "exam"
	IntentConceptual Intent = "conceptual"
	IntentInterview  Intent = "interview"
	IntentRevision   Intent = "revision"
)

// Misconception records one detected misunderstanding.
type Misconception struct {
	Topic       string    `json:"topic"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	DetectedAt  time.Time `json:"detected_at"`
}

// Profile is the mutable cognitive state of one learner. It is owned by
// the session that holds it; callers that need to compare before/after
// state must work on a Clone, never an alias.
type Profile struct {
	Style      Style      `json:"learning_style"`
	Pace       Pace       `json:"pace"`
	Confidence Confidence `json:"confidence"`
	Depth      Depth      `json:"depth_preference"`
	Intent     Intent     `json:"goal_orientation"`

	// IntentSet marks that Intent was chosen by the learner rather than
	// defaulted. The learner is asked once; the answer carries across
	// sessions with the persisted profile.
	IntentSet bool `json:"intent_set"`

	// Vote tallies accumulated across diagnostic answers. Entries only
	// ever increase; reset happens only by creating a new Profile.
	StyleVotes map[Style]int `json:"style_votes"`
	DepthVotes map[Depth]int `json:"depth_votes"`

	Misconceptions []Misconception `json:"misconceptions"`
	TopicsExplored []string        `json:"topics_explored"`

	CorrectAnswers  int     `json:"correct_answers"`
	TotalAnswers    int     `json:"total_answers"`
	AvgResponseSecs float64 `json:"avg_response_secs"`
}

// New returns a Profile with neutral defaults and zeroed vote tallies.
func New() *Profile {
	return &Profile{
		Style:      StyleConceptual,
		Pace:       PaceMedium,
		Confidence: ConfidenceMedium,
		Depth:      DepthIntuitionFirst,
		Intent:     IntentConceptual,
		StyleVotes: map[Style]int{
			StyleConceptual:  0,
			StyleVisual:      0,
			StyleExamFocused: 0,
		},
		DepthVotes: map[Depth]int{
			DepthIntuitionFirst: 0,
			DepthFormulaFirst:   0,
		},
	}
}

// Clone returns a deep copy. Sessions hand out clones so that profile
// mutations always flow back through the session manager.
func (p *Profile) Clone() *Profile {
	c := *p
	c.StyleVotes = make(map[Style]int, len(p.StyleVotes))
	for k, v := range p.StyleVotes {
		c.StyleVotes[k] = v
	}
	c.DepthVotes = make(map[Depth]int, len(p.DepthVotes))
	for k, v := range p.DepthVotes {
		c.DepthVotes[k] = v
	}
	c.Misconceptions = append([]Misconception(nil), p.Misconceptions...)
	c.TopicsExplored = append([]string(nil), p.TopicsExplored...)
	return &c
}

// AccuracyRate is correct/total, or 0 when nothing has been answered.
func (p *Profile) AccuracyRate() float64 {
	if p.TotalAnswers == 0 {
		return 0.0
	}
	return float64(p.CorrectAnswers) / float64(p.TotalAnswers)
}

// RecordAnswer updates the answer counters and the running mean of
// response time using the incremental formula
// (old_mean*(n-1) + sample) / n.
func (p *Profile) RecordAnswer(correct bool, seconds float64) {
	p.TotalAnswers++
	if correct {
		p.CorrectAnswers++
	}
	n := float64(p.TotalAnswers)
	p.AvgResponseSecs = (p.AvgResponseSecs*(n-1) + seconds) / n
}

// AddVote records one style vote and, when depth is non-empty, one
// depth vote. Unknown values are ignored rather than grown into the
// tally, keeping the vote domain fixed.
func (p *Profile) AddVote(style Style, depth Depth) {
	if _, ok := p.StyleVotes[style]; ok {
		p.StyleVotes[style]++
	}
	if depth == "" {
		return
	}
	if _, ok := p.DepthVotes[depth]; ok {
		p.DepthVotes[depth]++
	}
}

// FinalizeVotes sets Style and Depth to the argmax of their vote
// tallies. A tally with no nonzero entry leaves the prior value alone.
// Ties break by fixed priority: conceptual > visual > exam-focused and
// intuition-first > formula-first. Idempotent when no votes arrive in
// between calls.
func (p *Profile) FinalizeVotes() {
	best, count := p.Style, 0
	for _, s := range styleOrder {
		if p.StyleVotes[s] > count {
			best, count = s, p.StyleVotes[s]
		}
	}
	if count > 0 {
		p.Style = best
	}

	bestDepth, depthCount := p.Depth, 0
	for _, d := range depthOrder {
		if p.DepthVotes[d] > depthCount {
			bestDepth, depthCount = d, p.DepthVotes[d]
		}
	}
	if depthCount > 0 {
		p.Depth = bestDepth
	}
}

// SetIntent records the learner's explicitly chosen study goal and
// marks it as set so the question is never asked again.
func (p *Profile) SetIntent(i Intent) {
	p.Intent = i
	p.IntentSet = true
}

// AddMisconception appends a detected misconception. The list is
// append-only.
func (p *Profile) AddMisconception(topic, description, severity string, at time.Time) {
	p.Misconceptions = append(p.Misconceptions, Misconception{
		Topic:       topic,
		Description: description,
		Severity:    severity,
		DetectedAt:  at,
	})
}

// StepConfidenceDown lowers confidence one level; low stays low.
func StepConfidenceDown(c Confidence) Confidence {
	switch c {
	case ConfidenceHigh:
		return ConfidenceMedium
	case ConfidenceMedium:
		return ConfidenceLow
	default:
		return ConfidenceLow
	}
}

// StepConfidenceUp raises confidence one level; high stays high.
func StepConfidenceUp(c Confidence) Confidence {
	switch c {
	case ConfidenceLow:
		return ConfidenceMedium
	case ConfidenceMedium:
		return ConfidenceHigh
	default:
		return ConfidenceHigh
	}
}

// ValidStyle reports whether s names a known learning style.
func ValidStyle(s string) bool {
	switch Style(s) {
	case StyleConceptual, StyleVisual, StyleExamFocused:
		return true
	}
	return false
}

// ValidPace reports whether s names a known pace.
func ValidPace(s string) bool {
	switch Pace(s) {
	case PaceSlow, PaceMedium, PaceFast:
		return true
	}
	return false
}

// ValidConfidence reports whether s names a known confidence level.
func ValidConfidence(s string) bool {
	switch Confidence(s) {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

// ValidDepth reports whether s names a known depth preference.
func ValidDepth(s string) bool {
	switch Depth(s) {
	case DepthIntuitionFirst, DepthFormulaFirst:
		return true
	}
	return false
}

// ValidIntent reports whether s names a known learning intent.
func ValidIntent(s string) bool {
	switch Intent(s) {
	case IntentExam, IntentConceptual, IntentInterview, IntentRevision:
		return true
	}
	return false
}
