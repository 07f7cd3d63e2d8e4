package learn

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adept/internal/access"
	"github.com/abhisek/adept/internal/adapt"
	"github.com/abhisek/adept/internal/content"
	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/abhisek/adept/internal/orchestrate"
	"github.com/abhisek/adept/internal/profile"
	"github.com/abhisek/adept/internal/router"
	"github.com/abhisek/adept/internal/screen"
	sess "github.com/abhisek/adept/internal/session"
	"github.com/abhisek/adept/internal/store"
	"github.com/abhisek/adept/internal/tutor"
	"github.com/abhisek/adept/internal/ui/components"
	"github.com/abhisek/adept/internal/ui/layout"
)

// stage is the learn screen's position in the session flow.
type stage int

const (
	stageTopic stage = iota
	stageIntent
	stageLoading
	stageDiagQuestion
	stageDiagConfidence
	stageDiagFeedback
	stageExplain
	stageFollowUp
	stageFollowUpFeedback
	stageRecap
	stageFlashcards
	stagePracticeQuestion
	stagePracticeFeedback
	stageReview
	stageQuitConfirm
	stageError
)

// Deps carries the services the learn flow drives. Tutor, Content,
// Access and the adaptation engine's LLM path all need a configured
// provider; when they are nil the screen reports it instead of running.
type Deps struct {
	UserID       string
	Sessions     *sess.Manager
	Events       store.EventRepo
	Diagnostic   *diagnostic.Engine
	Adapt        *adapt.Engine
	Tutor        *tutor.Service
	Content      *content.Service
	Access       *access.Service
	Orchestrator *orchestrate.Orchestrator
}

// LearnScreen runs one full tutoring session: topic entry, diagnostic,
// adaptive explanations, practice, and the end-of-session review.
type LearnScreen struct {
	deps Deps

	stage      stage
	prevStage  stage // restored when quit confirm is dismissed
	loadingMsg string
	errMsg     string

	topicInput components.TextInput
	topic      string

	st   *sess.State
	prof *profile.Profile

	// diagnostic
	diagQs        []diagnostic.Question
	diagIdx       int
	selected      int
	lastResult    diagnostic.Result
	lastQuestion  diagnostic.Question
	weakConcept   string
	questionStart time.Time

	// learning
	exp        *tutor.Explanation
	expText    string // what is displayed; swapped by accessibility transform
	simplified bool
	adaptNote  string
	transition string

	// follow-up question
	followInput components.TextInput
	assessment  adapt.Assessment

	// recap and flashcards
	recap       *content.Summary
	cards       []content.Flashcard
	cardIdx     int
	cardFlipped bool

	// practice
	practiceQs      []content.MCQ
	practiceIdx     int
	practiceCorrect int
	lastGrade       content.MCQResult

	summaryText string
}

// intentChoice is one option of the one-time study goal question.
type intentChoice struct {
	Value profile.Intent
	Label string
}

// intentChoices is presented once, on the learner's first session, and
// the answer sticks to the persisted profile.
var intentChoices = []intentChoice{
	{profile.IntentExam, "Preparing for an exam"},
	{profile.IntentConceptual, "Building deep understanding"},
	{profile.IntentInterview, "Getting ready for interviews"},
	{profile.IntentRevision, "Revising what I once knew"},
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.StatusProvider = (*LearnScreen)(nil)
var _ screen.EscInterceptor = (*LearnScreen)(nil)

// New creates the learn screen at the topic prompt.
func New(deps Deps) *LearnScreen {
	return &LearnScreen{
		deps:       deps,
		stage:      stageTopic,
		topicInput: components.NewTextInput("e.g. operating systems, data structures...", false, 40),
	}
}

func (l *LearnScreen) Init() tea.Cmd {
	return l.topicInput.Init()
}

func (l *LearnScreen) Title() string {
	if l.topic == "" {
		return "Learn"
	}
	return "Learn: " + l.topic
}

// Status surfaces the live profile in the header.
func (l *LearnScreen) Status() string {
	if l.prof == nil {
		return ""
	}
	if l.prof.TotalAnswers == 0 {
		return fmt.Sprintf("%s · %s", l.prof.Style, l.prof.Pace)
	}
	return fmt.Sprintf("%s · %s · %.0f%%", l.prof.Style, l.prof.Pace, l.prof.AccuracyRate()*100)
}

func (l *LearnScreen) KeyHints() []layout.KeyHint {
	switch l.stage {
	case stageTopic:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case stageIntent:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Choose"},
			{Key: "↑↓ Enter", Description: "Select"},
		}
	case stageDiagQuestion, stagePracticeQuestion:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Select"},
			{Key: "Esc", Description: "End"},
		}
	case stageDiagConfidence:
		return []layout.KeyHint{
			{Key: "1-5", Description: "Rate confidence"},
			{Key: "Enter", Description: "Skip"},
		}
	case stageDiagFeedback, stagePracticeFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case stageExplain:
		hints := []layout.KeyHint{
			{Key: "P", Description: "Practice"},
			{Key: "E", Description: "Explain differently"},
			{Key: "A", Description: "Simplify"},
			{Key: "R", Description: "Recap"},
			{Key: "F", Description: "Flashcards"},
		}
		if l.exp != nil && l.exp.FollowUpQuestion != "" {
			hints = append(hints, layout.KeyHint{Key: "T", Description: "Try the question"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "End"})
	case stageFollowUp:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case stageFollowUpFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back to lesson"},
		}
	case stageRecap, stageFlashcards:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to lesson"},
		}
	case stageReview:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	case stageQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return nil
}

// OnEsc intercepts the global Esc so an active session gets a confirm
// dialog and a proper end event instead of being abandoned.
func (l *LearnScreen) OnEsc() (bool, tea.Cmd) {
	switch l.stage {
	case stageTopic, stageError:
		return false, nil
	case stageFollowUp, stageFollowUpFeedback:
		l.stage = stageExplain
		return true, nil
	case stageReview:
		l.endSession()
		return false, nil
	case stageQuitConfirm:
		l.stage = l.prevStage
		return true, nil
	}
	l.prevStage = l.stage
	l.stage = stageQuitConfirm
	return true, nil
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return l.handleSessionReady(msg)
	case explanationMsg:
		return l.handleExplanation(msg)
	case simplifiedMsg:
		l.expText = msg.Res.Content
		l.simplified = true
		l.stage = stageExplain
		return l, nil
	case recapMsg:
		if msg.Err != nil {
			l.adaptNote = "Recap unavailable: " + msg.Err.Error()
			l.stage = stageExplain
			return l, nil
		}
		l.recap = msg.Summary
		l.stage = stageRecap
		return l, nil
	case flashcardsMsg:
		if msg.Err != nil {
			l.adaptNote = "Flashcards unavailable: " + msg.Err.Error()
			l.stage = stageExplain
			return l, nil
		}
		l.cards = msg.Cards
		l.cardIdx = 0
		l.cardFlipped = false
		l.stage = stageFlashcards
		return l, nil
	case assessmentMsg:
		return l.handleAssessment(msg)
	case practiceReadyMsg:
		return l.handlePracticeReady(msg)
	case adaptationMsg:
		return l.handleAdaptation(msg)
	case summaryMsg:
		l.summaryText = msg.Text
		l.stage = stageReview
		return l, nil
	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	if l.stage == stageTopic {
		var cmd tea.Cmd
		l.topicInput, cmd = l.topicInput.Update(msg)
		return l, cmd
	}
	if l.stage == stageFollowUp {
		var cmd tea.Cmd
		l.followInput, cmd = l.followInput.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch l.stage {
	case stageError:
		return l, func() tea.Msg { return router.PopScreenMsg{} }

	case stageQuitConfirm:
		switch key {
		case "y", "Y":
			l.endSession()
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N":
			l.stage = l.prevStage
		}
		return l, nil

	case stageTopic:
		if key == "enter" {
			topic := l.topicInput.Value()
			if topic == "" {
				return l, nil
			}
			l.topic = topic
			l.loading("Preparing your diagnostic...")
			return l, l.startSession(topic)
		}
		var cmd tea.Cmd
		l.topicInput, cmd = l.topicInput.Update(msg)
		return l, cmd

	case stageIntent:
		return l.handleChoiceKey(key, len(intentChoices), l.submitIntent)

	case stageDiagQuestion:
		return l.handleChoiceKey(key, len(l.currentDiagQuestion().Options), func() (screen.Screen, tea.Cmd) {
			l.stage = stageDiagConfidence
			return l, nil
		})

	case stageDiagConfidence:
		switch key {
		case "1", "2", "3", "4", "5":
			return l.submitDiagAnswer(int(key[0] - '0'))
		case "enter":
			return l.submitDiagAnswer(0)
		}
		return l, nil

	case stageDiagFeedback:
		return l.advanceDiagnostic()

	case stageExplain:
		switch key {
		case "p", "P":
			return l.startPractice()
		case "e", "E":
			if l.exp == nil {
				return l, nil
			}
			l.loading("Trying a different angle...")
			return l, l.explainCmd(true, l.exp.StyleUsed)
		case "a", "A":
			if l.deps.Access == nil || l.expText == "" {
				return l, nil
			}
			l.loading("Simplifying...")
			return l, l.simplifyCmd(l.expText)
		case "r", "R":
			if l.deps.Content == nil {
				return l, nil
			}
			l.loading("Writing a recap...")
			return l, l.recapCmd()
		case "f", "F":
			if l.deps.Content == nil {
				return l, nil
			}
			l.loading("Making flashcards...")
			return l, l.flashcardsCmd()
		case "t", "T":
			if l.exp == nil || l.exp.FollowUpQuestion == "" || l.deps.Adapt == nil {
				return l, nil
			}
			l.followInput = components.NewTextInput("type your answer in your own words...", false, 200)
			l.stage = stageFollowUp
			return l, l.followInput.Init()
		}
		return l, nil

	case stageFollowUp:
		if key == "enter" {
			text := l.followInput.Value()
			if text == "" {
				return l, nil
			}
			_ = l.deps.Sessions.RecordInteraction(l.st.ID)
			l.loading("Reading your answer...")
			return l, l.assessCmd(text)
		}
		var cmd tea.Cmd
		l.followInput, cmd = l.followInput.Update(msg)
		return l, cmd

	case stageFollowUpFeedback:
		l.stage = stageExplain
		return l, nil

	case stageRecap:
		l.stage = stageExplain
		return l, nil

	case stageFlashcards:
		switch key {
		case "enter", "q":
			l.stage = stageExplain
		case " ", "space":
			l.cardFlipped = !l.cardFlipped
		case "right", "l", "n":
			if l.cardIdx < len(l.cards)-1 {
				l.cardIdx++
				l.cardFlipped = false
			}
		case "left", "h":
			if l.cardIdx > 0 {
				l.cardIdx--
				l.cardFlipped = false
			}
		}
		return l, nil

	case stagePracticeQuestion:
		return l.handleChoiceKey(key, len(l.currentPracticeQuestion().Options), l.submitPracticeAnswer)

	case stagePracticeFeedback:
		return l.advancePractice()

	case stageReview:
		if key == "enter" || key == "q" {
			l.endSession()
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return l, nil
	}

	return l, nil
}

// handleChoiceKey implements the shared option-picking keys: number
// shortcuts submit directly, arrows move, enter submits the selection.
func (l *LearnScreen) handleChoiceKey(key string, numOptions int, submit func() (screen.Screen, tea.Cmd)) (screen.Screen, tea.Cmd) {
	switch key {
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < numOptions {
			l.selected = idx
			return submit()
		}
	case "up", "k":
		if l.selected > 0 {
			l.selected--
		}
	case "down", "j":
		if l.selected < numOptions-1 {
			l.selected++
		}
	case "enter":
		return submit()
	}
	return l, nil
}

// --- session lifecycle ---

func (l *LearnScreen) loading(msg string) {
	l.stage = stageLoading
	l.loadingMsg = msg
}

func (l *LearnScreen) fail(err error) (screen.Screen, tea.Cmd) {
	l.errMsg = err.Error()
	l.stage = stageError
	return l, nil
}

// refresh re-reads the session state clone after manager-side mutation.
func (l *LearnScreen) refresh() {
	if l.st == nil {
		return
	}
	if st, err := l.deps.Sessions.Get(l.st.ID); err == nil {
		l.st = st
	}
}

func (l *LearnScreen) endSession() {
	if l.st == nil {
		return
	}
	_ = l.deps.Sessions.Delete(l.st.ID)
	l.st = nil
}

func (l *LearnScreen) startSession(topic string) tea.Cmd {
	deps := l.deps
	return func() tea.Msg {
		ctx := context.Background()
		st, err := deps.Sessions.Create(ctx, deps.UserID)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		if err := deps.Sessions.SetTopic(st.ID, topic); err != nil {
			return sessionReadyMsg{Err: err}
		}
		if err := deps.Sessions.SetPhase(st.ID, sess.PhaseDiagnostic); err != nil {
			return sessionReadyMsg{Err: err}
		}
		st, err = deps.Sessions.Get(st.ID)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		return sessionReadyMsg{State: st, Questions: deps.Diagnostic.Questions(topic)}
	}
}

func (l *LearnScreen) handleSessionReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		return l.fail(msg.Err)
	}
	l.st = msg.State
	l.prof = msg.State.Profile
	l.diagQs = msg.Questions
	l.diagIdx = 0
	l.selected = 0
	if !l.prof.IntentSet {
		l.stage = stageIntent
		return l, nil
	}
	l.stage = stageDiagQuestion
	l.questionStart = time.Now()
	return l, nil
}

// submitIntent records the learner's one-time study goal and moves on
// to the diagnostic.
func (l *LearnScreen) submitIntent() (screen.Screen, tea.Cmd) {
	l.prof.SetIntent(intentChoices[l.selected].Value)
	_ = l.deps.Sessions.SyncProfile(l.st.ID, l.prof)
	l.refresh()
	l.selected = 0
	l.stage = stageDiagQuestion
	l.questionStart = time.Now()
	return l, nil
}

// --- diagnostic ---

func (l *LearnScreen) currentDiagQuestion() diagnostic.Question {
	if l.diagIdx < len(l.diagQs) {
		return l.diagQs[l.diagIdx]
	}
	return diagnostic.Question{}
}

func (l *LearnScreen) submitDiagAnswer(confidence int) (screen.Screen, tea.Cmd) {
	q := l.currentDiagQuestion()
	ans := diagnostic.Answer{
		QuestionID:       q.ID,
		SelectedIndex:    l.selected,
		TimeTakenSecs:    time.Since(l.questionStart).Seconds(),
		ConfidenceRating: confidence,
	}

	res, err := l.deps.Diagnostic.ProcessAnswer(ans, q, l.prof)
	if err != nil {
		return l.fail(err)
	}
	l.lastResult = res
	l.lastQuestion = q
	if !res.Correct && !diagnostic.IsMetaQuestion(q) {
		l.weakConcept = q.ConceptTested
	}

	_ = l.deps.Sessions.RecordDiagnostic(l.st.ID, q.ID)
	_ = l.deps.Sessions.SyncProfile(l.st.ID, l.prof)
	l.logAnswer(q.ID, q.ConceptTested, string(q.Difficulty), res.Correct, ans)

	l.stage = stageDiagFeedback
	return l, nil
}

func (l *LearnScreen) advanceDiagnostic() (screen.Screen, tea.Cmd) {
	l.diagIdx++
	l.selected = 0
	if l.diagIdx < len(l.diagQs) {
		l.stage = stageDiagQuestion
		l.questionStart = time.Now()
		return l, nil
	}

	// Diagnostic complete: resolve votes, move to learning.
	l.deps.Diagnostic.Finalize(l.prof)
	_ = l.deps.Sessions.SyncProfile(l.st.ID, l.prof)
	_ = l.deps.Sessions.SetPhase(l.st.ID, sess.PhaseLearning)
	l.refresh()

	if l.deps.Orchestrator != nil {
		d := l.deps.Orchestrator.Decide(context.Background(), l.st, "", "explain")
		l.transition = d.Message
	}

	l.loading("Preparing your explanation...")
	return l, l.explainCmd(false, "")
}

// --- learning ---

// concept picks what to explain: the concept behind the last missed
// diagnostic question, or the topic itself when nothing was missed.
func (l *LearnScreen) concept() string {
	if l.weakConcept != "" {
		return l.weakConcept
	}
	return l.topic
}

func (l *LearnScreen) explainCmd(reExplain bool, prev tutor.TeachingStyle) tea.Cmd {
	deps := l.deps
	input := tutor.ExplainInput{
		Topic:         l.topic,
		Concept:       l.concept(),
		Profile:       l.prof.Clone(),
		ReExplain:     reExplain,
		PreviousStyle: prev,
	}
	return func() tea.Msg {
		if deps.Tutor == nil {
			return explanationMsg{Err: fmt.Errorf("no text generator configured; set an API key (e.g. ADEPT_ANTHROPIC_API_KEY)")}
		}
		exp, err := deps.Tutor.Explain(context.Background(), input)
		return explanationMsg{Exp: exp, Err: err}
	}
}

func (l *LearnScreen) handleExplanation(msg explanationMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		return l.fail(msg.Err)
	}
	l.exp = msg.Exp
	l.expText = msg.Exp.Content
	l.simplified = false
	l.stage = stageExplain

	_ = l.deps.Sessions.RecordExplanation(l.st.ID, msg.Exp.Concept)

	// A requested re-explanation is a style adaptation by user request.
	if msg.Exp.Adapted {
		l.logAdaptation(string(adapt.TriggerUserRequest), "rule", "teaching_style",
			string(l.prof.Style), string(msg.Exp.StyleUsed), "learner asked for a different explanation")
	}
	l.refresh()
	return l, nil
}

func (l *LearnScreen) simplifyCmd(text string) tea.Cmd {
	deps := l.deps
	return func() tea.Msg {
		res := deps.Access.Transform(context.Background(), text, access.ModeSimplified)
		return simplifiedMsg{Res: res}
	}
}

func (l *LearnScreen) recapCmd() tea.Cmd {
	deps := l.deps
	topic := l.topic
	prof := l.prof.Clone()
	return func() tea.Msg {
		s, err := deps.Content.GenerateSummary(context.Background(), topic, prof)
		return recapMsg{Summary: s, Err: err}
	}
}

func (l *LearnScreen) flashcardsCmd() tea.Cmd {
	deps := l.deps
	topic := l.topic
	prof := l.prof.Clone()
	return func() tea.Msg {
		cards, err := deps.Content.GenerateFlashcards(context.Background(), topic, prof)
		return flashcardsMsg{Cards: cards, Err: err}
	}
}

// assessCmd checks a free-text follow-up answer for misconceptions.
// The check mutates the profile it is given, so it runs on a clone; the
// result is folded back in handleAssessment.
func (l *LearnScreen) assessCmd(text string) tea.Cmd {
	deps := l.deps
	topic := l.topic
	concept := l.concept()
	before := l.prof.Clone()

	return func() tea.Msg {
		work := before.Clone()
		a := deps.Adapt.CheckMisconceptions(context.Background(), topic, concept, text, work)
		return assessmentMsg{A: a, Before: before, Updated: work}
	}
}

func (l *LearnScreen) handleAssessment(msg assessmentMsg) (screen.Screen, tea.Cmd) {
	l.assessment = msg.A
	if msg.A.ProfileChanged {
		reason := msg.A.Misconception
		if reason == "" {
			reason = "follow-up answer showed the concept has not landed"
		}
		for _, ch := range diffChanges(msg.Before, msg.Updated, adapt.Outcome{Reasoning: reason}) {
			l.logAdaptation(string(adapt.TriggerWrongExplained), "llm", ch.Field, ch.From, ch.To, ch.Reason)
		}
		_ = l.deps.Sessions.SyncProfile(l.st.ID, msg.Updated)
		l.prof = msg.Updated
		l.refresh()
	}
	l.stage = stageFollowUpFeedback
	return l, nil
}

// --- practice ---

func (l *LearnScreen) startPractice() (screen.Screen, tea.Cmd) {
	if l.deps.Content == nil {
		l.adaptNote = "Practice needs a text generator; set an API key first."
		return l, nil
	}
	_ = l.deps.Sessions.SetPhase(l.st.ID, sess.PhasePractice)
	l.refresh()
	if l.deps.Orchestrator != nil {
		d := l.deps.Orchestrator.Decide(context.Background(), l.st, "", "practice")
		l.transition = d.Message
	}

	deps := l.deps
	topic := l.topic
	prof := l.prof.Clone()
	l.loading("Generating practice questions...")
	return l, func() tea.Msg {
		qs, err := deps.Content.GenerateMCQs(context.Background(), topic, prof)
		return practiceReadyMsg{Questions: qs, Err: err}
	}
}

func (l *LearnScreen) handlePracticeReady(msg practiceReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		return l.fail(msg.Err)
	}
	l.practiceQs = msg.Questions
	l.practiceIdx = 0
	l.practiceCorrect = 0
	l.selected = 0
	for _, q := range msg.Questions {
		_ = l.deps.Sessions.RecordContent(l.st.ID, q.ID)
	}
	l.stage = stagePracticeQuestion
	l.questionStart = time.Now()
	return l, nil
}

func (l *LearnScreen) currentPracticeQuestion() content.MCQ {
	if l.practiceIdx < len(l.practiceQs) {
		return l.practiceQs[l.practiceIdx]
	}
	return content.MCQ{}
}

func (l *LearnScreen) submitPracticeAnswer() (screen.Screen, tea.Cmd) {
	q := l.currentPracticeQuestion()
	secs := time.Since(l.questionStart).Seconds()
	grade := content.Grade(q, l.selected)
	l.lastGrade = grade
	l.lastResult = diagnostic.Result{Correct: grade.Correct}
	if grade.Correct {
		l.practiceCorrect++
	}

	l.prof.RecordAnswer(grade.Correct, secs)
	_ = l.deps.Sessions.SyncProfile(l.st.ID, l.prof)
	l.logAnswer(q.ID, q.Topic, string(q.Difficulty), grade.Correct, diagnostic.Answer{
		QuestionID:    q.ID,
		SelectedIndex: l.selected,
		TimeTakenSecs: secs,
	})
	l.refresh()

	l.adaptNote = ""
	trigger, fired := orchestrate.DetermineAdaptationTrigger(l.st, grade.Correct, secs)
	if fired {
		l.loading("Adapting to you...")
		return l, l.adaptCmd(trigger, q, secs, grade.Correct)
	}

	l.stage = stagePracticeFeedback
	return l, nil
}

// adaptCmd runs an adaptation pass: LLM suggestion first, deterministic
// rules when the suggestion fails. The command only computes; all state
// mutation and logging happens back in handleAdaptation.
func (l *LearnScreen) adaptCmd(trigger adapt.Trigger, q content.MCQ, secs float64, correct bool) tea.Cmd {
	deps := l.deps
	before := l.prof.Clone()
	detail := fmt.Sprintf("%s question on %s answered in %.0fs (correct=%t)", q.Difficulty, q.Topic, secs, correct)

	return func() tea.Msg {
		work := before.Clone()
		updated, outcome, err := deps.Adapt.Suggest(context.Background(), work, trigger, detail)
		source := "llm"
		if err != nil {
			source = "rule"
			updated = before.Clone()
			outcome = deps.Adapt.Apply(updated, adapt.Event{
				Correct:       correct,
				Difficulty:    q.Difficulty,
				TimeTakenSecs: secs,
				Trigger:       trigger,
			})
		}

		note := ""
		if updated.Style != before.Style {
			note = adapt.AdaptationMessage(before.Style, updated.Style)
		} else if len(outcome.Changes) > 0 {
			note = outcome.Changes[0].Reason
		}

		return adaptationMsg{
			Updated: updated,
			Changes: diffChanges(before, updated, outcome),
			Trigger: trigger,
			Source:  source,
			Note:    note,
		}
	}
}

func (l *LearnScreen) handleAdaptation(msg adaptationMsg) (screen.Screen, tea.Cmd) {
	if msg.Updated != nil {
		for _, ch := range msg.Changes {
			l.logAdaptation(string(msg.Trigger), msg.Source, ch.Field, ch.From, ch.To, ch.Reason)
		}
		if _, err := l.deps.Sessions.UpdateProfile(l.st.ID, msg.Updated); err == nil {
			l.prof = msg.Updated
		}
	}
	l.adaptNote = msg.Note
	l.refresh()
	l.stage = stagePracticeFeedback
	return l, nil
}

// diffChanges turns an adaptation outcome into loggable field changes.
// Rule outcomes carry their own change list; LLM suggestions are
// diffed field by field.
func diffChanges(before, after *profile.Profile, out adapt.Outcome) []adapt.Change {
	if len(out.Changes) > 0 {
		return out.Changes
	}
	var changes []adapt.Change
	reason := out.Reasoning
	if before.Style != after.Style {
		changes = append(changes, adapt.Change{Field: "learning_style", From: string(before.Style), To: string(after.Style), Reason: reason})
	}
	if before.Pace != after.Pace {
		changes = append(changes, adapt.Change{Field: "pace", From: string(before.Pace), To: string(after.Pace), Reason: reason})
	}
	if before.Confidence != after.Confidence {
		changes = append(changes, adapt.Change{Field: "confidence", From: string(before.Confidence), To: string(after.Confidence), Reason: reason})
	}
	if before.Depth != after.Depth {
		changes = append(changes, adapt.Change{Field: "depth_preference", From: string(before.Depth), To: string(after.Depth), Reason: reason})
	}
	return changes
}

func (l *LearnScreen) advancePractice() (screen.Screen, tea.Cmd) {
	l.practiceIdx++
	l.selected = 0
	l.adaptNote = ""
	if l.practiceIdx < len(l.practiceQs) {
		l.stage = stagePracticeQuestion
		l.questionStart = time.Now()
		return l, nil
	}

	_ = l.deps.Sessions.SetPhase(l.st.ID, sess.PhaseReview)
	l.refresh()
	l.loading("Wrapping up...")

	deps := l.deps
	st := l.st
	return l, func() tea.Msg {
		if deps.Orchestrator == nil {
			return summaryMsg{Text: "Session complete."}
		}
		return summaryMsg{Text: deps.Orchestrator.SessionSummary(context.Background(), st)}
	}
}

// --- event logging ---

func (l *LearnScreen) logAnswer(questionID, concept, difficulty string, correct bool, ans diagnostic.Answer) {
	if l.deps.Events == nil || l.st == nil {
		return
	}
	_ = l.deps.Events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		SessionID:        l.st.ID,
		UserID:           l.st.UserID,
		Topic:            l.topic,
		QuestionID:       questionID,
		Concept:          concept,
		Difficulty:       difficulty,
		SelectedIndex:    ans.SelectedIndex,
		Correct:          correct,
		TimeSecs:         ans.TimeTakenSecs,
		ConfidenceRating: ans.ConfidenceRating,
		StyleVoted:       l.lastResult.StyleVoted,
		DepthVoted:       l.lastResult.DepthVoted,
	})
}

func (l *LearnScreen) logAdaptation(trigger, source, field, from, to, reasoning string) {
	if l.deps.Events == nil || l.st == nil {
		return
	}
	_ = l.deps.Events.AppendAdaptation(context.Background(), store.AdaptationEventData{
		SessionID: l.st.ID,
		UserID:    l.st.UserID,
		Trigger:   trigger,
		Source:    source,
		Field:     field,
		FromValue: from,
		ToValue:   to,
		Reasoning: reasoning,
	})
}
