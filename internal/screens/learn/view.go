package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adept/internal/adapt"
	"github.com/abhisek/adept/internal/ui/theme"
)

func (l *LearnScreen) View(width, height int) string {
	switch l.stage {
	case stageTopic:
		return l.renderTopicPrompt(width, height)
	case stageLoading:
		return centered(width, height, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(l.loadingMsg))
	case stageIntent:
		return l.renderIntentPrompt(width)
	case stageDiagQuestion:
		return l.renderQuestion(width, l.currentDiagQuestion().Text, l.currentDiagQuestion().Options,
			fmt.Sprintf("Diagnostic %d/%d", l.diagIdx+1, len(l.diagQs)))
	case stageDiagConfidence:
		return l.renderConfidencePrompt(width, height)
	case stageDiagFeedback:
		return l.renderDiagFeedback(width, height)
	case stageExplain:
		return l.renderExplanation(width, height)
	case stageFollowUp:
		return l.renderFollowUp(width, height)
	case stageFollowUpFeedback:
		return l.renderFollowUpFeedback(width, height)
	case stageRecap:
		return l.renderRecap(width, height)
	case stageFlashcards:
		return l.renderFlashcards(width, height)
	case stagePracticeQuestion:
		return l.renderQuestion(width, l.currentPracticeQuestion().Question, l.currentPracticeQuestion().Options,
			fmt.Sprintf("Practice %d/%d", l.practiceIdx+1, len(l.practiceQs)))
	case stagePracticeFeedback:
		return l.renderPracticeFeedback(width, height)
	case stageReview:
		return l.renderReview(width, height)
	case stageQuitConfirm:
		return l.renderQuitConfirm(width, height)
	case stageError:
		return centered(width, height, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(fmt.Sprintf("Error: %s\n\nPress any key to go back.", l.errMsg)))
	}
	return ""
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LearnScreen) renderTopicPrompt(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("What do you want to learn today?"))
	b.WriteString("\n\n")
	b.WriteString(l.topicInput.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("A short diagnostic comes first so the tutor can learn how you learn."))
	return centered(width, height, b.String())
}

func (l *LearnScreen) renderIntentPrompt(width int) string {
	options := make([]string, len(intentChoices))
	for i, c := range intentChoices {
		options[i] = c.Label
	}
	return l.renderQuestion(width, "What brings you here?", options, "One-time setup") +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
		dimHint("Asked once. It shapes how everything gets explained."))
}

func (l *LearnScreen) renderQuestion(width int, text string, options []string, progress string) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + progress))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(text))
	b.WriteString("\n\n")

	var opts strings.Builder
	for i, opt := range options {
		prefix := "  "
		if i == l.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)
		if i == l.selected {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))

	return b.String()
}

func (l *LearnScreen) renderConfidencePrompt(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("How confident are you in that answer?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("1 = guessing    5 = certain\n\nPress 1-5, or Enter to skip"))
	return centered(width, height, b.String())
}

func (l *LearnScreen) renderDiagFeedback(width, height int) string {
	var b strings.Builder
	if l.lastResult.Correct {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n\n")
		q := l.lastQuestion
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("Answer: " + q.Options[q.CorrectIndex]))
		}
	}
	if l.lastResult.StyleVoted != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("Noted: you lean " + l.lastResult.StyleVoted))
	}
	b.WriteString("\n\n")
	b.WriteString(dimHint("Press any key to continue..."))
	return centered(width, height, b.String())
}

func (l *LearnScreen) renderExplanation(width, height int) string {
	if l.exp == nil {
		return centered(width, height, dimHint("No explanation yet."))
	}
	cw := min(width-8, 76)
	var b strings.Builder

	heading := l.exp.Concept
	if l.simplified {
		heading += "  (simplified)"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("taught %s", l.exp.StyleUsed)))
	b.WriteString("\n\n")

	if l.transition != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Italic(true).Width(cw).Render(l.transition))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(l.expText))
	b.WriteString("\n")

	if !l.simplified && l.exp.Analogy != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(cw).
			Render("Think of it like this: " + l.exp.Analogy))
		b.WriteString("\n")
	}

	if len(l.exp.KeyTakeaways) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Key takeaways"))
		b.WriteString("\n")
		for _, t := range l.exp.KeyTakeaways {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render("  • " + t))
			b.WriteString("\n")
		}
	}

	if l.exp.FollowUpQuestion != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Width(cw).Render(l.exp.FollowUpQuestion))
		b.WriteString("\n")
	}

	if l.adaptNote != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Width(cw).Render(l.adaptNote))
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (l *LearnScreen) renderFollowUp(width, height int) string {
	cw := min(width-8, 70)
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw).
		Render(l.exp.FollowUpQuestion))
	b.WriteString("\n\n")
	b.WriteString(l.followInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimHint("Answer in your own words. There is no grade, just feedback."))
	return centered(width, height, b.String())
}

func (l *LearnScreen) renderFollowUpFeedback(width, height int) string {
	cw := min(width-8, 70)
	var b strings.Builder

	switch l.assessment.Classification {
	case adapt.ClassCorrect:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("You've got it"))
	case adapt.ClassPartial:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Getting there"))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Let's keep working on it"))
	}

	if l.assessment.Feedback != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(l.assessment.Feedback))
	}
	if l.assessment.Misconception != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render("Watch out for: " + l.assessment.Misconception))
	}
	b.WriteString("\n\n")
	b.WriteString(dimHint("Press any key to go back to the lesson..."))
	return centered(width, height, b.String())
}

func (l *LearnScreen) renderRecap(width, height int) string {
	if l.recap == nil {
		return centered(width, height, dimHint("No recap available."))
	}
	cw := min(width-8, 76)
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Recap: " + l.recap.Topic))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(l.recap.Text))
	b.WriteString("\n")
	for _, p := range l.recap.KeyPoints {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Width(cw).Render("  • " + p))
	}
	b.WriteString("\n\n")
	b.WriteString(dimHint("Enter to go back"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (l *LearnScreen) renderFlashcards(width, height int) string {
	if len(l.cards) == 0 {
		return centered(width, height, dimHint("No flashcards available."))
	}
	card := l.cards[l.cardIdx]
	cw := min(width-12, 60)

	side := "FRONT"
	text := card.Front
	if l.cardFlipped {
		side = "BACK"
		text = card.Back
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2).
		Width(cw).
		Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render(side) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render(text))

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Card %d/%d", l.cardIdx+1, len(l.cards)))
	b.WriteString("\n\n")
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(dimHint("Space to flip · ←/→ to browse · Enter to go back"))
	return centered(width, height, b.String())
}

func (l *LearnScreen) renderPracticeFeedback(width, height int) string {
	var b strings.Builder
	if l.lastGrade.Correct {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		q := l.currentPracticeQuestion()
		if l.lastGrade.CorrectIndex >= 0 && l.lastGrade.CorrectIndex < len(q.Options) {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("Answer: " + q.Options[l.lastGrade.CorrectIndex]))
		}
	}

	cw := min(width-8, 70)
	if l.lastGrade.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(l.lastGrade.Explanation))
	}
	if l.adaptNote != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Width(cw).Render(l.adaptNote))
	}
	b.WriteString("\n\n")
	b.WriteString(dimHint("Press any key to continue..."))
	return centered(width, height, b.String())
}

func (l *LearnScreen) renderReview(width, height int) string {
	cw := min(width-8, 70)
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Session review"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(l.summaryText))

	if len(l.practiceQs) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("Practice: %d/%d correct", l.practiceCorrect, len(l.practiceQs))))
	}
	b.WriteString("\n\n")
	b.WriteString(dimHint("Enter to finish"))
	return centered(width, height, b.String())
}

func (l *LearnScreen) renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("End this session?"))
	b.WriteString("\n")
	b.WriteString(dimHint("Your profile is saved either way."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep going"))
	return centered(width, height, b.String())
}

func dimHint(s string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(s)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
