package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/profile"
	"github.com/abhisek/adept/internal/tutor"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview an adaptive explanation for a concept (no database)",
	Long: `Generate an explanation for a concept as a learner with the given profile
would receive it.

This is a stateless developer tool — no database, no session, no profile
tracking. Useful for evaluating how the tutor teaches across styles.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic the concept belongs to (required)")
	previewCmd.Flags().String("concept", "", "Concept to explain (defaults to the topic)")
	previewCmd.Flags().String("style", string(profile.StyleConceptual), "Learning style: conceptual, visual, or exam-focused")
	previewCmd.Flags().String("pace", string(profile.PaceMedium), "Pace: slow, medium, or fast")
	previewCmd.Flags().String("depth", string(profile.DepthIntuitionFirst), "Depth: intuition-first or formula-first")
	previewCmd.Flags().String("intent", string(profile.IntentConceptual), "Intent: exam, conceptual, interview, or revision")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	concept, _ := cmd.Flags().GetString("concept")
	styleVal, _ := cmd.Flags().GetString("style")
	paceVal, _ := cmd.Flags().GetString("pace")
	depthVal, _ := cmd.Flags().GetString("depth")
	intentVal, _ := cmd.Flags().GetString("intent")

	if concept == "" {
		concept = topic
	}
	if !profile.ValidStyle(styleVal) {
		return fmt.Errorf("invalid style %q: must be conceptual, visual, or exam-focused", styleVal)
	}
	if !profile.ValidPace(paceVal) {
		return fmt.Errorf("invalid pace %q: must be slow, medium, or fast", paceVal)
	}
	if !profile.ValidDepth(depthVal) {
		return fmt.Errorf("invalid depth %q: must be intuition-first or formula-first", depthVal)
	}
	if !profile.ValidIntent(intentVal) {
		return fmt.Errorf("invalid intent %q: must be exam, conceptual, interview, or revision", intentVal)
	}

	p := profile.New()
	p.Style = profile.Style(styleVal)
	p.Pace = profile.Pace(paceVal)
	p.Depth = profile.Depth(depthVal)
	p.SetIntent(profile.Intent(intentVal))

	// No EventRepo — LLM logging skipped.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	svc := tutor.NewService(provider, tutor.DefaultConfig())

	fmt.Printf("Explaining %s (%s) as a %s / %s / %s learner...\n\n",
		concept, topic, styleVal, paceVal, depthVal)

	exp, err := svc.Explain(ctx, tutor.ExplainInput{
		Topic:   topic,
		Concept: concept,
		Profile: p,
	})
	if err != nil {
		return fmt.Errorf("explain: %w", err)
	}

	sep := strings.Repeat("─", 60)
	fmt.Println(sep)
	fmt.Printf("%s  (taught %s)\n", exp.Concept, exp.StyleUsed)
	fmt.Println(sep)
	fmt.Println(exp.Content)

	if exp.Analogy != "" {
		fmt.Printf("\nThink of it like this: %s\n", exp.Analogy)
	}
	if len(exp.KeyTakeaways) > 0 {
		fmt.Println("\nKey takeaways:")
		for _, k := range exp.KeyTakeaways {
			fmt.Printf("  • %s\n", k)
		}
	}
	if exp.FollowUpQuestion != "" {
		fmt.Printf("\n%s\n", exp.FollowUpQuestion)
	}
	return nil
}
