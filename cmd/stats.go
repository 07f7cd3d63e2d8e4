package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/adept/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		userID := resolveUserID(cmd)

		topics, err := s.EventRepo().TopicAccuracy(ctx, userID)
		if err != nil {
			return fmt.Errorf("query topic accuracy: %w", err)
		}

		if len(topics) == 0 {
			fmt.Println("No answers recorded yet. Run `adept learn` to start a session.")
			return nil
		}

		fmt.Println("Topic Accuracy")
		fmt.Println(strings.Repeat("─", 52))
		fmt.Printf("%-24s  %8s  %8s  %6s\n", "Topic", "Answered", "Correct", "Acc")
		fmt.Println(strings.Repeat("─", 52))

		var answered, correct int
		for _, t := range topics {
			pct := 0.0
			if t.Answered > 0 {
				pct = float64(t.Correct) / float64(t.Answered) * 100
			}
			fmt.Printf("%-24s  %8d  %8d  %5.0f%%\n", truncate(t.Topic, 24), t.Answered, t.Correct, pct)
			answered += t.Answered
			correct += t.Correct
		}

		fmt.Println(strings.Repeat("─", 52))
		totalPct := 0.0
		if answered > 0 {
			totalPct = float64(correct) / float64(answered) * 100
		}
		fmt.Printf("%-24s  %8d  %8d  %5.0f%%\n", "TOTAL", answered, correct, totalPct)

		adaptations, err := s.EventRepo().RecentAdaptations(ctx, userID, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query adaptations: %w", err)
		}

		if len(adaptations) > 0 {
			fmt.Println()
			fmt.Println("Recent Adaptations")
			fmt.Println(strings.Repeat("─", 72))
			for _, a := range adaptations {
				fmt.Printf("%-18s  %-14s → %-14s  (%s, %s)\n",
					a.Field, a.FromValue, a.ToValue, a.Trigger, a.Source)
			}
		}

		return nil
	},
}
