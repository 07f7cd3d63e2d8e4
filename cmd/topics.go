package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics with built-in diagnostic banks",
	Long: `List the topics that ship with a hand-authored diagnostic question bank.

Any other topic still works: the diagnostic falls back to the default bank
and the LLM generates topic-specific practice content.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := diagnostic.NewEngine()

		fmt.Printf("%-20s  %9s  %s\n", "Topic", "Questions", "Concepts")
		fmt.Println(strings.Repeat("─", 76))

		for _, topic := range diagnostic.BankTopics() {
			qs := engine.Questions(topic)

			seen := make(map[string]bool)
			var concepts []string
			for _, q := range qs {
				if diagnostic.IsMetaQuestion(q) || seen[q.ConceptTested] {
					continue
				}
				seen[q.ConceptTested] = true
				concepts = append(concepts, q.ConceptTested)
			}

			fmt.Printf("%-20s  %9d  %s\n", topic, len(qs), strings.Join(concepts, ", "))
		}

		fmt.Printf("\nDefault bank for unknown topics: %s\n", diagnostic.DefaultBank)
		return nil
	},
}
