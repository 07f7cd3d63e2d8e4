package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <topic> [question]",
	Short: "Ask the tutor one question without entering the TUI",
	Long: `Route a single request through the orchestrator and print the result.

The request is routed the same way the interactive session routes it: an
explicit --action short-circuits, otherwise the router decides from the
question and the session phase.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		action, _ := cmd.Flags().GetString("action")

		topic := args[0]
		question := strings.Join(args[1:], " ")

		deps, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		st, err := deps.Sessions.Create(ctx, deps.UserID)
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		defer func() { _ = deps.Sessions.Delete(st.ID) }()

		if err := deps.Sessions.SetTopic(st.ID, topic); err != nil {
			return fmt.Errorf("set topic: %w", err)
		}
		st, err = deps.Sessions.Get(st.ID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		decision, result, err := deps.Orchestrator.Dispatch(ctx, st, question, action)
		if err != nil {
			return err
		}

		if decision.Message != "" {
			fmt.Println(decision.Message)
			fmt.Println()
		}
		fmt.Println(result.Text)
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("action", "a", "auto",
		"Routing action: auto, explain, practice, diagnose, or accessibility")
}
